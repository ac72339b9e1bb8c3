package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithCompanyID(ctx, "company-1")

	md := ExtractMetadata(ctx)
	assert.Equal(t, Metadata{RequestID: "rid-1", UserID: "user-1", CompanyID: "company-1"}, md)
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetLoggerFallbacks(t *testing.T) {
	scoped := zap.NewExample()
	fallback := zap.NewNop()

	assert.Same(t, scoped, GetLogger(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}
