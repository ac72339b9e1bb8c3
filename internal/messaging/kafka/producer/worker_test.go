package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	kafkaMock "github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "bad"}
	ctx := context.Background()

	repo.EXPECT().ClaimPending(ctx, batchSize).Return([]kafka.OutboxEvent{
		{ID: "o-1", AggregateID: "e-1", EventType: "employee.created", Topic: "good", Payload: []byte("{}")},
		{ID: "o-2", AggregateID: "p-1", EventType: "payroll.payslip.requested", Topic: "bad", Payload: []byte("{}")},
	}, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", "broker unavailable").Return(nil)

	sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.written, 1)
	assert.Equal(t, []byte("e-1"), writer.written[0].Key)
	assert.Equal(t, "employee.created", string(writer.written[0].Headers[0].Value))
}

func TestProcessPendingEvents_ClaimError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ClaimPending(gomock.Any(), batchSize).Return(nil, errors.New("db down"))

	_, err := ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.Error(t, err)
}
