package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitIsIdempotentAndServes(t *testing.T) {
	Init()
	Init()

	AssessmentAttempts.WithLabelValues("started").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "assessment_attempts_total"))
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(AttendanceClockEvents.WithLabelValues("clock_in"))
	AttendanceClockEvents.WithLabelValues("clock_in").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AttendanceClockEvents.WithLabelValues("clock_in")))
}
