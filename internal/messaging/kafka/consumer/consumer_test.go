package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeSalary struct {
	calls []string
	err   error
}

func (f *fakeSalary) EnsureDefaultSalary(_ context.Context, companyID, employeeID, effectiveDate string) error {
	f.calls = append(f.calls, companyID+"/"+employeeID+"/"+effectiveDate)
	return f.err
}

type fakePayslip struct{ ids []string }

func (f *fakePayslip) GeneratePayslip(_ context.Context, _ string, id string) (payroll.PayrollResponse, error) {
	f.ids = append(f.ids, id)
	return payroll.PayrollResponse{ID: id}, nil
}

type recordingAudit struct{ entries []bootstrap.AuditLog }

func (a *recordingAudit) Log(_ context.Context, e bootstrap.AuditLog) { a.entries = append(a.entries, e) }

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestRun_EmployeeCreated(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		{Offset: 1, Value: mustJSON(t, events.EmployeeCreatedEvent{CompanyID: "c-1", EmployeeID: "e-1", HireDate: "2026-01-05"})},
		{Offset: 2, Value: []byte("not-json")},
	}}
	svc := &fakeSalary{}

	Run(ctx, "employee", reader, EmployeeCreated(svc, zap.NewNop()), zap.NewNop())

	assert.Equal(t, []string{"c-1/e-1/2026-01-05"}, svc.calls)
	assert.Len(t, reader.committed, 2)
}

func TestRun_HandlerErrorLeavesMessageUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		{Value: mustJSON(t, events.EmployeeCreatedEvent{
			CompanyID:  "c-1",
			EmployeeID: "e-1",
			OccurredAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		})},
	}}
	svc := &fakeSalary{err: errors.New("db down")}

	Run(ctx, "employee", reader, EmployeeCreated(svc, zap.NewNop()), zap.NewNop())

	assert.Equal(t, []string{"c-1/e-1/2026-03-02"}, svc.calls)
	assert.Empty(t, reader.committed)
}

func TestRun_HandlerErrorMovesOnToNextMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		{Offset: 7, Value: []byte("gagal")},
		{Offset: 8, Value: []byte("ok")},
	}}
	var handled []int64
	handle := func(_ context.Context, msg kafkago.Message) error {
		handled = append(handled, msg.Offset)
		if string(msg.Value) == "gagal" {
			return errors.New("boom")
		}
		return nil
	}

	Run(ctx, "skip", reader, handle, zap.NewNop())

	assert.Equal(t, []int64{7, 8}, handled)
	if assert.Len(t, reader.committed, 1) {
		assert.Equal(t, int64(8), reader.committed[0].Offset)
	}
}

func TestPayslipRequested(t *testing.T) {
	svc := &fakePayslip{}
	h := PayslipRequested(svc, zap.NewNop())

	err := h(context.Background(), kafkago.Message{Value: mustJSON(t, events.PayrollPayslipRequestedEvent{CompanyID: "c-1", PayrollID: "p-1"})})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, svc.ids)
}

func TestAssessmentCertified(t *testing.T) {
	audit := &recordingAudit{}
	h := AssessmentCertified(audit, zap.NewNop())

	err := h(context.Background(), kafkago.Message{Value: mustJSON(t, events.AssessmentCertifiedEvent{
		CompanyID: "c-1", EmployeeID: "e-1", AssessmentID: "a-1", BadgeName: "Safety", Score: 90,
	})})
	require.NoError(t, err)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "assessment.certified", audit.entries[0].Action)
	assert.Equal(t, 90, audit.entries[0].Meta["score"])

	assert.ErrorIs(t, h(context.Background(), kafkago.Message{Value: []byte("{")}), ErrSkip)
}
