package kafka

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := NewOutboxEvent("rid", "employee", "e-1", "employee.created", "topic", map[string]string{"a": "b"})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"a":"b"}`, string(ev.Payload))
	assert.NoError(t, ValidateOutboxEvent(ev))

	_, err = NewOutboxEvent("rid", "x", "1", "t", "topic", make(chan int))
	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.Error(t, ValidateOutboxEvent(OutboxEvent{}))
	assert.Error(t, ValidateOutboxEvent(OutboxEvent{ID: "1"}))
	assert.Error(t, ValidateOutboxEvent(OutboxEvent{ID: "1", Topic: "t"}))
	assert.Error(t, ValidateOutboxEvent(OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: "weird"}))
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ev, _ := NewOutboxEvent("rid", "payroll", "p-1", "payroll.payslip.requested", "topic", map[string]string{})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(ev.ID, "rid", "payroll", "p-1", "payroll.payslip.requested", "topic", ev.Payload, OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, NewOutboxRepository(db).WithTx(tx).Create(context.Background(), ev))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count"}).
		AddRow("o-1", "rid", "employee", "e-1", "employee.created", "topic", []byte(`{}`), OutboxStatusProcessing, 0)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs(OutboxStatusProcessing, OutboxStatusPending, OutboxStatusFailed, MaxOutboxRetries, 50).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ClaimPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "o-1", events[0].ID)
	assert.Equal(t, "e-1", events[0].AggregateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("o-1", OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewOutboxRepository(db).MarkFailed(context.Background(), "o-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
