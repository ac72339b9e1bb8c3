package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumers need.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ErrSkip tells the loop to commit the message without treating it as handled.
var ErrSkip = errors.New("skip message")

// HandlerFunc processes one decoded message. Returning an error other than
// ErrSkip logs it and moves on without committing that message. A later commit
// on the same partition moves the group offset past it, so it only comes back
// when the consumer restarts before the next successful commit.
type HandlerFunc func(ctx context.Context, msg kafkago.Message) error

func NewReader(broker, groupID, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		CommitInterval: time.Second,
		StartOffset:    kafkago.FirstOffset,
	})
}

// Run fetches messages until ctx is cancelled.
func Run(ctx context.Context, name string, reader Reader, handle HandlerFunc, logger *zap.Logger) {
	log := logger.Named("kafka.consumer." + name)
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil && !errors.Is(err, ErrSkip) {
			log.Error("handle message failed",
				zap.Int64("offset", msg.Offset),
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

type SalaryProvisioner interface {
	EnsureDefaultSalary(ctx context.Context, companyID, employeeID, effectiveDate string) error
}

// EmployeeCreated gives every new employee a zero salary row effective from the hire date.
func EmployeeCreated(svc SalaryProvisioner, logger *zap.Logger) HandlerFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("decode employee_created event failed", zap.Error(err))
			return ErrSkip
		}

		effective := event.HireDate
		if effective == "" {
			effective = event.OccurredAt.UTC().Format("2006-01-02")
		}

		if err := svc.EnsureDefaultSalary(ctx, event.CompanyID, event.EmployeeID, effective); err != nil {
			return err
		}

		logger.Info("default salary ensured",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
		)
		return nil
	}
}

type PayslipGenerator interface {
	GeneratePayslip(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
}

func PayslipRequested(svc PayslipGenerator, logger *zap.Logger) HandlerFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("decode payroll payslip event failed", zap.Error(err))
			return ErrSkip
		}

		if _, err := svc.GeneratePayslip(ctx, event.CompanyID, event.PayrollID); err != nil {
			return err
		}

		logger.Info("payroll payslip generated",
			zap.String("payroll_id", event.PayrollID),
			zap.String("company_id", event.CompanyID),
		)
		return nil
	}
}

// AssessmentCertified records certifications in the audit trail.
func AssessmentCertified(audit bootstrap.AuditLogger, logger *zap.Logger) HandlerFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.AssessmentCertifiedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("decode assessment certified event failed", zap.Error(err))
			return ErrSkip
		}

		meta := map[string]any{
			"assessment_id": event.AssessmentID,
			"attempt_id":    event.AttemptID,
			"badge":         event.BadgeName,
			"score":         event.Score,
		}
		if event.ExpiresAt != nil {
			meta["expires_at"] = event.ExpiresAt.Format(time.RFC3339)
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:    "assessment.certified",
			CompanyID: event.CompanyID,
			ActorID:   event.EmployeeID,
			Message:   "employee certified",
			Meta:      meta,
		})
		return nil
	}
}
