package bootstrap

import (
	"context"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"go.uber.org/zap"
)

type AuditLog struct {
	Action    string
	CompanyID string
	ActorID   string
	Message   string
	Meta      map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// ZapAuditLogger writes audit entries as structured logs under the "audit" name.
type ZapAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapAuditLogger(logger ...*zap.Logger) *ZapAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapAuditLogger{logger: l, now: time.Now}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	actor := entry.ActorID
	if actor == "" && ctx != nil {
		actor = contextutil.GetUserID(ctx)
	}

	fields := []zap.Field{
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if entry.CompanyID != "" {
		fields = append(fields, zap.String("company_id", entry.CompanyID))
	}
	if actor != "" {
		fields = append(fields, zap.String("actor_id", actor))
	}
	if ctx != nil {
		if rid := contextutil.GetRequestID(ctx); rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}
	}

	l.logger.Info("audit event", fields...)
}

// NopAuditLogger discards entries.
type NopAuditLogger struct{}

func (NopAuditLogger) Log(context.Context, AuditLog) {}
