package app

import (
	"context"
	"fmt"

	"github.com/syrene4545/attendance-tracker-sub001/internal/assessment"
	"github.com/syrene4545/attendance-tracker-sub001/internal/attendance"
	"github.com/syrene4545/attendance-tracker-sub001/internal/company"
	"github.com/syrene4545/attendance-tracker-sub001/internal/department"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employee"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employeesalary"
	"github.com/syrene4545/attendance-tracker-sub001/internal/leave"
	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	"github.com/syrene4545/attendance-tracker-sub001/internal/sop"
	"github.com/syrene4545/attendance-tracker-sub001/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Urutan penting: tabel induk dulu supaya foreign key bisa dibuat.
var models = []any{
	&company.Company{},
	&department.Department{},
	&employee.Employee{},
	&user.User{},
	&rbac.Role{},
	&rbac.Permission{},
	&rbac.RolePermission{},
	&rbac.EmployeeRole{},
	&attendance.AttendanceLog{},
	&employeesalary.EmployeeSalary{},
	&leave.Leave{},
	&payroll.Payroll{},
	&payroll.PayrollItem{},
	&payroll.Payslip{},
	&sop.SOP{},
	&sop.Acknowledgement{},
	&assessment.Assessment{},
	&assessment.Question{},
	&assessment.Option{},
	&assessment.Attempt{},
	&assessment.Badge{},
	&assessment.Certification{},
}

// Tables written with raw SQL, plus indexes gorm tags cannot express.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(64),
	aggregate_type VARCHAR(64) NOT NULL,
	aggregate_id VARCHAR(64) NOT NULL,
	event_type VARCHAR(64) NOT NULL,
	topic VARCHAR(128) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	next_retry_at TIMESTAMPTZ,
	error_message TEXT,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_status_created ON outbox_events (status, created_at)`,
	`CREATE TABLE IF NOT EXISTS company_counters (
	company_id UUID NOT NULL,
	counter_type VARCHAR(32) NOT NULL,
	last_value BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (company_id, counter_type)
)`,
	// satu attempt berjalan per karyawan per assessment
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_attempt_in_progress
	ON assessment_attempts (assessment_id, employee_id) WHERE status = 'IN_PROGRESS'`,
}

// PermissionSyncer seeds the permission catalogue after the schema exists.
type PermissionSyncer interface {
	EnsurePermissions(ctx context.Context) error
}

// Migrate brings the schema up to date. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB, perms PermissionSyncer, logger *zap.Logger) error {
	log := logger.Named("app.migrate")

	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range statements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	log.Info("schema migrated", zap.Int("models", len(models)))

	if perms == nil {
		return nil
	}
	if err := perms.EnsurePermissions(ctx); err != nil {
		return fmt.Errorf("ensure permissions: %w", err)
	}
	log.Info("permissions synced")
	return nil
}
