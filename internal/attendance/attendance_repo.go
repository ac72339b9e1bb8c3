package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"
	"github.com/syrene4545/attendance-tracker-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// Query is the repository form of ListFilter, already parsed and scoped.
type Query struct {
	From       *time.Time
	To         *time.Time
	EmployeeID string
	Status     string
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AttendanceLog) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error)
	FindByEmployeeAndDateForUpdate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*AttendanceLog, error)
	FindAll(ctx context.Context, companyID string, q Query) ([]AttendanceLog, error)
	Update(ctx context.Context, a *AttendanceLog) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, a *AttendanceLog) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) byEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format(dateLayout))
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error) {
	var a AttendanceLog
	if err := r.byEmployeeAndDate(ctx, companyID, employeeID, date).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeAndDateForUpdate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error) {
	var a AttendanceLog
	err := r.byEmployeeAndDate(ctx, companyID, employeeID, date).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*AttendanceLog, error) {
	var a AttendanceLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, q Query) ([]AttendanceLog, error) {
	var rows []AttendanceLog
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))
	if q.EmployeeID != "" {
		db = db.Where("employee_id = ?", q.EmployeeID)
	}
	if q.From != nil {
		db = db.Where("work_date >= ?", q.From.Format(dateLayout))
	}
	if q.To != nil {
		db = db.Where("work_date <= ?", q.To.Format(dateLayout))
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	err := db.Order("work_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *AttendanceLog) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(a).Error
}
