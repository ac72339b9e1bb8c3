package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"
	"github.com/syrene4545/attendance-tracker-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	LockEmployee(ctx context.Context, companyID, employeeID string) error
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error)
	SumDays(ctx context.Context, companyID, employeeID, leaveType, status string, year int) (int, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error) {
	var leaves []Leave
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Year > 0 {
		db = db.Where("EXTRACT(YEAR FROM start_date) = ?", filter.Year)
	}
	err := db.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(l).Error
}

// LockEmployee serialises leave creation per employee so overlap and quota checks see committed rows.
func (r *repository) LockEmployee(ctx context.Context, companyID, employeeID string) error {
	var id string
	return r.db.WithContext(ctx).
		Raw("SELECT id FROM employees WHERE id = ? AND company_id = ? AND deleted_at IS NULL FOR UPDATE", employeeID, companyID).
		Row().Scan(&id)
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SumDays(ctx context.Context, companyID, employeeID, leaveType, status string, year int) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Select("COALESCE(SUM(total_days), 0)").
		Where("employee_id = ? AND leave_type = ? AND status = ?", employeeID, leaveType, status).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Scan(&total).Error
	return total, err
}
