package payroll

import (
	"context"
	"database/sql"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"
	"github.com/syrene4545/attendance-tracker-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	Update(ctx context.Context, p *Payroll) error
	ReplaceItems(ctx context.Context, payrollID string, items []PayrollItem) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Payroll, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Payroll, error)
	FindByPeriodForUpdate(ctx context.Context, companyID, employeeID, period string) (*Payroll, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	SavePayslip(ctx context.Context, slip *Payslip) error
	FindPayslip(ctx context.Context, companyID, payrollID string) (*Payslip, error)
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

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Employee", "Items").Save(p).Error
}

func (r *repository) ReplaceItems(ctx context.Context, payrollID string, items []PayrollItem) error {
	if err := r.db.WithContext(ctx).Where("payroll_id = ?", payrollID).Delete(&PayrollItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Payroll, error) {
	var payrolls []Payroll
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))
	if filter.Period != "" {
		db = db.Where("period = ?", filter.Period)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	err := db.Order("period DESC, created_at DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByPeriodForUpdate(ctx context.Context, companyID, employeeID, period string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND period = ?", employeeID, period).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SavePayslip(ctx context.Context, slip *Payslip) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payroll_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_name", "content", "generated_at"}),
		}).
		Create(slip).Error
}

func (r *repository) FindPayslip(ctx context.Context, companyID, payrollID string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&slip, "payroll_id = ?", payrollID).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}
