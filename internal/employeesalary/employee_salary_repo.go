package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *EmployeeSalary) error
	FindAllByCompany(ctx context.Context, companyID string, employeeID string) ([]EmployeeSalary, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*EmployeeSalary, error)
	FindCurrent(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error)
	ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	Delete(ctx context.Context, companyID string, id string) error
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

func (r *repository) Create(ctx context.Context, salary *EmployeeSalary) error {
	return r.db.WithContext(ctx).Omit("EmployeeName").Create(salary).Error
}

func (r *repository) withEmployee(ctx context.Context, companyID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Where("employee_salaries.company_id = ?", companyID)
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, employeeID string) ([]EmployeeSalary, error) {
	var salaries []EmployeeSalary
	q := r.withEmployee(ctx, companyID)
	if employeeID != "" {
		q = q.Where("employee_salaries.employee_id = ?", employeeID)
	}
	err := q.Order("employees.full_name ASC").
		Order("employee_salaries.effective_date DESC").
		Order("employee_salaries.created_at DESC").
		Scan(&salaries).Error
	return salaries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.withEmployee(ctx, companyID).
		Where("employee_salaries.id = ?", id).
		Take(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *repository) FindCurrent(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.withEmployee(ctx, companyID).
		Where("employee_salaries.employee_id = ?", employeeID).
		Where("employee_salaries.effective_date <= ?", asOf.Format("2006-01-02")).
		Order("employee_salaries.effective_date DESC").
		Take(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *repository) ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeSalary{}).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ? AND deleted_at IS NULL", employeeID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&EmployeeSalary{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
