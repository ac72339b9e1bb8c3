package employeesalary

import (
	"context"
	"database/sql"
	"time"

	employeesalaryerrors "github.com/syrene4545/attendance-tracker-sub001/internal/employeesalary/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_salary_service.go -destination=mock/employee_salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	GetAll(ctx context.Context, companyID, employeeID string) ([]EmployeeSalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeSalaryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	CurrentFor(ctx context.Context, companyID, employeeID string, asOf time.Time) (EmployeeSalaryResponse, error)
	EnsureDefaultSalary(ctx context.Context, companyID, employeeID, effectiveDate string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidCompanyID
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrEmployeeNotFound
	}
	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	if !ok {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrEmployeeNotFound
	}

	salary := &EmployeeSalary{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeID,
		BaseSalary:    req.BaseSalary,
		EffectiveDate: effectiveDate,
	}

	if err := qtx.Create(ctx, salary); err != nil {
		l.Warn("create salary failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.FindByIDAndCompany(ctx, companyID, salary.ID.String())
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	l.Info("salary created",
		zap.String("salary_id", salary.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("effective_date", req.EffectiveDate),
	)
	return mapToResponse(*created), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, employeeID string,
) ([]EmployeeSalaryResponse, error) {
	salaries, err := s.repo.FindAllByCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeSalaryResponse, error) {
	salary, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*salary), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	contextutil.GetLogger(ctx, s.logger).Info("salary deleted", zap.String("salary_id", id))
	return nil
}

// CurrentFor returns the salary in force for the employee on asOf.
func (s *service) CurrentFor(
	ctx context.Context,
	companyID, employeeID string,
	asOf time.Time,
) (EmployeeSalaryResponse, error) {
	salary, err := s.repo.FindCurrent(ctx, companyID, employeeID, asOf)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*salary), nil
}

// EnsureDefaultSalary gives a new employee a zero base salary from the hire date.
// Calling it again for the same employee does nothing.
func (s *service) EnsureDefaultSalary(ctx context.Context, companyID, employeeID, effectiveDate string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return employeesalaryerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return employeesalaryerrors.ErrEmployeeNotFound
	}
	date, err := time.Parse(dateLayout, effectiveDate)
	if err != nil {
		return employeesalaryerrors.ErrInvalidEffectiveDate
	}

	exists, err := s.repo.ExistsForEmployee(ctx, companyID, employeeID)
	if err != nil {
		return err
	}
	if exists {
		l.Debug("default salary skipped, record exists", zap.String("employee_id", employeeID))
		return nil
	}

	err = s.repo.Create(ctx, &EmployeeSalary{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeUUID,
		BaseSalary:    0,
		EffectiveDate: date,
	})
	if isEffectiveDateConflict(err) {
		return nil
	}
	if err != nil {
		l.Error("create default salary failed", zap.String("employee_id", employeeID), zap.Error(err))
		return err
	}

	l.Info("default salary created", zap.String("employee_id", employeeID), zap.String("effective_date", effectiveDate))
	return nil
}

func mapToResponse(salary EmployeeSalary) EmployeeSalaryResponse {
	return EmployeeSalaryResponse{
		ID:            salary.ID.String(),
		EmployeeID:    salary.EmployeeID.String(),
		EmployeeName:  salary.EmployeeName,
		BaseSalary:    salary.BaseSalary,
		EffectiveDate: salary.EffectiveDate.Format(dateLayout),
	}
}

func mapToListResponse(salaries []EmployeeSalary) []EmployeeSalaryResponse {
	res := make([]EmployeeSalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}
