package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "github.com/syrene4545/attendance-tracker-sub001/internal/employee/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKeyPrefix = "employee:options:"
	employeeOptionsTTL       = 5 * time.Minute
	dateLayout               = "2006-01-02"
)

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

// RoleAssigner gives a freshly created employee its default role inside the same transaction.
type RoleAssigner interface {
	AssignRole(ctx context.Context, tx *sql.Tx, companyID, employeeID, roleName string) error
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	roles   RoleAssigner
	rdb     *redis.Client
	sf      *singleflight.Group
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	roles RoleAssigner,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		roles:   roles,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}
	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	status := req.EmploymentStatus
	if status == "" {
		status = StatusActive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := checkDepartment(ctx, qtx, companyID, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.EmployeeNumber)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		EmployeeNumber:   fmt.Sprintf("EMP-%06d", seq),
		EmploymentStatus: status,
	}
	applyProfile(empl, req.FullName, req.Email, req.Phone, req.JobTitle, req.DepartmentID, hireDate)

	if err := qtx.Create(ctx, empl); err != nil {
		l.Warn("create employee failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// role dan event ikut transaksi yang sama dengan insert employee
	if err := s.roles.AssignRole(ctx, tx, companyID, empl.ID.String(), rbac.RoleEmployee); err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.publishCreated(ctx, tx, empl, req.HireDate); err != nil {
		l.Error("write employee.created outbox failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	l.Info("employee created",
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) publishCreated(ctx context.Context, tx *sql.Tx, empl *Employee, hireDate string) error {
	event := events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreatedType,
		EmployeeID: empl.ID.String(),
		CompanyID:  empl.CompanyID.String(),
		HireDate:   hireDate,
		OccurredAt: s.now().UTC(),
	}
	ev, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"employee", empl.ID.String(),
		event.EventType, events.EmployeeCreatedTopic,
		event,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, ev)
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

// GetOptions serves the id/name picker list from redis, rebuilding it once under singleflight.
func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error) {
	key := GetEmployeeOptionsKey(companyID)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached []EmployeeOption
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		empls, err := s.repo.FindOptionsByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		opts := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			opts[i] = EmployeeOption{ID: e.ID.String(), FullName: e.FullName, EmployeeNumber: e.EmployeeNumber}
		}
		s.cacheOptions(ctx, key, opts)
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) cacheOptions(ctx context.Context, key string, opts []EmployeeOption) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, employeeOptionsTTL).Err(); err != nil {
		s.logger.Warn("cache employee options failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := checkDepartment(ctx, qtx, companyID, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	previous := empl.EmploymentStatus
	applyProfile(empl, req.FullName, req.Email, req.Phone, req.JobTitle, req.DepartmentID, hireDate)
	empl.EmploymentStatus = req.EmploymentStatus

	if err := qtx.Update(ctx, empl); err != nil {
		l.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	if previous != empl.EmploymentStatus {
		l.Info("employment status changed",
			zap.String("employee_id", id),
			zap.String("from", previous),
			zap.String("to", empl.EmploymentStatus),
		)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx, companyID)
	contextutil.GetLogger(ctx, s.logger).Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func parseHireDate(v string) (time.Time, error) {
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidHireDate
	}
	return d, nil
}

// checkDepartment accepts an empty id; otherwise the department must belong to the company.
func checkDepartment(ctx context.Context, repo Repository, companyID, departmentID string) error {
	if departmentID == "" {
		return nil
	}
	ok, err := repo.DepartmentExists(ctx, companyID, departmentID)
	if err != nil {
		return err
	}
	if !ok {
		return employeeerrors.ErrDepartmentNotFound
	}
	return nil
}

func applyProfile(e *Employee, fullName, email, phone, jobTitle, departmentID string, hireDate time.Time) {
	e.FullName = fullName
	e.Email = email
	e.Phone = phone
	e.JobTitle = jobTitle
	e.DepartmentID = uuidPtr(departmentID)
	e.Department = nil
	e.HireDate = hireDate
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, GetEmployeeOptionsKey(companyID)).Err(); err != nil {
		s.logger.Error("invalidate employee options failed", zap.String("company_id", companyID), zap.Error(err))
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               empl.ID.String(),
		CompanyID:        empl.CompanyID.String(),
		EmployeeNumber:   empl.EmployeeNumber,
		FullName:         empl.FullName,
		Email:            empl.Email,
		Phone:            empl.Phone,
		JobTitle:         empl.JobTitle,
		HireDate:         empl.HireDate.Format(dateLayout),
		EmploymentStatus: empl.EmploymentStatus,
		DepartmentID:     uuidToString(empl.DepartmentID),
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
