package company

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	companyerrors "github.com/syrene4545/attendance-tracker-sub001/internal/company/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employee"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/counter"
	"github.com/syrene4545/attendance-tracker-sub001/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleSeeder creates the default roles of a new tenant and grants one of them.
type RoleSeeder interface {
	SeedDefaultRoles(ctx context.Context, tx *sql.Tx, companyID string) (map[string]uuid.UUID, error)
	AssignRole(ctx context.Context, tx *sql.Tx, companyID, employeeID, roleName string) error
}

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	GetProfile(ctx context.Context, companyID string) (CompanyResponse, error)
	UpdateProfile(ctx context.Context, companyID string, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	users     user.Repository
	counter   counter.Repository
	roles     RoleSeeder
	outbox    kafka.OutboxRepository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	users user.Repository,
	counter counter.Repository,
	roles RoleSeeder,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		users:     users,
		counter:   counter,
		roles:     roles,
		outbox:    outbox,
		now:       time.Now,
		logger:    l,
	}
}

// Register creates a tenant together with its first administrator.
// Company, employee, user, default roles and the employee.created event
// are written in one transaction.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	companyEmail := strings.ToLower(strings.TrimSpace(req.CompanyEmail))
	adminEmail := strings.ToLower(strings.TrimSpace(req.AdminEmail))

	exists, err := s.repo.EmailExists(ctx, companyEmail)
	if err != nil {
		l.Error("register company check email failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	if exists {
		return RegisterResponse{}, companyerrors.ErrCompanyAlreadyExists
	}

	if existing, err := s.users.FindByEmail(ctx, adminEmail); err == nil && existing != nil {
		return RegisterResponse{}, companyerrors.ErrAdminEmailTaken
	}

	hashed, err := user.HashPassword(req.Password)
	if err != nil {
		l.Error("register company hash password failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("register company begin tx failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	now := s.now().UTC()
	comp := &Company{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.CompanyName),
		Email:    companyEmail,
		IsActive: true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, comp); err != nil {
		l.Warn("register company persist failed", zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err)
	}
	companyID := comp.ID.String()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.EmployeeNumber)
	if err != nil {
		l.Error("register company employee number failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	admin := &employee.Employee{
		ID:               uuid.New(),
		CompanyID:        comp.ID,
		EmployeeNumber:   fmt.Sprintf("EMP-%06d", seq),
		FullName:         strings.TrimSpace(req.AdminName),
		Email:            adminEmail,
		JobTitle:         "Administrator",
		HireDate:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.StatusActive,
	}
	if err := s.employees.WithTx(tx).Create(ctx, admin); err != nil {
		l.Warn("register company admin employee failed", zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err)
	}

	u := &user.User{
		ID:         uuid.New(),
		CompanyID:  comp.ID,
		EmployeeID: admin.ID,
		Email:      adminEmail,
		Password:   hashed,
		IsActive:   true,
	}
	if err := s.users.WithTx(tx).Create(ctx, u); err != nil {
		l.Warn("register company admin user failed", zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err)
	}

	if _, err := s.roles.SeedDefaultRoles(ctx, tx, companyID); err != nil {
		l.Error("register company seed roles failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	if err := s.roles.AssignRole(ctx, tx, companyID, admin.ID.String(), rbac.RoleAdmin); err != nil {
		l.Error("register company assign admin failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	event := events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreatedType,
		EmployeeID: admin.ID.String(),
		CompanyID:  companyID,
		HireDate:   admin.HireDate.Format("2006-01-02"),
		OccurredAt: now,
	}
	outboxEvent, err := kafka.NewOutboxEvent(rid, "employee", admin.ID.String(), event.EventType, events.EmployeeCreatedTopic, event)
	if err != nil {
		return RegisterResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		l.Error("register company outbox persist failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("register company commit failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	l.Info("company registered",
		zap.String("company_id", companyID),
		zap.String("admin_user_id", u.ID.String()),
	)

	return RegisterResponse{
		Company:        mapToResponse(*comp),
		UserID:         u.ID.String(),
		EmployeeID:     admin.ID.String(),
		EmployeeNumber: admin.EmployeeNumber,
	}, nil
}

func (s *service) GetProfile(ctx context.Context, companyID string) (CompanyResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*comp), nil
}

func (s *service) UpdateProfile(ctx context.Context, companyID string, req UpdateCompanyRequest) (CompanyResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		comp.Name = name
	}
	if req.Phone != nil {
		comp.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		comp.Address = strings.TrimSpace(*req.Address)
	}
	if req.TaxNumber != nil {
		comp.TaxNumber = strings.TrimSpace(*req.TaxNumber)
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		l.Error("update company profile failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	l.Info("company profile updated", zap.String("company_id", companyID))
	return mapToResponse(*comp), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxNumber: c.TaxNumber,
		IsActive:  c.IsActive,
	}
}
