package user

import (
	"context"
	"strings"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"
	usererrors "github.com/syrene4545/attendance-tracker-sub001/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string) ([]UserResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)
	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, companyID, actorUserID, id string, isActive bool) error
	ForceResetPassword(ctx context.Context, companyID, userID, newPassword string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

// HashPassword is shared by every place that stores a credential.
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	l.Info("creating user",
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return UserResponse{}, err
	}
	if !ok {
		return UserResponse{}, usererrors.ErrEmployeeNotFound
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashedPassword,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Warn("failed to create user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created successfully", zap.String("user_id", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, companyID, actorUserID, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if !isActive && actorUserID == id {
		return usererrors.ErrCannotDeactivateSelf
	}

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return err
	}

	l.Info("user status changed", zap.String("user_id", id), zap.Bool("is_active", isActive))
	return nil
}

// ForceResetPassword lets an admin overwrite a password. Two-factor stays as it was.
func (s *service) ForceResetPassword(ctx context.Context, companyID, userID, newPassword string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	u.Password = hashed
	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("password force reset", zap.String("user_id", userID))
	return nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:          u.ID.String(),
		EmployeeID:  u.EmployeeID.String(),
		Email:       u.Email,
		IsActive:    u.IsActive,
		TOTPEnabled: u.TOTPEnabled,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLoginAt != nil {
		resp.LastLoginAt = u.LastLoginAt.Format(time.RFC3339)
	}
	if u.Employee != nil {
		resp.FullName = u.Employee.FullName
		resp.EmployeeNumber = u.Employee.EmployeeNumber
	}
	return resp
}
