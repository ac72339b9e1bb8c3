package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/syrene4545/attendance-tracker-sub001/internal/auth/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/token"
	"github.com/syrene4545/attendance-tracker-sub001/internal/user"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const totpIssuer = "Attendance Tracker"

// RoleReader resolves casbin roles for token claims and the profile.
type RoleReader interface {
	PrimaryRole(ctx context.Context, companyID, employeeID string) (string, error)
	GetEmployeeRoles(ctx context.Context, companyID, employeeID string) ([]string, error)
}

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenPair, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	Me(ctx context.Context, companyID, userID string) (MeResponse, error)
	ChangePassword(ctx context.Context, companyID, userID string, req ChangePasswordRequest) error
	SetupTOTP(ctx context.Context, companyID, userID string) (TOTPSetupResponse, error)
	EnableTOTP(ctx context.Context, companyID, userID, code string) error
	DisableTOTP(ctx context.Context, companyID, userID, code string) error
}

type service struct {
	users   user.Repository
	profile Repository
	roles   RoleReader
	tokens  TokenConfig
	audit   bootstrap.AuditLogger
	now     func() time.Time
	logger  *zap.Logger
}

type Option func(*service)

// WithClock overrides time.Now, used by tests to produce deterministic TOTP codes.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(
	users user.Repository,
	profile Repository,
	roles RoleReader,
	tokens TokenConfig,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
	opts ...Option,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	s := &service{
		users:   users,
		profile: profile,
		roles:   roles,
		tokens:  tokens,
		audit:   audit,
		now:     time.Now,
		logger:  logger.Named("auth.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenPair, AuthResponse, error) {
	// 1. Ambil user
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenPair{}, AuthResponse{}, err
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", u.ID.String()), zap.String("reason", "password"))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	// 3. Two-factor
	if u.TOTPEnabled {
		if req.OTPCode == "" {
			return TokenPair{}, AuthResponse{}, autherrors.ErrOTPRequired
		}
		if !s.validateCode(req.OTPCode, u.TOTPSecret) {
			s.logger.Info("login rejected", zap.String("user_id", u.ID.String()), zap.String("reason", "otp"))
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidOTP
		}
	}

	pair, resp, err := s.issue(ctx, u)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	now := s.now().UTC()
	u.LastLoginAt = &now
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Warn("update last login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:    "auth.login",
		CompanyID: resp.CompanyID,
		ActorID:   resp.ID,
		Message:   "user logged in",
		Meta:      map[string]any{"totp": u.TOTPEnabled},
	})

	return pair, resp, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := token.Parse(s.tokens.Secret, refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrTokenExpired
		}
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if claims.Type != token.Refresh {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.users.FindByID(ctx, claims.CompanyID, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrUserNotFound
		}
		return TokenPair{}, AuthResponse{}, err
	}
	if !u.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	return s.issue(ctx, u)
}

func (s *service) issue(ctx context.Context, u *user.User) (TokenPair, AuthResponse, error) {
	companyID := u.CompanyID.String()
	employeeID := u.EmployeeID.String()

	role, err := s.roles.PrimaryRole(ctx, companyID, employeeID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	claims := token.Claims{
		UserID:     u.ID.String(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Role:       role,
	}
	now := s.now()

	claims.Type = token.Access
	access, err := token.Generate(s.tokens.Secret, claims, s.tokens.AccessTTL, now)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	claims.Type = token.Refresh
	refresh, err := token.Generate(s.tokens.Secret, claims, s.tokens.RefreshTTL, now)
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	name := u.Email
	if u.Employee != nil && u.Employee.FullName != "" {
		name = u.Employee.FullName
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, AuthResponse{
		ID:         u.ID.String(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Email:      u.Email,
		Name:       name,
		Role:       role,
	}, nil
}

func (s *service) Me(ctx context.Context, companyID, userID string) (MeResponse, error) {
	p, err := s.profile.GetProfile(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, autherrors.ErrUserNotFound
		}
		return MeResponse{}, err
	}

	roles, err := s.roles.GetEmployeeRoles(ctx, companyID, p.EmployeeID)
	if err != nil {
		return MeResponse{}, err
	}

	return MeResponse{
		ID:             p.UserID,
		Email:          p.Email,
		TOTPEnabled:    p.TOTPEnabled,
		EmployeeID:     p.EmployeeID,
		EmployeeNumber: p.EmployeeNumber,
		FullName:       p.FullName,
		JobTitle:       p.JobTitle,
		CompanyID:      p.CompanyID,
		CompanyName:    p.CompanyName,
		Roles:          roles,
	}, nil
}

func (s *service) loadUser(ctx context.Context, companyID, userID string) (*user.User, error) {
	u, err := s.users.FindByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, companyID, userID string, req ChangePasswordRequest) error {
	u, err := s.loadUser(ctx, companyID, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hashed, err := user.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	u.Password = hashed
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:    "auth.password_changed",
		CompanyID: companyID,
		ActorID:   userID,
		Message:   "password changed",
	})
	return nil
}

func (s *service) SetupTOTP(ctx context.Context, companyID, userID string) (TOTPSetupResponse, error) {
	u, err := s.loadUser(ctx, companyID, userID)
	if err != nil {
		return TOTPSetupResponse{}, err
	}
	if u.TOTPEnabled {
		return TOTPSetupResponse{}, autherrors.ErrTOTPAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: u.Email,
	})
	if err != nil {
		return TOTPSetupResponse{}, err
	}

	u.TOTPPendingSecret = key.Secret()
	if err := s.users.Update(ctx, u); err != nil {
		return TOTPSetupResponse{}, err
	}

	return TOTPSetupResponse{Secret: key.Secret(), OTPAuthURL: key.URL()}, nil
}

func (s *service) EnableTOTP(ctx context.Context, companyID, userID, code string) error {
	u, err := s.loadUser(ctx, companyID, userID)
	if err != nil {
		return err
	}
	if u.TOTPEnabled {
		return autherrors.ErrTOTPAlreadyEnabled
	}
	if u.TOTPPendingSecret == "" {
		return autherrors.ErrTOTPNotPending
	}
	if !s.validateCode(code, u.TOTPPendingSecret) {
		return autherrors.ErrInvalidOTP
	}

	u.TOTPSecret = u.TOTPPendingSecret
	u.TOTPPendingSecret = ""
	u.TOTPEnabled = true
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:    "auth.totp_enabled",
		CompanyID: companyID,
		ActorID:   userID,
		Message:   "two-factor enabled",
	})
	return nil
}

func (s *service) DisableTOTP(ctx context.Context, companyID, userID, code string) error {
	u, err := s.loadUser(ctx, companyID, userID)
	if err != nil {
		return err
	}
	if !u.TOTPEnabled {
		return autherrors.ErrTOTPNotEnabled
	}
	if !s.validateCode(code, u.TOTPSecret) {
		return autherrors.ErrInvalidOTP
	}

	u.TOTPSecret = ""
	u.TOTPEnabled = false
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:    "auth.totp_disabled",
		CompanyID: companyID,
		ActorID:   userID,
		Message:   "two-factor disabled",
	})
	return nil
}

func (s *service) validateCode(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, s.now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
