package rbac

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/domain"
	rbacerrors "github.com/syrene4545/attendance-tracker-sub001/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPolicyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	InvalidateCompany(companyID string)
	Enforce(req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context, companyID string) ([]RoleResponse, error)
	GetRole(ctx context.Context, companyID, id string) (*RoleResponse, error)
	CreateRole(ctx context.Context, companyID string, req CreateRoleRequest) (*RoleResponse, error)
	UpdateRole(ctx context.Context, companyID, id string, req UpdateRoleRequest) (*RoleResponse, error)
	DeleteRole(ctx context.Context, companyID, id string) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)

	GetEmployeeRoles(ctx context.Context, companyID, employeeID string) ([]string, error)
	PrimaryRole(ctx context.Context, companyID, employeeID string) (string, error)
	SetEmployeeRoles(ctx context.Context, companyID, employeeID string, roleNames []string) ([]string, error)

	SeedDefaultRoles(ctx context.Context, tx *sql.Tx, companyID string) (map[string]uuid.UUID, error)
	AssignRole(ctx context.Context, tx *sql.Tx, companyID, employeeID, roleName string) error
	EnsurePermissions(ctx context.Context) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger

	mu        sync.Mutex
	loadedAt  map[string]time.Time
	policyTTL time.Duration
	now       func() time.Time
}

func NewService(db *sql.DB, repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		enforcer:  enforcer,
		logger:    l,
		loadedAt:  make(map[string]time.Time),
		policyTTL: defaultPolicyTTL,
		now:       time.Now,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(context.Background(), companyID)
}

func (s *service) InvalidateCompany(companyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.loadedAt, companyID)
}

// loadCompanyPolicyUnlocked replaces the company's domain in the enforcer with the
// rows currently in the database. Other companies' policies are left untouched.
func (s *service) loadCompanyPolicyUnlocked(ctx context.Context, companyID string) error {
	employeeRoles, err := s.repo.GetEmployeeRoles(ctx, companyID)
	if err != nil {
		return err
	}
	rolePerms, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return err
	}

	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(2, companyID); err != nil {
		return err
	}
	if _, err := s.enforcer.RemoveFilteredPolicy(1, companyID); err != nil {
		return err
	}

	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID, companyID); err != nil {
			return err
		}
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt[companyID] = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadedAt, ok := s.loadedAt[req.CompanyID]
	if !ok || s.now().Sub(loadedAt) > s.policyTTL {
		if err := s.loadCompanyPolicyUnlocked(context.Background(), req.CompanyID); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("employee_id", req.EmployeeID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) toRoleResponse(ctx context.Context, repo Repository, role Role) (RoleResponse, error) {
	perms, err := repo.GetPermissionsByRoleID(ctx, role.ID.String())
	if err != nil {
		return RoleResponse{}, err
	}
	keys := make([]string, 0, len(perms))
	for _, p := range perms {
		keys = append(keys, p.Key())
	}
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		IsSystem:    role.IsSystem,
		Permissions: keys,
	}, nil
}

func (s *service) ListRoles(ctx context.Context, companyID string) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		resp, err := s.toRoleResponse(ctx, s.repo, role)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *service) GetRole(ctx context.Context, companyID, id string) (*RoleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, rbacerrors.ErrRoleNotFound
	}
	role, err := s.repo.GetRoleByID(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp, err := s.toRoleResponse(ctx, s.repo, *role)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func resolvePermissionIDs(ctx context.Context, repo Repository, keys []string) ([]uuid.UUID, error) {
	perms, err := repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]uuid.UUID, len(perms))
	for _, p := range perms {
		byKey[p.Key()] = p.ID
	}

	if keys == nil {
		ids := make([]uuid.UUID, 0, len(perms))
		for _, p := range perms {
			ids = append(ids, p.ID)
		}
		return ids, nil
	}

	seen := make(map[uuid.UUID]bool, len(keys))
	ids := make([]uuid.UUID, 0, len(keys))
	for _, k := range keys {
		id, ok := byKey[strings.TrimSpace(k)]
		if !ok {
			return nil, rbacerrors.ErrUnknownPermission
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *service) CreateRole(ctx context.Context, companyID string, req CreateRoleRequest) (*RoleResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, rbacerrors.ErrInvalidRoleName
	}
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, rbacerrors.ErrRoleNotFound
	}

	if _, err := s.repo.GetRoleByName(ctx, companyID, name); err == nil {
		return nil, rbacerrors.ErrRoleAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permissions := req.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	permIDs, err := resolvePermissionIDs(ctx, qtx, permissions)
	if err != nil {
		return nil, err
	}

	role := &Role{CompanyID: cid, Name: name, Description: strings.TrimSpace(req.Description)}
	if err := qtx.CreateRole(ctx, role); err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := qtx.ReplaceRolePermissions(ctx, role.ID.String(), permIDs); err != nil {
		return nil, err
	}

	resp, err := s.toRoleResponse(ctx, qtx, *role)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.InvalidateCompany(companyID)
	return &resp, nil
}

func (s *service) UpdateRole(ctx context.Context, companyID, id string, req UpdateRoleRequest) (*RoleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, rbacerrors.ErrRoleNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	role, err := qtx.GetRoleByID(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name != "" && name != role.Name {
		if role.IsSystem {
			return nil, rbacerrors.ErrSystemRole
		}
		role.Name = name
	}
	if role.Name == RoleAdmin && req.Permissions != nil {
		return nil, rbacerrors.ErrSystemRole
	}
	if req.Description != "" {
		role.Description = strings.TrimSpace(req.Description)
	}

	if err := qtx.UpdateRole(ctx, role); err != nil {
		return nil, mapRepositoryError(err)
	}

	if req.Permissions != nil {
		permIDs, err := resolvePermissionIDs(ctx, qtx, req.Permissions)
		if err != nil {
			return nil, err
		}
		if err := qtx.ReplaceRolePermissions(ctx, role.ID.String(), permIDs); err != nil {
			return nil, err
		}
	}

	resp, err := s.toRoleResponse(ctx, qtx, *role)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.InvalidateCompany(companyID)
	return &resp, nil
}

func (s *service) DeleteRole(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return rbacerrors.ErrRoleNotFound
	}
	role, err := s.repo.GetRoleByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if role.IsSystem {
		return rbacerrors.ErrSystemRole
	}
	if err := s.repo.DeleteRole(ctx, companyID, id); err != nil {
		return err
	}

	s.InvalidateCompany(companyID)
	return nil
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		result = append(result, PermissionResponse{
			ID:       p.ID.String(),
			Key:      p.Key(),
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		})
	}
	return result, nil
}

func (s *service) GetEmployeeRoles(ctx context.Context, companyID, employeeID string) ([]string, error) {
	names, err := s.repo.GetRoleNamesForEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// PrimaryRole picks the role shown in tokens and profiles: ADMIN wins, otherwise the first by name.
func (s *service) PrimaryRole(ctx context.Context, companyID, employeeID string) (string, error) {
	names, err := s.GetEmployeeRoles(ctx, companyID, employeeID)
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if n == RoleAdmin {
			return n, nil
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	return names[0], nil
}

func (s *service) SetEmployeeRoles(ctx context.Context, companyID, employeeID string, roleNames []string) ([]string, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, rbacerrors.ErrRoleNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	seen := make(map[string]bool, len(roleNames))
	ids := make([]uuid.UUID, 0, len(roleNames))
	names := make([]string, 0, len(roleNames))
	for _, raw := range roleNames {
		name := strings.ToUpper(strings.TrimSpace(raw))
		if seen[name] {
			continue
		}
		seen[name] = true

		role, err := qtx.GetRoleByName(ctx, companyID, name)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		ids = append(ids, role.ID)
		names = append(names, role.Name)
	}

	if err := qtx.ReplaceEmployeeRoles(ctx, employeeID, ids); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.InvalidateCompany(companyID)
	sort.Strings(names)
	return names, nil
}

// SeedDefaultRoles creates the system roles for a new company inside tx.
func (s *service) SeedDefaultRoles(ctx context.Context, tx *sql.Tx, companyID string) (map[string]uuid.UUID, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, err
	}

	qtx := s.repo.WithTx(tx)
	names := make([]string, 0, len(DefaultRoles))
	for name := range DefaultRoles {
		names = append(names, name)
	}
	sort.Strings(names)

	created := make(map[string]uuid.UUID, len(names))
	for _, name := range names {
		permIDs, err := resolvePermissionIDs(ctx, qtx, DefaultRoles[name])
		if err != nil {
			return nil, err
		}

		role := &Role{CompanyID: cid, Name: name, Description: "System role", IsSystem: true}
		if err := qtx.CreateRole(ctx, role); err != nil {
			return nil, mapRepositoryError(err)
		}
		if err := qtx.ReplaceRolePermissions(ctx, role.ID.String(), permIDs); err != nil {
			return nil, err
		}
		created[name] = role.ID
	}

	s.InvalidateCompany(companyID)
	return created, nil
}

func (s *service) AssignRole(ctx context.Context, tx *sql.Tx, companyID, employeeID, roleName string) error {
	qtx := s.repo.WithTx(tx)
	role, err := qtx.GetRoleByName(ctx, companyID, strings.ToUpper(roleName))
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.AddEmployeeRole(ctx, employeeID, role.ID); err != nil {
		return err
	}

	s.InvalidateCompany(companyID)
	return nil
}

func (s *service) EnsurePermissions(ctx context.Context) error {
	perms := make([]Permission, len(Catalogue))
	copy(perms, Catalogue)
	if err := s.repo.UpsertPermissions(ctx, perms); err != nil {
		return err
	}
	s.logger.Info("permission catalogue ensured", zap.Int("count", len(perms)))
	return nil
}
