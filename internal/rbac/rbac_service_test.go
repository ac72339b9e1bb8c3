package rbac_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/domain"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	rbacerrors "github.com/syrene4545/attendance-tracker-sub001/internal/rbac/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac/infra"
	rbacMock "github.com/syrene4545/attendance-tracker-sub001/internal/rbac/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *rbacMock.MockRepository
	service rbac.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	enforcer, err := infra.NewEnforcer("")
	require.NoError(t, err)

	repo := rbacMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		service: rbac.NewService(db, repo, enforcer),
	}
}

func TestRBACService_Enforce(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().GetEmployeeRoles(gomock.Any(), "company-1").Return([]rbac.EmployeeRoleRow{
		{EmployeeID: "emp-1", RoleID: "role-owner"},
	}, nil).Times(1)
	deps.repo.EXPECT().GetRolePermissions(gomock.Any(), "company-1").Return([]rbac.RolePermissionRow{
		{RoleID: "role-owner", Resource: "employee", Action: "read"},
	}, nil).Times(1)

	allowed, err := deps.service.Enforce(domain.EnforceRequest{EmployeeID: "emp-1", CompanyID: "company-1", Resource: "employee", Action: "read"})
	assert.NoError(t, err)
	assert.True(t, allowed)

	// cached policy: no second load
	allowed, err = deps.service.Enforce(domain.EnforceRequest{EmployeeID: "emp-1", CompanyID: "company-1", Resource: "employee", Action: "delete"})
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = deps.service.Enforce(domain.EnforceRequest{EmployeeID: "emp-2", CompanyID: "company-1", Resource: "employee", Action: "read"})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_EnforceIsolatesCompanies(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().GetEmployeeRoles(gomock.Any(), "company-1").Return([]rbac.EmployeeRoleRow{{EmployeeID: "emp-1", RoleID: "r1"}}, nil)
	deps.repo.EXPECT().GetRolePermissions(gomock.Any(), "company-1").Return([]rbac.RolePermissionRow{{RoleID: "r1", Resource: "payroll", Action: "read"}}, nil)
	deps.repo.EXPECT().GetEmployeeRoles(gomock.Any(), "company-2").Return(nil, nil)
	deps.repo.EXPECT().GetRolePermissions(gomock.Any(), "company-2").Return(nil, nil)

	allowed, err := deps.service.Enforce(domain.EnforceRequest{EmployeeID: "emp-1", CompanyID: "company-1", Resource: "payroll", Action: "read"})
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = deps.service.Enforce(domain.EnforceRequest{EmployeeID: "emp-1", CompanyID: "company-2", Resource: "payroll", Action: "read"})
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_InvalidateReloads(t *testing.T) {
	deps := setupServiceTest(t)

	gomock.InOrder(
		deps.repo.EXPECT().GetEmployeeRoles(gomock.Any(), "c").Return(nil, nil),
		deps.repo.EXPECT().GetRolePermissions(gomock.Any(), "c").Return(nil, nil),
		deps.repo.EXPECT().GetEmployeeRoles(gomock.Any(), "c").Return([]rbac.EmployeeRoleRow{{EmployeeID: "e", RoleID: "r"}}, nil),
		deps.repo.EXPECT().GetRolePermissions(gomock.Any(), "c").Return([]rbac.RolePermissionRow{{RoleID: "r", Resource: "sop", Action: "manage"}}, nil),
	)

	req := domain.EnforceRequest{EmployeeID: "e", CompanyID: "c", Resource: "sop", Action: "manage"}
	allowed, err := deps.service.Enforce(req)
	require.NoError(t, err)
	assert.False(t, allowed)

	deps.service.InvalidateCompany("c")

	allowed, err = deps.service.Enforce(req)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRBACService_CreateRole(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	permID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetRoleByName(ctx, companyID, "SUPERVISOR").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ListPermissions(ctx).Return([]rbac.Permission{{ID: permID, Resource: "leave", Action: "approve"}}, nil)
		deps.repo.EXPECT().CreateRole(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *rbac.Role) error {
			assert.Equal(t, "SUPERVISOR", r.Name)
			assert.False(t, r.IsSystem)
			r.ID = uuid.New()
			return nil
		})
		deps.repo.EXPECT().ReplaceRolePermissions(ctx, gomock.Any(), []uuid.UUID{permID}).Return(nil)
		deps.repo.EXPECT().GetPermissionsByRoleID(ctx, gomock.Any()).Return([]rbac.Permission{{ID: permID, Resource: "leave", Action: "approve"}}, nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.CreateRole(ctx, companyID, rbac.CreateRoleRequest{Name: " supervisor ", Permissions: []string{"leave:approve"}})
		require.NoError(t, err)
		assert.Equal(t, "SUPERVISOR", resp.Name)
		assert.Equal(t, []string{"leave:approve"}, resp.Permissions)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetRoleByName(ctx, companyID, "ADMIN").Return(&rbac.Role{Name: "ADMIN"}, nil)

		_, err := deps.service.CreateRole(ctx, companyID, rbac.CreateRoleRequest{Name: "admin"})
		assert.ErrorIs(t, err, rbacerrors.ErrRoleAlreadyExists)
	})

	t.Run("unknown permission rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetRoleByName(ctx, companyID, "AUDITOR").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ListPermissions(ctx).Return([]rbac.Permission{}, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CreateRole(ctx, companyID, rbac.CreateRoleRequest{Name: "auditor", Permissions: []string{"nuke:all"}})
		assert.ErrorIs(t, err, rbacerrors.ErrUnknownPermission)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestRBACService_DeleteRole(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	roleID := uuid.New().String()

	t.Run("system role", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetRoleByID(ctx, companyID, roleID).Return(&rbac.Role{Name: rbac.RoleAdmin, IsSystem: true}, nil)

		err := deps.service.DeleteRole(ctx, companyID, roleID)
		assert.ErrorIs(t, err, rbacerrors.ErrSystemRole)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetRoleByID(ctx, companyID, roleID).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.DeleteRole(ctx, companyID, roleID)
		assert.ErrorIs(t, err, rbacerrors.ErrRoleNotFound)
	})

	t.Run("custom role", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetRoleByID(ctx, companyID, roleID).Return(&rbac.Role{Name: "AUDITOR"}, nil)
		deps.repo.EXPECT().DeleteRole(ctx, companyID, roleID).Return(nil)

		assert.NoError(t, deps.service.DeleteRole(ctx, companyID, roleID))
	})
}

func TestRBACService_UpdateRole_SystemRename(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.New().String()
	roleID := uuid.New().String()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().GetRoleByID(ctx, companyID, roleID).Return(&rbac.Role{Name: rbac.RoleEmployee, IsSystem: true}, nil)
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.UpdateRole(ctx, companyID, roleID, rbac.UpdateRoleRequest{Name: "STAFF"})
	assert.ErrorIs(t, err, rbacerrors.ErrSystemRole)
}

func TestRBACService_SeedDefaultRoles(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.New().String()

	catalogue := make([]rbac.Permission, 0, len(rbac.Catalogue))
	for _, p := range rbac.Catalogue {
		p.ID = uuid.New()
		catalogue = append(catalogue, p)
	}

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().ListPermissions(ctx).Return(catalogue, nil).Times(2)

	var created []string
	deps.repo.EXPECT().CreateRole(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *rbac.Role) error {
		assert.True(t, r.IsSystem)
		assert.Equal(t, companyID, r.CompanyID.String())
		created = append(created, r.Name)
		r.ID = uuid.New()
		return nil
	}).Times(2)

	var adminPerms, employeePerms int
	deps.repo.EXPECT().ReplaceRolePermissions(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ids []uuid.UUID) error {
		if adminPerms == 0 {
			adminPerms = len(ids)
		} else {
			employeePerms = len(ids)
		}
		return nil
	}).Times(2)

	roles, err := deps.service.SeedDefaultRoles(ctx, nil, companyID)
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.Equal(t, []string{rbac.RoleAdmin, rbac.RoleEmployee}, created)
	assert.Equal(t, len(rbac.Catalogue), adminPerms)
	assert.Equal(t, len(rbac.DefaultRoles[rbac.RoleEmployee]), employeePerms)
}

func TestRBACService_SetEmployeeRoles(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	adminID := uuid.New()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().GetRoleByName(ctx, companyID, "ADMIN").Return(&rbac.Role{ID: adminID, Name: "ADMIN"}, nil)
	deps.repo.EXPECT().ReplaceEmployeeRoles(ctx, employeeID, []uuid.UUID{adminID}).Return(nil)
	deps.sqlMock.ExpectCommit()

	roles, err := deps.service.SetEmployeeRoles(ctx, companyID, employeeID, []string{"admin", "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN"}, roles)
}

func TestRBACService_PrimaryRole(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetRoleNamesForEmployee(ctx, "c", "e1").Return([]string{"ADMIN", "EMPLOYEE"}, nil)
	deps.repo.EXPECT().GetRoleNamesForEmployee(ctx, "c", "e2").Return([]string{"EMPLOYEE"}, nil)
	deps.repo.EXPECT().GetRoleNamesForEmployee(ctx, "c", "e3").Return(nil, nil)

	role, _ := deps.service.PrimaryRole(ctx, "c", "e1")
	assert.Equal(t, "ADMIN", role)
	role, _ = deps.service.PrimaryRole(ctx, "c", "e2")
	assert.Equal(t, "EMPLOYEE", role)
	role, _ = deps.service.PrimaryRole(ctx, "c", "e3")
	assert.Equal(t, "", role)
}
