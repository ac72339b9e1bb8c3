package rbac

import (
	"context"
	"database/sql"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error)

	ListRoles(ctx context.Context, companyID string) ([]Role, error)
	GetRoleByID(ctx context.Context, companyID, id string) (*Role, error)
	GetRoleByName(ctx context.Context, companyID, name string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, companyID, id string) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	UpsertPermissions(ctx context.Context, perms []Permission) error
	GetPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, permIDs []uuid.UUID) error

	GetRoleNamesForEmployee(ctx context.Context, companyID, employeeID string) ([]string, error)
	ReplaceEmployeeRoles(ctx context.Context, employeeID string, roleIDs []uuid.UUID) error
	AddEmployeeRole(ctx context.Context, employeeID string, roleID uuid.UUID) error
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

func (r *repository) GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow

	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(ctx context.Context, companyID, id string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) GetRoleByName(ctx context.Context, companyID, name string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND name = ?", companyID, name).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) DeleteRole(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		Delete(&Role{}).Error
}

func (r *repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) UpsertPermissions(ctx context.Context, perms []Permission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource"}, {Name: "action"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "category"}),
		}).
		Create(&perms).Error
}

func (r *repository) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.resource, permissions.action").
		Scan(&result).Error
	return result, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID string, permIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM role_permissions WHERE role_id = ?", roleID).Error; err != nil {
		return err
	}
	if len(permIDs) == 0 {
		return nil
	}

	rid, err := uuid.Parse(roleID)
	if err != nil {
		return err
	}
	rows := make([]RolePermission, 0, len(permIDs))
	for _, pid := range permIDs {
		rows = append(rows, RolePermission{RoleID: rid, PermissionID: pid})
	}
	return db.Create(&rows).Error
}

func (r *repository) GetRoleNamesForEmployee(ctx context.Context, companyID, employeeID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("roles.name").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.company_id = ? AND employee_roles.employee_id = ?", companyID, employeeID).
		Order("roles.name").
		Pluck("roles.name", &names).Error
	return names, err
}

func (r *repository) ReplaceEmployeeRoles(ctx context.Context, employeeID string, roleIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM employee_roles WHERE employee_id = ?", employeeID).Error; err != nil {
		return err
	}
	for _, rid := range roleIDs {
		if err := r.AddEmployeeRole(ctx, employeeID, rid); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) AddEmployeeRole(ctx context.Context, employeeID string, roleID uuid.UUID) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&EmployeeRole{EmployeeID: eid, RoleID: roleID}).Error
}
