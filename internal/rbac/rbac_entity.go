package rbac

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_roles_company_name"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_roles_company_name"`
	Description string    `gorm:"type:text"`
	IsSystem    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Role) TableName() string { return "roles" }

type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Resource string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_permissions_resource_action"`
	Action   string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_permissions_resource_action"`
	Label    string    `gorm:"type:varchar(255)"`
	Category string    `gorm:"type:varchar(100)"`
}

func (Permission) TableName() string { return "permissions" }

func (p Permission) Key() string { return p.Resource + ":" + p.Action }

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (RolePermission) TableName() string { return "role_permissions" }

type EmployeeRole struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (EmployeeRole) TableName() string { return "employee_roles" }

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}
