package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_employee_email;uniqueIndex:uq_employee_number"`
	DepartmentID     *uuid.UUID          `gorm:"type:uuid;index"`
	Department       *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	EmployeeNumber   string              `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName         string              `gorm:"type:varchar(150);not null"`
	Email            string              `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Phone            string              `gorm:"type:varchar(30)"`
	JobTitle         string              `gorm:"type:varchar(100)"`
	HireDate         time.Time           `gorm:"type:date;not null"`
	EmploymentStatus string              `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// EmployeeDepartment dipakai hanya untuk preload nama department.
type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}
