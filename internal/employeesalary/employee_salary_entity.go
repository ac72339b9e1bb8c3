package employeesalary

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeSalary is one effective-dated base salary. The record in force on a
// date is the latest one whose EffectiveDate is not after it.
type EmployeeSalary struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_effective"`
	BaseSalary    int64     `gorm:"not null;default:0"`
	EffectiveDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_employee_salary_effective"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	EmployeeName string `gorm:"->;-:migration"`
}

func (EmployeeSalary) TableName() string {
	return "employee_salaries"
}
