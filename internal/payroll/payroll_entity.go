package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusApproved  = "APPROVED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"

	ItemEarning   = "EARNING"
	ItemDeduction = "DEDUCTION"
	ItemTax       = "TAX"
)

type Payroll struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1;index:idx_payroll_company_status"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:2"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	// periode dalam format YYYY-MM, start/end diturunkan darinya
	Period      string    `gorm:"type:char(7);not null;uniqueIndex:uq_payroll_employee_period,priority:3"`
	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	// nilai uang dalam satuan terkecil
	BaseSalary     int64 `gorm:"type:bigint;not null;default:0"`
	GrossSalary    int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeduction int64 `gorm:"type:bigint;not null;default:0"`
	Tax            int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary      int64 `gorm:"type:bigint;not null;default:0"`

	Status     string     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_payroll_company_status"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	PaidAt     *time.Time

	PayslipRequestedAt *time.Time
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Items []PayrollItem `gorm:"foreignKey:PayrollID"`
}

type PayrollItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemType  string    `gorm:"type:varchar(20);not null"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Amount    int64     `gorm:"type:bigint;not null;default:0"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (PayrollItem) TableName() string {
	return "payroll_items"
}

// Payslip holds the rendered PDF for a payroll, one row per payroll.
type Payslip struct {
	PayrollID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(160);not null"`
	Content     []byte    `gorm:"type:bytea;not null"`
	GeneratedAt time.Time `gorm:"not null"`
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName       string    `gorm:"column:full_name"`
	EmployeeNumber string    `gorm:"column:employee_number"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
