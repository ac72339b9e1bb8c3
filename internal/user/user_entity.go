package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_user_employee"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password   string    `gorm:"column:password;type:text;not null"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`

	// TOTP: secret aktif dan secret yang menunggu verifikasi kode pertama.
	TOTPSecret        string `gorm:"column:totp_secret;type:varchar(64)"`
	TOTPPendingSecret string `gorm:"column:totp_pending_secret;type:varchar(64)"`
	TOTPEnabled       bool   `gorm:"column:totp_enabled;not null;default:false"`

	LastLoginAt *time.Time     `gorm:"column:last_login_at"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`

	// Relasi ke Employee (untuk mengambil data Profile)
	Employee *UserEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
}

// UserEmployee adalah sub-struct untuk join data minimal dari employee
type UserEmployee struct {
	ID             uuid.UUID `gorm:"primaryKey"`
	CompanyID      uuid.UUID `gorm:"column:company_id"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (UserEmployee) TableName() string {
	return "employees"
}
