package sop

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

type SOP struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_sop_company_status"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(80);not null;default:'GENERAL'"`
	Content     string    `gorm:"type:text;not null"`
	Version     int       `gorm:"not null;default:1"`
	Status      string    `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_sop_company_status"`
	PublishedAt *time.Time
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (SOP) TableName() string {
	return "sops"
}

type Acknowledgement struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	SOPID          uuid.UUID    `gorm:"column:sop_id;type:uuid;not null;uniqueIndex:uq_sop_ack,priority:1"`
	Version        int          `gorm:"not null;uniqueIndex:uq_sop_ack,priority:2"`
	EmployeeID     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_sop_ack,priority:3"`
	AcknowledgedAt time.Time    `gorm:"not null"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Acknowledgement) TableName() string {
	return "sop_acknowledgements"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
