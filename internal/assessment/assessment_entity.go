package assessment

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"

	QuestionSingle    = "SINGLE"
	QuestionMulti     = "MULTI"
	QuestionTrueFalse = "TRUE_FALSE"

	AttemptInProgress = "IN_PROGRESS"
	AttemptSubmitted  = "SUBMITTED"
	AttemptExpired    = "EXPIRED"
)

type Assessment struct {
	ID                        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID                 uuid.UUID  `gorm:"type:uuid;not null;index:idx_assessment_company_status"`
	Title                     string     `gorm:"type:varchar(200);not null"`
	Description               string     `gorm:"type:text"`
	DurationMinutes           int        `gorm:"not null"`
	PassScore                 int        `gorm:"not null"`
	MaxAttempts               int        `gorm:"not null;default:0"`
	BadgeName                 string     `gorm:"type:varchar(120);not null"`
	CertificationValidityDays int        `gorm:"not null;default:0"`
	SOPID                     *uuid.UUID `gorm:"column:sop_id;type:uuid"`
	Status                    string     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_assessment_company_status"`
	PublishedAt               *time.Time
	CreatedBy                 uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	DeletedAt                 gorm.DeletedAt `gorm:"index"`

	Questions []Question `gorm:"foreignKey:AssessmentID"`
}

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssessmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Prompt       string    `gorm:"type:text;not null"`
	Points       int       `gorm:"not null"`
	Position     int       `gorm:"not null;default:0"`
	CreatedAt    time.Time

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "assessment_questions"
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(500);not null"`
	IsCorrect  bool      `gorm:"not null;default:false"`
	Position   int       `gorm:"not null;default:0"`
}

func (Option) TableName() string {
	return "assessment_options"
}

// Answers maps a question id to the chosen option ids.
type Answers map[string][]string

func (a Answers) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *Answers) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = Answers{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("assessment: unsupported answers column type")
	}
	out := Answers{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*a = out
	return nil
}

type Attempt struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AssessmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_attempt_assessment_employee"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_attempt_assessment_employee"`
	Status       string    `gorm:"type:varchar(20);not null;index"`
	StartedAt    time.Time `gorm:"not null"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	SubmittedAt  *time.Time
	Score        int     `gorm:"not null;default:0"`
	EarnedPoints int     `gorm:"not null;default:0"`
	TotalPoints  int     `gorm:"not null;default:0"`
	Passed       bool    `gorm:"not null;default:false"`
	Answers      Answers `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attempt) TableName() string {
	return "assessment_attempts"
}

func (a Attempt) Finished() bool {
	return a.Status != AttemptInProgress
}

type Badge struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index:idx_badge_employee"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_badge_employee"`
	AssessmentID uuid.UUID `gorm:"type:uuid;not null"`
	AttemptID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_badge_attempt"`
	BadgeName    string    `gorm:"type:varchar(120);not null"`
	AwardedAt    time.Time `gorm:"not null"`
}

func (Badge) TableName() string {
	return "assessment_badges"
}

type Certification struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cert_employee"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_cert_employee"`
	AssessmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	AttemptID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_certification_attempt"`
	IssuedAt     time.Time `gorm:"not null"`
	ExpiresAt    time.Time `gorm:"not null"`
}

func (Certification) TableName() string {
	return "assessment_certifications"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
