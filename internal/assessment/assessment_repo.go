package assessment

import (
	"context"
	"database/sql"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"
	"github.com/syrene4545/attendance-tracker-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptFilter struct {
	AssessmentID string
	EmployeeID   string
}

//go:generate mockgen -source=assessment_repo.go -destination=mock/assessment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateAssessment(ctx context.Context, a *Assessment) error
	UpdateAssessment(ctx context.Context, a *Assessment) error
	DeleteAssessment(ctx context.Context, a *Assessment) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Assessment, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Assessment, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Assessment, error)
	SOPExists(ctx context.Context, companyID, sopID string) (bool, error)

	CreateQuestion(ctx context.Context, q *Question) error
	DeleteQuestion(ctx context.Context, assessmentID, questionID string) (int64, error)
	CountQuestions(ctx context.Context, assessmentID string) (int64, error)

	LockAttempts(ctx context.Context, companyID, assessmentID, employeeID string) ([]Attempt, error)
	CreateAttempt(ctx context.Context, at *Attempt) error
	UpdateAttempt(ctx context.Context, at *Attempt) error
	FindAttempt(ctx context.Context, companyID, id string) (*Attempt, error)
	FindAttemptForUpdate(ctx context.Context, companyID, id string) (*Attempt, error)
	FindAttempts(ctx context.Context, companyID string, filter AttemptFilter) ([]Attempt, error)
	FindOverdueForUpdate(ctx context.Context, cutoff time.Time, limit int) ([]Attempt, error)

	HasValidCertification(ctx context.Context, companyID, employeeID, assessmentID string, now time.Time) (bool, error)
	CreateBadge(ctx context.Context, b *Badge) error
	CreateCertification(ctx context.Context, c *Certification) error
	FindBadges(ctx context.Context, companyID, employeeID string) ([]Badge, error)
	FindCertifications(ctx context.Context, companyID, employeeID string) ([]Certification, error)
	FindCertificationByAttempt(ctx context.Context, companyID, attemptID string) (*Certification, error)
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

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *repository) CreateAssessment(ctx context.Context, a *Assessment) error {
	return r.db.WithContext(ctx).Omit("Questions").Create(a).Error
}

func (r *repository) UpdateAssessment(ctx context.Context, a *Assessment) error {
	return r.db.WithContext(ctx).Omit("Questions").Save(a).Error
}

func (r *repository) DeleteAssessment(ctx context.Context, a *Assessment) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Assessment, error) {
	var list []Assessment
	db := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Scopes(tenant.Scope(companyID))
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	err := db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Assessment, error) {
	var a Assessment
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Preload("Questions.Options", orderedOptions).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Assessment, error) {
	var a Assessment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) SOPExists(ctx context.Context, companyID, sopID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("sops").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", sopID).
		Count(&count).Error
	return count > 0, err
}

// CreateQuestion inserts the question together with its options.
func (r *repository) CreateQuestion(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) DeleteQuestion(ctx context.Context, assessmentID, questionID string) (int64, error) {
	db := r.db.WithContext(ctx)
	if err := db.Where("question_id = ?", questionID).Delete(&Option{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("assessment_id = ? AND id = ?", assessmentID, questionID).Delete(&Question{})
	return res.RowsAffected, res.Error
}

func (r *repository) CountQuestions(ctx context.Context, assessmentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Question{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	return count, err
}

// LockAttempts locks every attempt the employee has on the assessment, oldest first.
func (r *repository) LockAttempts(ctx context.Context, companyID, assessmentID, employeeID string) ([]Attempt, error) {
	var attempts []Attempt
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("assessment_id = ? AND employee_id = ?", assessmentID, employeeID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("started_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *repository) CreateAttempt(ctx context.Context, at *Attempt) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(at).Error
}

func (r *repository) UpdateAttempt(ctx context.Context, at *Attempt) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(at).Error
}

func (r *repository) FindAttempt(ctx context.Context, companyID, id string) (*Attempt, error) {
	var at Attempt
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&at, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *repository) FindAttemptForUpdate(ctx context.Context, companyID, id string) (*Attempt, error) {
	var at Attempt
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&at, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *repository) FindAttempts(ctx context.Context, companyID string, filter AttemptFilter) ([]Attempt, error) {
	var attempts []Attempt
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))
	if filter.AssessmentID != "" {
		db = db.Where("assessment_id = ?", filter.AssessmentID)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	err := db.Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

// FindOverdueForUpdate claims in-progress attempts that expired before cutoff.
// Rows locked by a request in flight are skipped and picked up on the next sweep.
func (r *repository) FindOverdueForUpdate(ctx context.Context, cutoff time.Time, limit int) ([]Attempt, error) {
	var attempts []Attempt
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", AttemptInProgress, cutoff).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Order("expires_at ASC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *repository) HasValidCertification(ctx context.Context, companyID, employeeID, assessmentID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Certification{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND assessment_id = ? AND expires_at > ?", employeeID, assessmentID, now).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateBadge(ctx context.Context, b *Badge) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "attempt_id"}}, DoNothing: true}).
		Create(b).Error
}

func (r *repository) CreateCertification(ctx context.Context, c *Certification) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "attempt_id"}}, DoNothing: true}).
		Create(c).Error
}

func (r *repository) FindBadges(ctx context.Context, companyID, employeeID string) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("awarded_at DESC").
		Find(&badges).Error
	return badges, err
}

func (r *repository) FindCertifications(ctx context.Context, companyID, employeeID string) ([]Certification, error) {
	var certs []Certification
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("issued_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *repository) FindCertificationByAttempt(ctx context.Context, companyID, attemptID string) (*Certification, error) {
	var c Certification
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&c, "attempt_id = ?", attemptID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
