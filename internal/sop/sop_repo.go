package sop

import (
	"context"
	"database/sql"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/dbtx"
	"github.com/syrene4545/attendance-tracker-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=sop_repo.go -destination=mock/sop_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, doc *SOP) error
	Update(ctx context.Context, doc *SOP) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]SOP, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SOP, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*SOP, error)
	CreateAcknowledgement(ctx context.Context, ack *Acknowledgement) (bool, error)
	FindAcknowledgement(ctx context.Context, sopID string, version int, employeeID string) (*Acknowledgement, error)
	FindAcknowledgements(ctx context.Context, companyID, sopID string, version int) ([]Acknowledgement, error)
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

func (r *repository) Create(ctx context.Context, doc *SOP) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) Update(ctx context.Context, doc *SOP) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]SOP, error) {
	var docs []SOP
	db := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	err := db.Order("title ASC").Find(&docs).Error
	return docs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SOP, error) {
	var doc SOP
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*SOP, error) {
	var doc SOP
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateAcknowledgement reports false when the employee already acknowledged this version.
func (r *repository) CreateAcknowledgement(ctx context.Context, ack *Acknowledgement) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(ack)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindAcknowledgement(ctx context.Context, sopID string, version int, employeeID string) (*Acknowledgement, error) {
	var ack Acknowledgement
	err := r.db.WithContext(ctx).
		Where("sop_id = ? AND version = ? AND employee_id = ?", sopID, version, employeeID).
		First(&ack).Error
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (r *repository) FindAcknowledgements(ctx context.Context, companyID, sopID string, version int) ([]Acknowledgement, error) {
	var acks []Acknowledgement
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		Where("sop_id = ? AND version = ?", sopID, version).
		Order("acknowledged_at ASC").
		Find(&acks).Error
	return acks, err
}
