package auth

import (
	"context"

	"github.com/syrene4545/attendance-tracker-sub001/internal/tenant"

	"gorm.io/gorm"
)

// Profile is the joined view used by GET /auth/me.
type Profile struct {
	UserID         string
	Email          string
	TOTPEnabled    bool
	EmployeeID     string
	EmployeeNumber string
	FullName       string
	JobTitle       string
	CompanyID      string
	CompanyName    string
}

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetProfile(ctx context.Context, companyID, userID string) (*Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProfile(ctx context.Context, companyID, userID string) (*Profile, error) {
	var p Profile
	res := r.db.WithContext(ctx).
		Table("users").
		Select(`users.id AS user_id, users.email, users.totp_enabled,
			employees.id AS employee_id, employees.employee_number, employees.full_name, employees.job_title,
			companies.id AS company_id, companies.name AS company_name`).
		Joins("JOIN employees ON employees.id = users.employee_id").
		Joins("JOIN companies ON companies.id = users.company_id").
		Scopes(tenant.ScopeTable("users", companyID)).
		Where("users.id = ? AND users.deleted_at IS NULL", userID).
		Limit(1).
		Scan(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}
