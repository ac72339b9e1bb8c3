package company

import (
	"errors"

	companyerrors "github.com/syrene4545/attendance-tracker-sub001/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_company_email":
			return companyerrors.ErrCompanyAlreadyExists
		case "uq_user_email", "uq_employee_email":
			return companyerrors.ErrAdminEmailTaken
		}
	}

	return err
}
