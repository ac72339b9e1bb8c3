package user

import (
	"errors"

	usererrors "github.com/syrene4545/attendance-tracker-sub001/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_user_email":
			return usererrors.ErrUserAlreadyExists
		case "uq_user_employee":
			return usererrors.ErrEmployeeAlreadyHasUser
		}
	}

	return err
}
