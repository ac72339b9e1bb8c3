package sop

import (
	"errors"

	soperrors "github.com/syrene4545/attendance-tracker-sub001/internal/sop/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return soperrors.ErrSOPNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return soperrors.ErrSOPNotFound
	}

	return err
}
