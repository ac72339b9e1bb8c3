package leave

import (
	"errors"

	leaveerrors "github.com/syrene4545/attendance-tracker-sub001/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02":
			return leaveerrors.ErrLeaveNotFound
		case "23P01":
			return leaveerrors.ErrLeaveOverlap
		}
	}

	return err
}
