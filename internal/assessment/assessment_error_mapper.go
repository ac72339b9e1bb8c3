package assessment

import (
	"errors"

	assessmenterrors "github.com/syrene4545/attendance-tracker-sub001/internal/assessment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assessmenterrors.ErrAssessmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attempt_in_progress":
			return assessmenterrors.ErrAttemptInProgress
		case pgErr.Code == "22P02":
			return assessmenterrors.ErrAssessmentNotFound
		}
	}

	return err
}

func mapAttemptError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assessmenterrors.ErrAttemptNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return assessmenterrors.ErrAttemptNotFound
	}
	return err
}
