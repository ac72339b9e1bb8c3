package payroll

import (
	"errors"

	payrollerrors "github.com/syrene4545/attendance-tracker-sub001/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_employee_period":
			return payrollerrors.ErrPayrollLocked
		case pgErr.Code == "22P02":
			return payrollerrors.ErrPayrollNotFound
		}
	}

	return err
}
