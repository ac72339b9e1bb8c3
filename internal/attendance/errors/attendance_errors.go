package attendanceerrors

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Already clocked in for today",
		http.StatusConflict,
	)

	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"No clock-in found for today",
		http.StatusConflict,
	)

	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeInvalidState,
		"Already clocked out for today",
		http.StatusConflict,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)

	ErrInvalidCorrection = apperror.New(
		apperror.CodeInvalidInput,
		"clock_out must be after clock_in and both must be RFC3339 timestamps",
		http.StatusBadRequest,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must use YYYY-MM",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to must use YYYY-MM-DD and from must not be after to",
		http.StatusBadRequest,
	)

	ErrInvalidIdentity = apperror.New(
		apperror.CodeUnauthorized,
		"Token does not carry a valid employee",
		http.StatusUnauthorized,
	)
)
