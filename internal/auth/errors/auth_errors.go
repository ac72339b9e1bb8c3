package autherrors

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		"INVALID_REFRESH_TOKEN",
		"Invalid refresh token",
		http.StatusUnauthorized,
	)

	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User account is inactive",
		http.StatusForbidden,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrOTPRequired = apperror.New(
		"OTP_REQUIRED",
		"One-time code is required",
		http.StatusUnauthorized,
	)

	ErrInvalidOTP = apperror.New(
		"INVALID_OTP",
		"One-time code is invalid",
		http.StatusUnauthorized,
	)

	ErrTOTPNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Two-factor setup has not been started",
		http.StatusConflict,
	)

	ErrTOTPAlreadyEnabled = apperror.New(
		apperror.CodeConflict,
		"Two-factor authentication is already enabled",
		http.StatusConflict,
	)

	ErrTOTPNotEnabled = apperror.New(
		apperror.CodeInvalidState,
		"Two-factor authentication is not enabled",
		http.StatusConflict,
	)
)
