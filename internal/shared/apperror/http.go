package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves any error into a client-safe status, code and message.
// Errors that are not AppErrors collapse into ErrInternal.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{Status: status, Code: appErr.Code, Message: appErr.Message, Details: appErr.Details}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

// Is reports whether err carries the same code and message as target.
func Is(err error, target *AppError) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) || target == nil {
		return false
	}
	return appErr.Code == target.Code && appErr.Message == target.Message
}
