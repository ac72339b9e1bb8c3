package soperrors

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeUnauthorized,
		"token does not carry a valid employee",
		http.StatusUnauthorized,
	)
	ErrSOPNotFound = apperror.New(
		apperror.CodeNotFound,
		"SOP not found",
		http.StatusNotFound,
	)
	ErrSOPArchived = apperror.New(
		apperror.CodeInvalidState,
		"archived SOP is read-only",
		http.StatusConflict,
	)
	ErrAlreadyPublished = apperror.New(
		apperror.CodeInvalidState,
		"SOP is already published",
		http.StatusConflict,
	)
	ErrNotPublished = apperror.New(
		apperror.CodeInvalidState,
		"only published SOP can be acknowledged",
		http.StatusConflict,
	)
	ErrEmptyContent = apperror.New(
		apperror.CodeInvalidInput,
		"SOP title and content cannot be empty",
		http.StatusBadRequest,
	)
)
