package rbacerrors

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Role with the same name already exists",
		http.StatusConflict,
	)

	ErrSystemRole = apperror.New(
		apperror.CodeInvalidState,
		"System roles cannot be renamed or deleted",
		http.StatusConflict,
	)

	ErrUnknownPermission = apperror.New(
		apperror.CodeInvalidInput,
		"One or more permissions do not exist",
		http.StatusBadRequest,
	)

	ErrInvalidRoleName = apperror.New(
		apperror.CodeInvalidInput,
		"Role name is required",
		http.StatusBadRequest,
	)
)
