package assessmenterrors

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
	ErrAssessmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"assessment not found",
		http.StatusNotFound,
	)
	ErrSOPNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"linked SOP does not exist",
		http.StatusBadRequest,
	)
	ErrQuestionNotFound = apperror.New(
		apperror.CodeNotFound,
		"question not found",
		http.StatusNotFound,
	)
	ErrInvalidQuestion = apperror.New(
		apperror.CodeInvalidInput,
		"question options do not match its type",
		http.StatusBadRequest,
	)
	ErrAssessmentLocked = apperror.New(
		apperror.CodeInvalidState,
		"assessment can only be edited while in DRAFT",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid assessment status transition",
		http.StatusConflict,
	)
	ErrNoQuestions = apperror.New(
		apperror.CodeInvalidState,
		"assessment needs at least one question before publishing",
		http.StatusConflict,
	)
	ErrAssessmentNotPublished = apperror.New(
		apperror.CodeInvalidState,
		"assessment is not open for attempts",
		http.StatusConflict,
	)
	ErrAlreadyCertified = apperror.New(
		apperror.CodeConflict,
		"you already hold a valid certification for this assessment",
		http.StatusConflict,
	)
	ErrMaxAttemptsReached = apperror.New(
		apperror.CodeInvalidState,
		"maximum number of attempts reached",
		http.StatusConflict,
	)
	ErrAttemptNotFound = apperror.New(
		apperror.CodeNotFound,
		"attempt not found",
		http.StatusNotFound,
	)
	ErrAttemptInProgress = apperror.New(
		apperror.CodeConflict,
		"another attempt is already in progress",
		http.StatusConflict,
	)
	ErrAttemptFinished = apperror.New(
		apperror.CodeInvalidState,
		"attempt is already finished",
		http.StatusConflict,
	)
	ErrAttemptExpired = apperror.New(
		apperror.CodeInvalidState,
		"attempt time is over",
		http.StatusConflict,
	)
	ErrInvalidAnswer = apperror.New(
		apperror.CodeInvalidInput,
		"answer references an unknown question or option",
		http.StatusBadRequest,
	)
)
