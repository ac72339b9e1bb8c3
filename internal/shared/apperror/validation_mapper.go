package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// recipient_phone -> Recipient Phone
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// FieldError describes one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// MapValidationError names the first failing field in the message and lists
// every failure in Details. Anything else (malformed JSON, wrong types) is
// reported as generic invalid input.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]FieldError, len(errs))
		for i, fe := range errs {
			fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
		}

		first := formatFieldName(errs[0].Field())
		if errs[0].Tag() == "required" {
			return RequiredField(first).WithDetails(fields)
		}
		return InvalidField(first).WithDetails(fields)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
