package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// sub_section_id -> Sub Section Id
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns the first validator failure into a readable AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "oneof":
		return fieldMessage(field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", "))
	case "min", "gte":
		return fieldMessage(field + " must be at least " + e.Param())
	case "max", "lte":
		return fieldMessage(field + " must be at most " + e.Param())
	case "gt":
		return fieldMessage(field + " must be greater than " + e.Param())
	case "uuid", "uuid4":
		return fieldMessage(field + " must be a valid id")
	default:
		return InvalidField(field)
	}
}

func fieldMessage(msg string) *AppError {
	return New(CodeInvalidInput, msg, http.StatusBadRequest)
}
