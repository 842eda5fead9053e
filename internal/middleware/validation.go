package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors turns a binding error into the per-field message map the API
// returns as the data of a 400 envelope.
func FieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[fieldError.Field()] = formatValidationError(fieldError)
		}
		return fieldErrors
	}

	fieldErrors["body"] = err.Error()
	return fieldErrors
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
