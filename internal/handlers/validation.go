package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// tutorIDParam is the :id path parameter of the single-tutor routes
type tutorIDParam struct {
	ID string `uri:"id" binding:"required,mongodb"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseValidationErrors converts validator errors to user-friendly format.
// It returns nil for errors that did not come from the validator.
func ParseValidationErrors(err error) []ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	result := make([]ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		result = append(result, ValidationError{
			Field:   fieldError.Field(),
			Message: getErrorMessage(fieldError),
		})
	}

	return result
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "mongodb":
		return fe.Field() + " must be a 24 character lowercase hex document id"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
