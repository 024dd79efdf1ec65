package errors

import (
	"errors"
	"fmt"
)

// Error kinds shared by the repository, service and handler layers.
// Handlers translate them into status codes with Is.

var (
	// ErrInvalidInput indicates a malformed path parameter or request body
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidID indicates a path identifier that is not a document id
	ErrInvalidID = fmt.Errorf("invalid id: %w", ErrInvalidInput)

	// ErrUnauthorized indicates a missing, invalid or expired token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccessDenied indicates a valid token for a different owner
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal indicates an unclassified data-layer or runtime fault
	ErrInternal = errors.New("internal error")
)

// InvalidIDError reports an identifier that is not a valid document id
func InvalidIDError(id string) error {
	return fmt.Errorf("%q: %w", id, ErrInvalidID)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// AccessDeniedError creates an access denied error with context
func AccessDeniedError(reason string) error {
	if reason != "" {
		return fmt.Errorf("%s: %w", reason, ErrAccessDenied)
	}
	return ErrAccessDenied
}

// StoreError wraps a driver failure for a collection operation as internal.
func StoreError(collection, operation string, err error) error {
	return fmt.Errorf("%s.%s: %w: %w", collection, operation, ErrInternal, err)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
