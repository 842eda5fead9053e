package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Curso errors
var (
	ErrCursoNotFound = errors.New("curso not found")
	ErrCursoInvalid  = errors.New("curso invalid")
)

// Tema errors
var (
	ErrTemaInvalid = errors.New("tema invalid")
)

// NewCursoNotFoundError creates a curso-not-found error carrying a user message
func NewCursoNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrCursoNotFound,
		Message: message,
	}
}

// NewCursoInvalidError creates an invalid-curso error carrying a user message
func NewCursoInvalidError(message string) error {
	return &CustomError{
		Err:     ErrCursoInvalid,
		Message: message,
	}
}

// NewTemaError creates a tema business-rule error carrying a user message
func NewTemaError(message string) error {
	return &CustomError{
		Err:     ErrTemaInvalid,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// DataBaseError wraps a store failure with the entity context needed for
// diagnostics. Message is the user-safe text; the rest is logged server-side
// and never exposed to the caller.
type DataBaseError struct {
	Message    string
	Entity     string
	EntityID   *int64
	EntityName string
	Operation  string
	Cause      error
}

// Error implements error interface
func (e *DataBaseError) Error() string {
	return fmt.Sprintf("database error on %s %q (op %s): %v", e.Entity, e.EntityName, e.Operation, e.Cause)
}

// Unwrap implements errors.Unwrap interface
func (e *DataBaseError) Unwrap() error {
	return e.Cause
}

// NewDataBaseError creates a DataBaseError with full entity context
func NewDataBaseError(message, entity string, entityID *int64, entityName, operation string, cause error) *DataBaseError {
	return &DataBaseError{
		Message:    message,
		Entity:     entity,
		EntityID:   entityID,
		EntityName: entityName,
		Operation:  operation,
		Cause:      cause,
	}
}
