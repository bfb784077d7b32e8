package errors

import (
	"errors"
	"fmt"

	"sheetreport/pkg/contracts/domain"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeValidation    ErrorType = "VALIDATION"
	ErrTypeInvalidRange  ErrorType = "INVALID_RANGE"
	ErrTypeIO            ErrorType = "IO"
	ErrTypeSerialization ErrorType = "SERIALIZATION"
	ErrTypeNotFound      ErrorType = "NOT_FOUND"
	ErrTypeConfig        ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewValidationError reports a record that cannot be constructed as given,
// such as a negative price or stock quantity.
func NewValidationError(field, message string) *AppError {
	return NewAppError(ErrTypeValidation, fmt.Sprintf("%s: %s", field, message), nil).
		WithContext("field", field)
}

// FromDomain converts a domain rule violation into a VALIDATION AppError
// naming the offending field. Errors that already carry an AppError, and
// errors from elsewhere, are returned unchanged.
func FromDomain(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	var fieldErr *domain.FieldError
	if !errors.As(err, &fieldErr) {
		return err
	}
	return NewAppError(ErrTypeValidation, "invalid record", err).WithContext("field", fieldErr.Field)
}

// NewInvalidRangeError reports a range filter whose lower bound exceeds the upper bound.
func NewInvalidRangeError(min, max string) *AppError {
	return NewAppError(ErrTypeInvalidRange, fmt.Sprintf("invalid range: min %s is greater than max %s", min, max), nil).
		WithContext("min", min).
		WithContext("max", max)
}

// NewIOError creates a file-access error
func NewIOError(message string, cause error) *AppError {
	return NewAppError(ErrTypeIO, message, cause)
}

// NewSerializationError creates an error for workbook content that does not
// match the declared column layout.
func NewSerializationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeSerialization, message, cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain, or "".
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err's chain contains an AppError of the given type,
// including AppErrors nested as the cause of another.
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errType {
			return true
		}
		err = appErr.Cause
	}
	return false
}
