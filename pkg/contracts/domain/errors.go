package domain

import "errors"

// ErrInvalidRecord matches every FieldError under errors.Is.
var ErrInvalidRecord = errors.New("invalid record")

// FieldError reports a record field that breaks a domain rule.
type FieldError struct {
	Field   string
	Message string
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidRecord
}
