package graphql

import (
	"errors"
	"fmt"
)

// BindingError is returned when type configurations cannot be constructed or
// when a resolver cannot reach a data-access client at run time.
type BindingError struct {
	// Type is the GraphQL type being bound.
	Type string
	// Field is the field being bound, if any.
	Field string
	// Message describes what went wrong.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	switch {
	case e.Type == "":
		return fmt.Sprintf("graphql: %s", e.Message)
	case e.Field == "":
		return fmt.Sprintf("graphql: binding %s: %s", e.Type, e.Message)
	default:
		return fmt.Sprintf("graphql: binding %s.%s: %s", e.Type, e.Field, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *BindingError) Unwrap() error {
	return e.Cause
}

// NewBindingError creates a BindingError for the given type and field.
func NewBindingError(typ, field, message string) *BindingError {
	return &BindingError{Type: typ, Field: field, Message: message}
}

// IsBindingError reports whether the error is a BindingError.
func IsBindingError(err error) bool {
	var e *BindingError
	return errors.As(err, &e)
}
