// Package gen projects a Prisma data-model document into GraphQL-facing type
// information and orchestrates the emitters that turn it into artifacts.
package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("nexograph: invalid configuration")
	// ErrInvalidSchema indicates a data-model definition error.
	ErrInvalidSchema = errors.New("nexograph: invalid data model")
	// ErrUnknownReference indicates a dangling model or enum reference.
	ErrUnknownReference = errors.New("nexograph: unknown reference")
	// ErrEmissionFailed indicates a module emission failure.
	ErrEmissionFailed = errors.New("nexograph: emission failed")
)

// ConfigError represents an unrecognized or invalid settings value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("nexograph: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("nexograph: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// SchemaError represents a structural data-model violation that is not a
// dangling reference: duplicate names, a field without a kind, a relation
// without a target.
type SchemaError struct {
	Model   string
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	msg := "nexograph: schema error"
	if e.Model != "" {
		msg += " on model " + e.Model
	}
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(model, field, message string, cause error) *SchemaError {
	return &SchemaError{Model: model, Field: field, Message: message, Cause: cause}
}

// UnknownModelError represents a relation field whose target model does not
// exist in the data-model document.
type UnknownModelError struct {
	Model string // model declaring the field
	Field string
	Ref   string // the missing target
}

// Error implements the error interface.
func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("nexograph: unknown model %q referenced by %s.%s", e.Ref, e.Model, e.Field)
}

// Is reports whether the target matches the sentinel error for UnknownModelError.
func (e *UnknownModelError) Is(target error) bool {
	return target == ErrUnknownReference
}

// NewUnknownModelError creates a new UnknownModelError.
func NewUnknownModelError(model, field, ref string) *UnknownModelError {
	return &UnknownModelError{Model: model, Field: field, Ref: ref}
}

// UnknownEnumError represents an enum field whose enum does not exist in the
// data-model document.
type UnknownEnumError struct {
	Model string
	Field string
	Ref   string
}

// Error implements the error interface.
func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("nexograph: unknown enum %q referenced by %s.%s", e.Ref, e.Model, e.Field)
}

// Is reports whether the target matches the sentinel error for UnknownEnumError.
func (e *UnknownEnumError) Is(target error) bool {
	return target == ErrUnknownReference
}

// NewUnknownEnumError creates a new UnknownEnumError.
func NewUnknownEnumError(model, field, ref string) *UnknownEnumError {
	return &UnknownEnumError{Model: model, Field: field, Ref: ref}
}

// EmissionError represents a name collision or unrenderable construct in a
// module emitter.
type EmissionError struct {
	Artifact string
	Name     string
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *EmissionError) Error() string {
	msg := "nexograph: emission error"
	if e.Artifact != "" {
		msg += " in " + e.Artifact
	}
	if e.Name != "" {
		msg += fmt.Sprintf(" for %q", e.Name)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *EmissionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for EmissionError.
func (e *EmissionError) Is(target error) bool {
	return target == ErrEmissionFailed
}

// NewEmissionError creates a new EmissionError.
func NewEmissionError(artifact, name, message string, cause error) *EmissionError {
	return &EmissionError{Artifact: artifact, Name: name, Message: message, Cause: cause}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// IsUnknownModelError reports whether the error is an UnknownModelError.
func IsUnknownModelError(err error) bool {
	var e *UnknownModelError
	return errors.As(err, &e)
}

// IsUnknownEnumError reports whether the error is an UnknownEnumError.
func IsUnknownEnumError(err error) bool {
	var e *UnknownEnumError
	return errors.As(err, &e)
}

// IsEmissionError reports whether the error is an EmissionError.
func IsEmissionError(err error) bool {
	var e *EmissionError
	return errors.As(err, &e)
}
