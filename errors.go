package nexograph

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for runtime data access.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("nexograph: record not found")

	// ErrNoClient is returned when a resolver cannot locate a data-access
	// client for the configured lookup strategy.
	ErrNoClient = errors.New("nexograph: no client")
)

// NotFoundError represents a missed lookup for a record of a known model.
type NotFoundError struct {
	model string
	where map[string]any
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if len(e.where) > 0 {
		return fmt.Sprintf("nexograph: %s not found (where=%v)", e.model, e.where)
	}
	return fmt.Sprintf("nexograph: %s not found", e.model)
}

// Is reports whether the target matches the sentinel error for NotFoundError.
// This allows errors.Is(err, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Model returns the model name the lookup was scoped to.
func (e *NotFoundError) Model() string {
	return e.model
}

// Where returns the lookup conditions, if available.
func (e *NotFoundError) Where() map[string]any {
	return e.where
}

// NewNotFoundError returns a new NotFoundError for the given model.
func NewNotFoundError(model string) *NotFoundError {
	return &NotFoundError{model: model}
}

// NewNotFoundErrorWhere returns a new NotFoundError carrying the conditions
// that were searched for.
func NewNotFoundErrorWhere(model string, where map[string]any) *NotFoundError {
	return &NotFoundError{model: model, where: where}
}

// IsNotFound reports whether the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe) || errors.Is(err, ErrNotFound)
}
