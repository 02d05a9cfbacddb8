package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrPersistence = errors.New("persistence error")
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the validation message for required fields that were empty.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewFieldError returns a ValidationError scoped to a single field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// PersistenceError is returned by store adapters when the storage layer
// rejects or fails an operation. Op names the store operation ("load",
// "save", "exists", "list", "delete"); Err is the underlying cause.
//
// errors.Is(err, ErrPersistence) matches any PersistenceError, while
// errors.Is also reaches the wrapped cause.
type PersistenceError struct {
	Op  string
	ID  int64
	Err error
}

func (e *PersistenceError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s: %s note %d: %v", ErrPersistence.Error(), e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
