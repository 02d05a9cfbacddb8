package note

import (
	"errors"
	"slices"
	"strings"
	"sync"
)

// ErrEmptyRegistryValue is returned by Registry.Register for blank values.
var ErrEmptyRegistryValue = errors.New("note: registry value must not be empty")

// Registry is the extensible closed set of allowed values for an enumerated
// note field. The base set is fixed at construction. Register extends it at
// configuration time and SetFilter installs the single extension point that
// may narrow or extend the effective set.
//
// Allowed is computed fresh on every call, so registrations made after a
// note was constructed still apply to that note's later mutations.
//
// Registry is safe for concurrent use.
type Registry[T ~string] struct {
	mu     sync.RWMutex
	base   []T
	extra  []T
	filter func(allowed []T) []T
}

// NewRegistry creates a registry over the given base values.
func NewRegistry[T ~string](base ...T) *Registry[T] {
	return &Registry[T]{base: slices.Clone(base)}
}

// NewTypeRegistry returns a registry of the built-in note types.
func NewTypeRegistry() *Registry[Type] {
	return NewRegistry(TypeError, TypeWarning, TypeUpdate, TypeInfo)
}

// NewStatusRegistry returns a registry of the built-in note statuses.
func NewStatusRegistry() *Registry[Status] {
	return NewRegistry(StatusActioned, StatusUnactioned, StatusSnoozed)
}

// Register adds v to the allowed set. Registering a value that is already
// allowed is a no-op. Values are kept in registration order after the base
// set, so the effective set is deterministic.
func (r *Registry[T]) Register(v T) error {
	if strings.TrimSpace(string(v)) == "" {
		return ErrEmptyRegistryValue
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.base, v) || slices.Contains(r.extra, v) {
		return nil
	}
	r.extra = append(r.extra, v)
	return nil
}

// SetFilter installs fn as the registry's extension point. fn receives the
// base set followed by registered values and returns the effective set.
// Passing nil removes the filter.
func (r *Registry[T]) SetFilter(fn func(allowed []T) []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = fn
}

// Allowed returns the current effective set.
func (r *Registry[T]) Allowed() []T {
	r.mu.RLock()
	allowed := make([]T, 0, len(r.base)+len(r.extra))
	allowed = append(allowed, r.base...)
	allowed = append(allowed, r.extra...)
	filter := r.filter
	r.mu.RUnlock()

	if filter != nil {
		allowed = filter(allowed)
	}
	return allowed
}

// Allows reports whether v is in the current effective set.
func (r *Registry[T]) Allows(v T) bool {
	return slices.Contains(r.Allowed(), v)
}
