// Package appctx is the request-scoped unit of work behind the note
// service's status changes.
//
// A RequestContext remembers the entities a request loaded and queues the
// mutations it staged. Commit runs them in order; if one fails, the ones
// that already ran are rolled back newest first, so the in-memory note is
// left as it was loaded.
//
//	rc := appctx.New(ctx)
//	n, err := appctx.GetOrFetch(rc, "note:42", loadNote)
//	_ = rc.Stage("note:42", n, &statusChange{...})
//	_ = rc.Stage("note:42", n, &saveNote{...})
//	err = rc.Commit(rc)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned by Stage and Commit after Commit.
	ErrAlreadyCommitted = errors.New("appctx: already committed")
	// ErrNilMutation is returned when staging a nil mutation.
	ErrNilMutation = errors.New("appctx: nil mutation")
	// ErrTypeMismatch is returned by GetOrFetch when key holds another type.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext wraps one request's context. It is not shared between
// requests.
type RequestContext struct {
	context.Context

	mu        sync.Mutex
	loaded    map[string]loadResult
	staged    []domain.Mutation
	committed bool
}

type loadResult struct {
	value any
	err   error
}

// New starts a unit of work on ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, loaded: map[string]loadResult{}}
}

// GetOrFetch returns what key was loaded or staged as, calling fetch the
// first time. A failed fetch is remembered as well.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	rc.mu.Lock()
	prev, seen := rc.loaded[key]
	rc.mu.Unlock()

	if !seen {
		v, err := fetch(rc.Context)
		rc.mu.Lock()
		rc.loaded[key] = loadResult{value: v, err: err}
		rc.mu.Unlock()
		return v, err
	}
	if prev.err != nil {
		return zero, prev.err
	}
	v, ok := prev.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, not %T", ErrTypeMismatch, key, prev.value, zero)
	}
	return v, nil
}

// Stage queues m and records entity as key's current value.
func (rc *RequestContext) Stage(key string, entity any, m domain.Mutation) error {
	if m == nil {
		return ErrNilMutation
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.loaded[key] = loadResult{value: entity}
	rc.staged = append(rc.staged, m)
	return nil
}

// Pending is the number of mutations waiting for Commit.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.staged)
}
