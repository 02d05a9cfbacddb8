// Package health runs the readiness checks of the notes service's
// dependencies.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const defaultCheckTimeout = 2 * time.Second

// Registry runs registered checkers concurrently, each bounded by its own
// timeout so one hung dependency cannot stall the probe.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check. Non-positive values keep the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: defaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker, replacing any earlier checker of the same name.
// Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.checkers {
		if c.Name() == name {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker and returns its result by name.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for _, c := range checkers {
		wg.Go(func() {
			err := r.check(ctx, c)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: no answer within %s", c.Name(), r.timeout)
	}
}
