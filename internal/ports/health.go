package ports

import "context"

// HealthChecker reports whether one dependency of the service, such as
// the note store or the remote notes API, can serve requests.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "notes-store".
	Name() string
	// HealthCheck returns nil when healthy.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry holds the checkers consulted by the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and returns its result by name; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
