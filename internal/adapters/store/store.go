// Package store selects and opens the configured note repository.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// remoteServiceName labels the remote notes API in metrics and health checks.
const remoteServiceName = "notes-api"

// Backend is an opened note repository and its health probes.
type Backend struct {
	Repo ports.NoteRepository
	// Checkers are registered with the readiness endpoint.
	Checkers []ports.HealthChecker

	close func() error
}

// Close releases the backend's connections. It is safe to call on a
// backend that holds none.
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// Shutdown lets a do injector close the backend.
func (b *Backend) Shutdown() error {
	return b.Close()
}

// Open builds the repository selected by cfg.Storage.Driver. metrics may be
// nil.
func Open(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		s := memstore.New()
		return &Backend{Repo: s, Checkers: []ports.HealthChecker{s}}, nil

	case config.DriverSQLite, config.DriverPostgres:
		s, err := sqlstore.Open(ctx, sqlstore.Config{
			Dialect:      sqlstore.Dialect(cfg.Storage.Driver),
			Path:         cfg.Storage.Path,
			DSN:          cfg.Storage.DSN,
			BusyTimeout:  cfg.Storage.BusyTimeout,
			MaxOpenConns: cfg.Storage.MaxOpenConns,
		})
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
		}
		return &Backend{Repo: s, Checkers: []ports.HealthChecker{s}, close: s.Close}, nil

	case config.DriverRemote:
		client := httpclient.New(&cfg.Client, remoteServiceName, metrics, logger)
		nc := acl.NewNotesClient(client, logger)
		return &Backend{Repo: nc, Checkers: []ports.HealthChecker{nc}}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
