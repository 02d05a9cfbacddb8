// Package sqlstore implements the note repository on SQL databases through
// sqlx and squirrel. SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq)
// are supported; they differ only in placeholder format and schema.
package sqlstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

var (
	_ ports.NoteRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Dialect selects the SQL flavor.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Config describes how to open the database.
type Config struct {
	Dialect Dialect
	// Path is the SQLite database file, or ":memory:".
	Path string
	// DSN is the PostgreSQL connection string.
	DSN          string
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// Store is a SQL-backed ports.NoteRepository. It is safe for concurrent use.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
	sb      sq.StatementBuilderType
}

// Open connects to the configured database and applies the schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Dialect {
	case SQLite:
		db, err = openSQLite(ctx, cfg)
	case Postgres:
		if strings.TrimSpace(cfg.DSN) == "" {
			return nil, errors.New("sqlstore: postgres dsn is required")
		}
		db, err = sqlx.Open("postgres", cfg.DSN)
		if err == nil && cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
	default:
		return nil, fmt.Errorf("sqlstore: unsupported dialect %q", cfg.Dialect)
	}
	if err != nil {
		return nil, err
	}

	s := New(db, cfg.Dialect)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database. The schema is not touched; call Migrate.
func New(db *sqlx.DB, dialect Dialect) *Store {
	sb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == Postgres {
		sb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return &Store{db: db, dialect: dialect, sb: sb}
}

func openSQLite(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("sqlstore: sqlite path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps an
	// in-memory database alive for the life of the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.BusyTimeout > 0 {
		_, _ = db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	_, _ = db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
	_, _ = db.ExecContext(ctx, "PRAGMA synchronous = NORMAL")

	return db, nil
}

// Migrate creates the notes table and its indexes if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	ddl, err := migrationsFS.ReadFile("migrations/" + string(s.dialect) + ".sql")
	if err != nil {
		return fmt.Errorf("reading %s schema: %w", s.dialect, err)
	}
	if _, err := s.db.ExecContext(ctx, string(ddl)); err != nil {
		return fmt.Errorf("applying %s schema: %w", s.dialect, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "notes-store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
