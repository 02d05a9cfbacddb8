// Package main is notesctl, an operator CLI that manages admin notes
// directly against the configured note store.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store"
	"github.com/jsamuelsen11/admin-notes-service/internal/app"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/clock"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/logging"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/sanitize"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(openSession).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// openSession loads configuration for profile and builds a note service on
// the configured store.
func openSession(ctx context.Context, opts sessionOptions) (*session, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(opts.profile, configOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if opts.verbose {
		level = "debug"
	} else if level != "error" {
		level = "warn"
	}
	logger := logging.New(level, "text", os.Stderr)

	clk, err := clock.New(cfg.Notes.Timezone)
	if err != nil {
		return nil, err
	}
	schema, err := app.NewSchema(sanitize.New(), clk, app.SchemaConfig{
		DefaultLocale: cfg.Notes.DefaultLocale,
		DefaultSource: cfg.Notes.DefaultSource,
		ExtraTypes:    cfg.Notes.ExtraTypes,
		ExtraStatuses: cfg.Notes.ExtraStatuses,
	})
	if err != nil {
		return nil, err
	}

	backend, err := store.Open(ctx, cfg, nil, logger)
	if err != nil {
		return nil, err
	}

	svc := app.NewNoteService(schema, backend.Repo, logger, app.WithSweepWorkers(cfg.Reminder.Workers))
	return &session{
		svc:   svc,
		now:   clk.Now,
		close: backend.Close,
	}, nil
}

// configOptions turns the persistent flags into config loader options.
func configOptions(opts sessionOptions) []config.Option {
	var out []config.Option
	if opts.configDir != "" {
		out = append(out, config.WithConfigDir(opts.configDir))
	}
	if opts.driver != "" {
		out = append(out, config.WithOverrides(map[string]any{"storage.driver": opts.driver}))
	}
	return out
}
