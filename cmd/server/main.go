// Package main runs the admin notes service: the HTTP API and the reminder
// scheduler over the configured note store. Dependencies are wired with
// samber/do; SIGINT and SIGTERM trigger a graceful stop.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/admin-notes-service/internal/adapters/http"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store"
	"github.com/jsamuelsen11/admin-notes-service/internal/app"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/logging"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

const flushTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, prod or another file under configs/)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := tel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry flush failed", slog.Any("error", err))
		}
	}()

	injector := do.New()
	provide(injector, cfg, logger, tel.Metrics)
	defer func() {
		// Closes the note store through its do.Shutdowner.
		if report := injector.Shutdown(); report != nil && !report.Succeed {
			logger.Error("dependency shutdown failed", slog.String("report", report.Error()))
		}
	}()

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	if err := server.Listen(); err != nil {
		return err
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range do.MustInvoke[*store.Backend](injector).Checkers {
		registry.Register(checker)
	}

	if cfg.Reminder.Enabled {
		reminders := do.MustInvoke[*app.ReminderScheduler](injector)
		reminders.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Reminder.Timeout)
			defer cancel()
			if err := reminders.Stop(stopCtx); err != nil {
				logger.Error("reminder sweep still running at shutdown", slog.Any("error", err))
			}
		}()
	}

	logger.Info("admin notes service started",
		slog.String("profile", profile),
		slog.String("store", cfg.Storage.Driver),
		slog.Bool("reminders", cfg.Reminder.Enabled),
	)
	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
