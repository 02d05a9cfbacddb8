package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/admin-notes-service/internal/adapters/http"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store"
	"github.com/jsamuelsen11/admin-notes-service/internal/app"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/clock"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/health"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/sanitize"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// provide registers the service graph. Nothing is built until invoked;
// metrics may be nil when telemetry is off.
func provide(i do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(do.Injector) (*clock.Clock, error) {
		return clock.New(cfg.Notes.Timezone)
	})

	do.Provide(i, func(i do.Injector) (*note.Schema, error) {
		return app.NewSchema(sanitize.New(), do.MustInvoke[*clock.Clock](i), app.SchemaConfig{
			DefaultLocale: cfg.Notes.DefaultLocale,
			DefaultSource: cfg.Notes.DefaultSource,
			ExtraTypes:    cfg.Notes.ExtraTypes,
			ExtraStatuses: cfg.Notes.ExtraStatuses,
		})
	})

	do.Provide(i, func(do.Injector) (*store.Backend, error) {
		return store.Open(context.Background(), cfg, metrics, logger)
	})

	do.Provide(i, func(i do.Injector) (ports.NoteService, error) {
		return app.NewNoteService(
			do.MustInvoke[*note.Schema](i),
			do.MustInvoke[*store.Backend](i).Repo,
			logger,
			app.WithTransitionRecorder(metrics),
			app.WithSweepWorkers(cfg.Reminder.Workers),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*app.ReminderScheduler, error) {
		return app.NewReminderScheduler(
			do.MustInvoke[ports.NoteService](i),
			cfg.Reminder.Schedule,
			do.MustInvoke[*clock.Clock](i).Location(),
			cfg.Reminder.Timeout,
			logger,
			app.WithSweepRecorder(metrics),
		)
	})

	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		notes := handlers.NewNoteHandler(do.MustInvoke[ports.NoteService](i), do.MustInvoke[*clock.Clock](i).Now)
		probes := handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i))
		return adapthttp.NewRouter(notes, probes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
