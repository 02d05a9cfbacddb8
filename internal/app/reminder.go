package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// ReminderScheduler periodically returns snoozed notes whose reminder has
// passed to unactioned.
type ReminderScheduler struct {
	service ports.NoteService
	logger  *slog.Logger
	now     func() time.Time
	timeout time.Duration

	c       *cron.Cron
	entryID cron.EntryID
	metrics SweepRecorder
}

// SweepRecorder is told the outcome of every sweep.
type SweepRecorder interface {
	RecordSweep(ctx context.Context, elapsed time.Duration, unsnoozed, failed int, err error)
}

// SchedulerOption configures a ReminderScheduler.
type SchedulerOption func(*ReminderScheduler)

// WithSweepRecorder reports sweep outcomes to r.
func WithSweepRecorder(r SweepRecorder) SchedulerOption {
	return func(s *ReminderScheduler) { s.metrics = r }
}

// NewReminderScheduler registers a sweep on schedule, a standard cron
// expression with optional seconds field or a descriptor such as
// "@every 5m", evaluated in loc.
func NewReminderScheduler(svc ports.NoteService, schedule string, loc *time.Location, timeout time.Duration, logger *slog.Logger, opts ...SchedulerOption) (*ReminderScheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	cl := cronLogger{logger: logger}

	s := &ReminderScheduler{
		service: svc,
		logger:  logger,
		now:     time.Now,
		timeout: timeout,
		c: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}
	for _, opt := range opts {
		opt(s)
	}

	id, err := s.c.AddFunc(schedule, func() {
		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		_, _ = s.Sweep(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("parsing reminder schedule %q: %w", schedule, err)
	}
	s.entryID = id

	return s, nil
}

// Start begins running sweeps in the background.
func (s *ReminderScheduler) Start() {
	s.c.Start()
	s.logger.Info("reminder scheduler started",
		slog.Time("next_run", s.c.Entry(s.entryID).Next),
	)
}

// Stop prevents further sweeps and waits for a running one to finish or
// for ctx to be done.
func (s *ReminderScheduler) Stop(ctx context.Context) error {
	select {
	case <-s.c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep runs one unsnooze pass immediately.
func (s *ReminderScheduler) Sweep(ctx context.Context) (*ports.UnsnoozeResult, error) {
	start := time.Now()
	res, err := s.service.UnsnoozeDue(ctx, s.now())
	if s.metrics != nil {
		var unsnoozed, failed int
		if res != nil {
			unsnoozed, failed = len(res.Unsnoozed), len(res.Errors)
		}
		s.metrics.RecordSweep(ctx, time.Since(start), unsnoozed, failed, err)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "reminder sweep failed",
			slog.String("operation", "ReminderScheduler.Sweep"),
			slog.Any("error", err),
		)
		return nil, err
	}
	for _, e := range res.Errors {
		s.logger.WarnContext(ctx, "failed to unsnooze note",
			slog.String("operation", "ReminderScheduler.Sweep"),
			slog.Int64("id", e.NoteID),
			slog.Any("error", e.Err),
		)
	}
	return res, nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
