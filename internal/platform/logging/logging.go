// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to save note",
//	    slog.String("operation", "Update"),
//	    slog.Int64("id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler output is filtered through masq so credentials, storage DSNs
// and customer emails in note content data never reach the log sink.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, default info). format "text" selects the text
// handler; anything else is JSON. Debug loggers include source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
