package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/logging"
)

// Logging logs one line per request through a child logger carrying the
// request and correlation IDs, which handlers and services pick up from the
// context. Health probes log at debug. Server errors log at error and client
// errors at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := RedactHeaders(r.Header)
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", attrs...)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			child.LogAttrs(ctx, completionLevel(r, rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(r *http.Request, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case strings.HasPrefix(r.URL.Path, "/health/"):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
