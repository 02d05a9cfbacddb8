// Package middleware holds the inbound HTTP middleware for the notes API.
// cmd/server installs them on the router in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/logging"
)

// statusRecorder remembers the status and size of the response it wraps.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
	wrote  bool
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wrote {
		return
	}
	sr.status, sr.wrote = code, true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wrote = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// RedactHeaders renders headers as log attributes with credential headers
// masked. Multiple values are comma-joined.
func RedactHeaders(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for name, values := range h {
		v := strings.Join(values, ",")
		if logging.IsSensitiveHeader(name) {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return attrs
}
