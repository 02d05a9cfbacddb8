package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/telemetry"
)

const (
	tracerName     = "github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/middleware"
	unmatchedRoute = "unmatched"
)

// OpenTelemetry starts a server span per request, continuing any incoming
// W3C trace context, and records request metrics when metrics is non-nil.
// Spans and metrics are labelled with the chi route pattern, never the raw
// path. The note id and action name go on the span only.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", rec.status),
			)
			if id := chi.URLParamFromCtx(ctx, "id"); id != "" {
				span.SetAttributes(attribute.String("note.id", id))
			}
			if action := chi.URLParamFromCtx(ctx, "action"); action != "" {
				span.SetAttributes(attribute.String("note.action", action))
			}
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if rec.status >= http.StatusBadRequest {
				result = "error"
			}
			attrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(rec.status),
				telemetry.AttrResult.String(result),
			)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.ServerRequestTotal.Add(ctx, 1, attrs)
		})
	}
}

// routePattern is the matched chi pattern, e.g. "/api/v1/notes/{id}", or
// "unmatched". It is complete only after the router served r.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
