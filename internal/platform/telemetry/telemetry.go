// Package telemetry sets up OpenTelemetry tracing and metrics for the notes
// service and owns the instruments the HTTP layer, the outbound client and
// the reminder sweep report to.
//
//	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer tel.Shutdown(ctx)
//	router := adapthttp.NewRouter(..., middleware.OpenTelemetry(tel.Metrics))
//
// With telemetry disabled Setup returns a Telemetry whose Metrics is nil;
// every recorder in this package is nil-safe.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
)

// Telemetry holds the installed providers and the service instruments.
type Telemetry struct {
	Metrics *Metrics

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup installs global tracer and meter providers for cfg and registers
// the service instruments. A disabled config installs nothing.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{}, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry: building resource: %w", err)
	}

	exp, err := newExporters(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	t := &Telemetry{
		tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp.spans),
			sdktrace.WithResource(res),
		),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp.metrics)),
			sdkmetric.WithResource(res),
		),
	}

	t.Metrics, err = NewMetrics(t.meter, cfg.ServiceName)
	if err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}

	otel.SetTracerProvider(t.tracer)
	otel.SetMeterProvider(t.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return t, nil
}

// Shutdown flushes and stops both providers. Safe on a disabled Telemetry.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		if err := t.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.meter != nil {
		if err := t.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
