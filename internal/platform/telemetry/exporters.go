package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrMissingEndpoint is returned when otlp is selected without an endpoint.
	ErrMissingEndpoint = errors.New("telemetry: otlp exporter requires an endpoint")
	// ErrUnknownExporter is returned for exporter names other than stdout and otlp.
	ErrUnknownExporter = errors.New("telemetry: unsupported exporter")
)

type exporters struct {
	spans   sdktrace.SpanExporter
	metrics sdkmetric.Exporter
}

func newExporters(ctx context.Context, name, endpoint string) (exporters, error) {
	switch name {
	case ExporterStdout:
		spans, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return exporters{}, fmt.Errorf("telemetry: stdout span exporter: %w", err)
		}
		metrics, err := stdoutmetric.New()
		if err != nil {
			return exporters{}, fmt.Errorf("telemetry: stdout metric exporter: %w", err)
		}
		return exporters{spans: spans, metrics: metrics}, nil

	case ExporterOTLP:
		target, insecure, err := collectorTarget(endpoint)
		if err != nil {
			return exporters{}, err
		}
		traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target)}
		metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target)}
		if insecure {
			traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
			metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
		}
		spans, err := otlptracehttp.New(ctx, traceOpts...)
		if err != nil {
			return exporters{}, fmt.Errorf("telemetry: otlp span exporter: %w", err)
		}
		metrics, err := otlpmetrichttp.New(ctx, metricOpts...)
		if err != nil {
			return exporters{}, errors.Join(
				fmt.Errorf("telemetry: otlp metric exporter: %w", err),
				spans.Shutdown(ctx),
			)
		}
		return exporters{spans: spans, metrics: metrics}, nil

	default:
		return exporters{}, fmt.Errorf("%w %q", ErrUnknownExporter, name)
	}
}

// collectorTarget reduces an endpoint such as "http://otel-collector:4318"
// to host:port and reports whether plain HTTP should be used. A bare
// host:port is taken as plain HTTP.
func collectorTarget(endpoint string) (string, bool, error) {
	if endpoint == "" {
		return "", false, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
