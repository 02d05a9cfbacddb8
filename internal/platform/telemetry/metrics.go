package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric label keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrFromStatus  = attribute.Key("note.status.from")
	AttrToStatus    = attribute.Key("note.status.to")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	NoteStatusTransitions metric.Int64Counter
	SweepDuration         metric.Float64Histogram
	SweepNotes            metric.Int64Counter
}

// NewMetrics registers the instruments on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(serviceName)}
	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of requests to the remote notes API", "s"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Requests to the remote notes API", "{request}"),
		NoteStatusTransitions: r.counter("notes.status.transitions", "Note status changes applied by the service", "{transition}"),
		SweepDuration:         r.histogram("notes.reminder.sweep.duration", "Duration of reminder sweeps", "s"),
		SweepNotes:            r.counter("notes.reminder.sweep.notes", "Snoozed notes handled by reminder sweeps", "{note}"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// RecordTransition counts one note status change.
func (m *Metrics) RecordTransition(ctx context.Context, from, to string) {
	if m == nil {
		return
	}
	m.NoteStatusTransitions.Add(ctx, 1, metric.WithAttributes(
		AttrFromStatus.String(from),
		AttrToStatus.String(to),
	))
}

// RecordSweep reports one reminder sweep: how long it took and how many
// notes were unsnoozed or failed. A sweep that failed outright passes
// err and zero counts.
func (m *Metrics) RecordSweep(ctx context.Context, elapsed time.Duration, unsnoozed, failed int, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.SweepDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(AttrResult.String(result)))
	if unsnoozed > 0 {
		m.SweepNotes.Add(ctx, int64(unsnoozed), metric.WithAttributes(AttrResult.String("unsnoozed")))
	}
	if failed > 0 {
		m.SweepNotes.Add(ctx, int64(failed), metric.WithAttributes(AttrResult.String("failed")))
	}
}

// registrar creates instruments and keeps the first error.
type registrar struct {
	meter metric.Meter
	err   error
}

func (r *registrar) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.keep(name, err)
	return h
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.keep(name, err)
	return c
}

func (r *registrar) keep(name string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("telemetry: creating %s: %w", name, err)
	}
}
