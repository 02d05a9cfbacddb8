// Package httpclient is the outbound HTTP client behind the remote note
// store. Every request passes through a circuit breaker, an optional rate
// limiter, header propagation, a client span and a retry loop:
//
//	client := httpclient.New(&cfg.Client, "notes-api", metrics, logger)
//	resp, err := client.Do(req)
//
// Only idempotent requests are retried. A POST is retried when it carries an
// Idempotency-Key header.
package httpclient

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/admin-notes-service/internal/platform/httpclient"

// Client sends requests to one downstream service.
type Client struct {
	peer    string
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	retry   Policy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the downstream named peer. metrics may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		peer:    peer,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		retry:   PolicyFromConfig(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= clampUint32(maxFailures)
		},
		// A canceled caller says nothing about the downstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerGone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("downstream breaker changed state",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(cfg.RateLimit.BurstSize, 1))
	}
	return c
}

// BaseURL returns the downstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Peer returns the downstream name used in spans, metrics and logs.
func (c *Client) Peer() string { return c.peer }

// Do sends req. On success the caller owns resp.Body. When the last retry
// still ends in a retryable status both resp and err are returned and the
// caller must close resp.Body. resp is nil when the breaker or the limiter
// rejects the call or the transport fails.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	ctx := req.Context()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%w: %w", errCallerGone, err)
			}
		}

		out := req.Clone(ctx)
		propagateHeaders(ctx, out.Header)

		spanCtx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+out.Method+" "+c.peer,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", out.Method),
				attribute.String("http.url", out.URL.String()),
				attribute.String("peer.service", c.peer),
			),
		)
		defer span.End()
		otel.GetTextMapPropagator().Inject(spanCtx, propagation.HeaderCarrier(out.Header))

		resp, err := c.send(out.WithContext(spanCtx))
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.observe(req, start, resp, err)
	return resp, err
}

// BreakerState reports the circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

// Check reports downstream availability from the breaker state without a
// network call.
func (c *Client) Check() error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

func (c *Client) observe(req *http.Request, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if err == nil && status < http.StatusBadRequest {
			result = "success"
		}
	}
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, errCallerGone):
		result = "canceled"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(req.Method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	ctx := req.Context()
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
