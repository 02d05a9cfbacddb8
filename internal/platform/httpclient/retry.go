package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/config"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/logging"
)

// errCallerGone marks failures caused by the caller's context rather than
// the downstream.
var errCallerGone = errors.New("httpclient: caller context done")

// maxRetryAfter caps a server supplied Retry-After delay.
const maxRetryAfter = 30 * time.Second

// Policy is an exponential backoff schedule with ±25% jitter.
type Policy struct {
	MaxAttempts int
	Initial     time.Duration
	Max         time.Duration
	Multiplier  float64
}

// PolicyFromConfig converts retry settings. MaxAttempts below one means a
// single attempt.
func PolicyFromConfig(cfg config.RetryConfig) Policy {
	return Policy{
		MaxAttempts: max(cfg.MaxAttempts, 1),
		Initial:     cfg.InitialInterval,
		Max:         cfg.MaxInterval,
		Multiplier:  cfg.Multiplier,
	}
}

// Delay returns the wait before retry n, where n == 1 is the first retry.
func (p Policy) Delay(n int) time.Duration {
	d := float64(p.Initial) * math.Pow(p.Multiplier, float64(n-1))
	d = min(d, float64(p.Max))
	d += d * 0.25 * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send runs the attempt loop for req.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if canRetry(req) {
		attempts = c.retry.MaxAttempts
	}

	var lastErr error
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, fmt.Errorf("%w: %w", errCallerGone, err)
		case err != nil:
			lastErr = err
			continue
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if n == attempts-1 {
			return resp, lastErr
		}
		if wait, ok := retryAfter(resp); ok {
			lastErr = &retryAfterError{err: lastErr, wait: wait}
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, lastErr error) error {
	wait := c.retry.Delay(n)
	var ra *retryAfterError
	if errors.As(lastErr, &ra) {
		wait = max(wait, ra.wait)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying downstream request",
		slog.String("peer_service", c.peer),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.MaxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", errCallerGone, ctx.Err())
	case <-t.C:
		return nil
	}
}

type retryAfterError struct {
	err  error
	wait time.Duration
}

func (e *retryAfterError) Error() string { return e.err.Error() }
func (e *retryAfterError) Unwrap() error { return e.err }

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// canRetry reports whether replaying req cannot create a duplicate.
func canRetry(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get("Idempotency-Key") != ""
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter), true
}
