package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler writes into a buffer; if it
// finishes in time the buffer is sent, otherwise a 504 problem response is
// written and the handler's later writes fail with http.ErrHandlerTimeout.
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				buf.sendTo(w)
			case v := <-panicked:
				panic(v)
			case <-ctx.Done():
				buf.abandon()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides its fate.
type bufferedResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) abandon() {
	b.mu.Lock()
	b.abandoned = true
	b.mu.Unlock()
}

func (b *bufferedResponse) sendTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
