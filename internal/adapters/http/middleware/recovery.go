package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
)

var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a 500 problem response and an error
// log with the stack. Nothing is written when the handler already started
// its response. http.ErrAbortHandler is re-raised.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if !rec.wrote {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
