// Package http is the inbound HTTP adapter: the notes API routes and the
// server that runs them.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

// NewRouter mounts the health probes and the /api/v1 notes routes behind
// middlewares, outermost first. Unknown routes and methods get problem
// responses.
func NewRouter(
	notes *handlers.NoteHandler,
	probes *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", probes.Liveness)
		r.Get("/ready", probes.Readiness)
	})

	r.Route("/api/v1/notes", func(r chi.Router) {
		r.Get("/", notes.ListNotes)
		r.Post("/", notes.CreateNote)
		// Registered before /{id} so "unsnooze" is never taken for an id.
		r.Post("/unsnooze", notes.UnsnoozeDue)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", notes.GetNote)
			r.Patch("/", notes.UpdateNote)
			r.Delete("/", notes.DeleteNote)
			r.Post("/actions/{action}", notes.TriggerAction)
			r.Post("/snooze", notes.SnoozeNote)
		})
	})

	return r
}
