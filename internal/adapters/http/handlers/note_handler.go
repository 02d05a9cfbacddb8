package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// NoteHandler handles HTTP requests for admin notes.
type NoteHandler struct {
	service ports.NoteService
	now     func() time.Time
}

// NewNoteHandler creates a new NoteHandler. now supplies the instant used
// by the unsnooze sweep; nil means time.Now.
func NewNoteHandler(service ports.NoteService, now func() time.Time) *NoteHandler {
	if now == nil {
		now = time.Now
	}
	return &NoteHandler{service: service, now: now}
}

// ListNotes handles GET /api/v1/notes.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseNoteFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.service.List(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notejson.ToNoteListResponse(page))
}

// CreateNote handles POST /api/v1/notes.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req notejson.CreateNoteRequest
	if !bind(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", r.URL.Path, created.ID()))
	writeJSON(w, http.StatusCreated, notejson.ToNoteResponse(created))
}

// GetNote handles GET /api/v1/notes/{id}.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, found, err := h.service.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, fmt.Errorf("note %d: %w", id, domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, notejson.ToNoteResponse(n))
}

// UpdateNote handles PATCH /api/v1/notes/{id}.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req notejson.UpdateNoteRequest
	if !bind(w, r, &req) {
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notejson.ToNoteResponse(updated))
}

// DeleteNote handles DELETE /api/v1/notes/{id}.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TriggerAction handles POST /api/v1/notes/{id}/actions/{action}.
func (h *NoteHandler) TriggerAction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	action := chi.URLParam(r, "action")
	if action == "" {
		dto.WriteErrorResponse(w, r, domain.NewFieldError("action", domain.MsgRequired))
		return
	}

	updated, err := h.service.TriggerAction(r.Context(), id, action)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notejson.ToNoteResponse(updated))
}

// SnoozeNote handles POST /api/v1/notes/{id}/snooze.
func (h *NoteHandler) SnoozeNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req notejson.SnoozeRequest
	if !bind(w, r, &req) {
		return
	}

	updated, err := h.service.Snooze(r.Context(), id, req.UntilTime())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notejson.ToNoteResponse(updated))
}

// UnsnoozeDue handles POST /api/v1/notes/unsnooze. It runs the reminder
// sweep immediately; per-note failures are reported in the body.
func (h *NoteHandler) UnsnoozeDue(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.UnsnoozeDue(r.Context(), h.now())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notejson.ToUnsnoozeResponse(result))
}
