// Package notejson is the JSON shape of notes shared by the HTTP API and
// notesctl: request bodies with their validation, and response documents.
package notejson

import (
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// ActionResponse is one note action in a response document.
type ActionResponse struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Query   string `json:"query"`
	Status  string `json:"status"`
	Primary bool   `json:"primary"`
}

// NoteResponse is a single note as served by the API and printed by notesctl. Text fields are
// rendered for display.
type NoteResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Locale       string           `json:"locale"`
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	Icon         string           `json:"icon"`
	ContentData  map[string]any   `json:"content_data"`
	Status       string           `json:"status"`
	Source       string           `json:"source"`
	DateCreated  string           `json:"date_created"`
	DateReminder *string          `json:"date_reminder,omitempty"`
	IsSnoozable  bool             `json:"is_snoozable"`
	Actions      []ActionResponse `json:"actions"`
}

// NoteListResponse represents one page of notes. Total counts every match.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Count int            `json:"count"`
	Total int            `json:"total"`
}

// ToNoteResponse converts a note to an HTTP response DTO.
func ToNoteResponse(n *note.Note) NoteResponse {
	actions := n.Actions(note.ForView)
	resp := NoteResponse{
		ID:          n.ID(),
		Name:        n.Name(note.ForView),
		Type:        n.Type(note.ForView).String(),
		Locale:      n.Locale(note.ForView),
		Title:       n.Title(note.ForView),
		Content:     n.Content(note.ForView),
		Icon:        n.Icon(note.ForView),
		ContentData: n.ContentData(note.ForView),
		Status:      n.Status(note.ForView).String(),
		Source:      n.Source(note.ForView),
		DateCreated: n.DateCreated(note.ForView).UTC().Format(time.RFC3339),
		IsSnoozable: n.IsSnoozable(note.ForView),
		Actions:     make([]ActionResponse, len(actions)),
	}
	if reminder, ok := n.DateReminder(note.ForView); ok {
		s := reminder.UTC().Format(time.RFC3339)
		resp.DateReminder = &s
	}
	for i, a := range actions {
		resp.Actions[i] = ActionResponse{
			Name:    a.Name,
			Label:   a.Label,
			Query:   a.Query,
			Status:  a.Status.String(),
			Primary: a.Primary,
		}
	}
	return resp
}

// ToNoteListResponse converts a page of notes to an HTTP list response DTO.
func ToNoteListResponse(page *ports.NotePage) NoteListResponse {
	items := make([]NoteResponse, len(page.Notes))
	for i, n := range page.Notes {
		items[i] = ToNoteResponse(n)
	}
	return NoteListResponse{
		Notes: items,
		Count: len(items),
		Total: page.Total,
	}
}

// UnsnoozeResponse represents the result of an unsnooze sweep, including
// per-note errors.
type UnsnoozeResponse struct {
	Unsnoozed []int64             `json:"unsnoozed"`
	Errors    []UnsnoozeErrorItem `json:"errors"`
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// UnsnoozeErrorItem represents a single note that failed to unsnooze.
type UnsnoozeErrorItem struct {
	NoteID  int64  `json:"note_id"`
	Message string `json:"message"`
}

// ToUnsnoozeResponse converts a ports.UnsnoozeResult to an HTTP response DTO.
func ToUnsnoozeResponse(result *ports.UnsnoozeResult) UnsnoozeResponse {
	ids := make([]int64, len(result.Unsnoozed))
	copy(ids, result.Unsnoozed)

	errs := make([]UnsnoozeErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = UnsnoozeErrorItem{
			NoteID:  e.NoteID,
			Message: e.Err.Error(),
		}
	}

	return UnsnoozeResponse{
		Unsnoozed: ids,
		Errors:    errs,
		Total:     len(ids) + len(errs),
		Succeeded: len(ids),
		Failed:    len(errs),
	}
}
