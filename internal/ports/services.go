package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

// NoteService defines the service port for admin note operations.
// Implemented by the application layer; called by inbound adapters
// (HTTP handlers, the CLI and the reminder scheduler).
type NoteService interface {
	// Get loads a note. When id is unknown Get returns a note carrying the
	// default field values and found == false; it is not an error.
	Get(ctx context.Context, id int64) (n *note.Note, found bool, err error)

	// List returns one page of notes matching filter and the total number
	// of matches.
	List(ctx context.Context, filter note.Filter) (*NotePage, error)

	// Create validates and stores a new note.
	// Returns domain.ErrValidation if any field is rejected.
	Create(ctx context.Context, input NoteInput) (*note.Note, error)

	// Update applies patch to a stored note.
	// Returns domain.ErrNotFound if the note does not exist.
	// Returns domain.ErrValidation if any field is rejected.
	Update(ctx context.Context, id int64, patch NotePatch) (*note.Note, error)

	// Delete removes a note.
	// Returns domain.ErrNotFound if the note does not exist.
	Delete(ctx context.Context, id int64) error

	// TriggerAction moves the note to the status requested by its action
	// named action and stores it.
	// Returns domain.ErrNotFound if the note or the action does not exist.
	TriggerAction(ctx context.Context, id int64, action string) (*note.Note, error)

	// Snooze sets the note's status to snoozed until the given time.
	// Returns domain.ErrNotFound if the note does not exist and
	// domain.ErrConflict if the note is not snoozable.
	Snooze(ctx context.Context, id int64, until time.Time) (*note.Note, error)

	// UnsnoozeDue returns every snoozed note whose reminder is at or before
	// now to unactioned. Per-note failures are collected in the result.
	UnsnoozeDue(ctx context.Context, now time.Time) (*UnsnoozeResult, error)
}

// ActionInput describes one action to attach to a note.
type ActionInput struct {
	Name    string
	Label   string
	Query   string
	Status  note.Status
	Primary bool
}

// NoteInput carries the fields of a new note. Zero-valued fields keep the
// note's defaults.
type NoteInput struct {
	Name         string
	Type         note.Type
	Locale       string
	Title        string
	Content      string
	Icon         string
	ContentData  any
	Status       note.Status
	Source       string
	DateCreated  note.DateInput
	DateReminder note.DateInput
	IsSnoozable  bool
	Actions      []ActionInput
}

// NotePatch carries a partial update. Nil fields are left unchanged.
// A non-nil Actions replaces the whole action list. ClearReminder removes
// the reminder and takes precedence over DateReminder.
type NotePatch struct {
	Name          *string
	Type          *note.Type
	Locale        *string
	Title         *string
	Content       *string
	Icon          *string
	ContentData   any
	Status        *note.Status
	Source        *string
	DateReminder  note.DateInput
	ClearReminder bool
	IsSnoozable   *bool
	Actions       *[]ActionInput
}

// NotePage is one page of a list query.
type NotePage struct {
	Notes []*note.Note
	Total int
}

// UnsnoozeError records a single note that could not be unsnoozed.
type UnsnoozeError struct {
	NoteID int64
	Err    error
}

// UnsnoozeResult holds the outcome of an unsnooze sweep.
// Unsnoozed lists the ids returned to unactioned; Errors the per-note failures.
type UnsnoozeResult struct {
	Unsnoozed []int64
	Errors    []UnsnoozeError
}
