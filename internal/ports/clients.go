package ports

import (
	"context"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

// NoteStore is the persistence contract the note entity relies on.
// Implemented by the store adapters; called by the application layer.
// Failures are reported as *domain.PersistenceError.
type NoteStore interface {
	// Load returns the stored record for id. A missing id is not an error:
	// Load returns found == false and a nil error.
	Load(ctx context.Context, id int64) (rec note.Record, found bool, err error)

	// Save inserts the note when its ID is 0 and updates it otherwise,
	// returning the note's identifier. Save never validates; the note's
	// setters already did.
	Save(ctx context.Context, n *note.Note) (int64, error)

	// Exists reports whether a note with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)
}

// NoteRepository extends NoteStore with the queries and deletion the
// service layer needs.
type NoteRepository interface {
	NoteStore

	// List returns the records matching filter, newest first.
	List(ctx context.Context, filter note.Filter) ([]note.Record, error)

	// Count returns the number of records matching filter, ignoring its
	// Limit and Offset.
	Count(ctx context.Context, filter note.Filter) (int, error)

	// Delete removes the note with the given id.
	// Returns domain.ErrNotFound if the note does not exist.
	Delete(ctx context.Context, id int64) error
}
