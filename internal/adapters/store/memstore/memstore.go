// Package memstore is an in-process ports.NoteRepository for tests, local
// development and the CLI's dry runs.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

var (
	_ ports.NoteRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Store keeps records in a map keyed by id. Ids start at 1.
type Store struct {
	mu      sync.RWMutex
	records map[int64]note.Record
	nextID  int64
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[int64]note.Record), nextID: 1}
}

// Load returns a copy of the stored record.
func (s *Store) Load(ctx context.Context, id int64) (note.Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return note.Record{}, false, &domain.PersistenceError{Op: "load", ID: id, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return note.Record{}, false, nil
	}
	return cloneRecord(rec), true, nil
}

// Save assigns the next id to a new note or replaces the record of an
// existing one.
func (s *Store) Save(ctx context.Context, n *note.Note) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &domain.PersistenceError{Op: "save", ID: n.ID(), Err: err}
	}

	rec, err := n.ToRecord()
	if err != nil {
		return 0, &domain.PersistenceError{Op: "save", ID: n.ID(), Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == 0 {
		rec.ID = s.nextID
		s.nextID++
	} else if _, ok := s.records[rec.ID]; !ok {
		return 0, &domain.PersistenceError{Op: "save", ID: rec.ID, Err: domain.ErrNotFound}
	}

	s.records[rec.ID] = cloneRecord(rec)
	return rec.ID, nil
}

// Exists reports whether id is stored.
func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &domain.PersistenceError{Op: "exists", ID: id, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok, nil
}

// List returns matching records, newest first, paged by f.Limit and f.Offset.
func (s *Store) List(ctx context.Context, f note.Filter) ([]note.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}

	matched := s.match(f)
	slices.SortFunc(matched, func(a, b note.Record) int {
		if c := b.DateCreated.Compare(a.DateCreated); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []note.Record{}, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

// Count returns how many records match f, ignoring paging.
func (s *Store) Count(ctx context.Context, f note.Filter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, &domain.PersistenceError{Op: "count", Err: err}
	}
	return len(s.match(f)), nil
}

// Delete removes id, returning domain.ErrNotFound when it is not stored.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return &domain.PersistenceError{Op: "delete", ID: id, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "notes-store"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(_ context.Context) error {
	return nil
}

func (s *Store) match(f note.Filter) []note.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]note.Record, 0, len(s.records))
	for _, rec := range s.records {
		if f.Matches(rec) {
			out = append(out, cloneRecord(rec))
		}
	}
	return out
}

func cloneRecord(rec note.Record) note.Record {
	rec.ContentData = slices.Clone(rec.ContentData)
	rec.Actions = slices.Clone(rec.Actions)
	if rec.DateReminder != nil {
		reminder := *rec.DateReminder
		rec.DateReminder = &reminder
	}
	return rec
}
