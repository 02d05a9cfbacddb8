package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

var (
	_ domain.Mutation = (*statusChange)(nil)
	_ domain.Mutation = (*saveNote)(nil)
)

// statusChange moves a note to a new status and, when withReminder is set,
// replaces its reminder. Rollback restores both.
type statusChange struct {
	note         *note.Note
	to           note.Status
	reminder     note.DateInput
	withReminder bool

	from         note.Status
	prevReminder time.Time
	hadReminder  bool
}

func (c *statusChange) Execute(_ context.Context) error {
	c.from = c.note.Status(note.ForEdit)
	c.prevReminder, c.hadReminder = c.note.DateReminder(note.ForEdit)

	if err := c.note.SetStatus(c.to); err != nil {
		return err
	}
	if c.withReminder {
		if err := c.note.SetDateReminder(c.reminder); err != nil {
			_ = c.note.SetStatus(c.from)
			return err
		}
	}
	return nil
}

func (c *statusChange) Rollback(_ context.Context) error {
	if c.withReminder {
		var prev note.DateInput
		if c.hadReminder {
			prev = note.Instant(c.prevReminder)
		}
		if err := c.note.SetDateReminder(prev); err != nil {
			return err
		}
	}
	return c.note.SetStatus(c.from)
}

func (c *statusChange) Description() string {
	return fmt.Sprintf("set note %d status to %s", c.note.ID(), c.to)
}

// saveNote writes a note through the store and records the assigned id.
type saveNote struct {
	store ports.NoteStore
	note  *note.Note
}

func (s *saveNote) Execute(ctx context.Context) error {
	id, err := s.store.Save(ctx, s.note)
	if err != nil {
		return err
	}
	s.note.SetID(id)
	s.note.ApplyChanges()
	return nil
}

// Rollback is a no-op: saveNote is always the last staged mutation.
func (s *saveNote) Rollback(_ context.Context) error { return nil }

func (s *saveNote) Description() string {
	return fmt.Sprintf("save note %d", s.note.ID())
}
