// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/admin-notes-service/internal/app/context"
	"github.com/jsamuelsen11/admin-notes-service/internal/app/fanout"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// Compile-time check that NoteService implements ports.NoteService.
var _ ports.NoteService = (*NoteService)(nil)

const defaultSweepWorkers = 4

// TransitionRecorder is notified of every status change the service applies.
type TransitionRecorder interface {
	RecordTransition(ctx context.Context, from, to string)
}

// NoteService implements ports.NoteService on top of a NoteRepository.
// Field validation lives in the note entity; the service loads, applies and
// stores, and owns the action and snooze flows.
type NoteService struct {
	schema   *note.Schema
	repo     ports.NoteRepository
	logger   *slog.Logger
	recorder TransitionRecorder
	workers  int
}

// ServiceOption configures a NoteService.
type ServiceOption func(*NoteService)

// WithTransitionRecorder reports status changes to r.
func WithTransitionRecorder(r TransitionRecorder) ServiceOption {
	return func(s *NoteService) { s.recorder = r }
}

// WithSweepWorkers bounds the number of notes UnsnoozeDue processes at once.
func WithSweepWorkers(n int) ServiceOption {
	return func(s *NoteService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewNoteService creates a NoteService. A nil logger falls back to
// slog.Default().
func NewNoteService(schema *note.Schema, repo ports.NoteRepository, logger *slog.Logger, opts ...ServiceOption) *NoteService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &NoteService{
		schema:  schema,
		repo:    repo,
		logger:  logger,
		workers: defaultSweepWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get loads a note. An unknown id yields a default note and found == false.
func (s *NoteService) Get(ctx context.Context, id int64) (*note.Note, bool, error) {
	s.logger.DebugContext(ctx, "fetching note", slog.Int64("id", id))

	rec, found, err := s.repo.Load(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load note",
			slog.String("operation", "Get"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, false, err
	}
	if !found {
		return s.schema.New(), false, nil
	}

	n, err := s.hydrate(ctx, "Get", rec)
	if err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// List returns a page of notes matching filter together with the total count.
func (s *NoteService) List(ctx context.Context, filter note.Filter) (*ports.NotePage, error) {
	s.logger.DebugContext(ctx, "listing notes",
		slog.Int("limit", filter.Limit),
		slog.Int("offset", filter.Offset),
	)

	recs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list notes",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count notes",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	page := &ports.NotePage{Notes: make([]*note.Note, 0, len(recs)), Total: total}
	for _, rec := range recs {
		n, err := s.hydrate(ctx, "List", rec)
		if err != nil {
			return nil, err
		}
		page.Notes = append(page.Notes, n)
	}
	return page, nil
}

// Create validates input on a fresh note and stores it.
func (s *NoteService) Create(ctx context.Context, input ports.NoteInput) (*note.Note, error) {
	s.logger.InfoContext(ctx, "creating note", slog.String("name", input.Name))

	n := s.schema.New()
	if err := applyInput(n, input); err != nil {
		return nil, err
	}

	if err := s.save(ctx, "Create", n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update applies patch to a stored note and saves it if anything changed.
func (s *NoteService) Update(ctx context.Context, id int64, patch ports.NotePatch) (*note.Note, error) {
	s.logger.InfoContext(ctx, "updating note", slog.Int64("id", id))

	n, err := s.mustLoad(ctx, "Update", id)
	if err != nil {
		return nil, err
	}
	from := n.Status(note.ForEdit)

	if err := applyPatch(n, patch); err != nil {
		return nil, err
	}
	if len(n.Changes()) == 0 {
		return n, nil
	}

	if err := s.save(ctx, "Update", n); err != nil {
		return nil, err
	}
	s.recordTransition(ctx, from, n.Status(note.ForEdit))
	return n, nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting note", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete note",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// TriggerAction applies the target status of the named action and stores
// the note. If the save fails, the note's status is restored.
func (s *NoteService) TriggerAction(ctx context.Context, id int64, action string) (*note.Note, error) {
	s.logger.InfoContext(ctx, "triggering note action",
		slog.Int64("id", id),
		slog.String("action", action),
	)

	rc := appctx.New(ctx)
	n, err := appctx.GetOrFetch(rc, noteKey(id), func(ctx context.Context) (*note.Note, error) {
		return s.mustLoad(ctx, "TriggerAction", id)
	})
	if err != nil {
		return nil, err
	}

	a, ok := n.Action(action)
	if !ok {
		return nil, fmt.Errorf("action %q on note %d: %w", action, id, domain.ErrNotFound)
	}

	change := &statusChange{note: n, to: a.Status}
	if err := s.commit(rc, "TriggerAction", n, change); err != nil {
		return nil, err
	}
	return n, nil
}

// Snooze marks a snoozable note as snoozed until the given time.
func (s *NoteService) Snooze(ctx context.Context, id int64, until time.Time) (*note.Note, error) {
	s.logger.InfoContext(ctx, "snoozing note",
		slog.Int64("id", id),
		slog.Time("until", until),
	)

	if until.IsZero() {
		return nil, domain.NewFieldError(string(note.FieldDateReminder), domain.MsgRequired)
	}

	rc := appctx.New(ctx)
	n, err := appctx.GetOrFetch(rc, noteKey(id), func(ctx context.Context) (*note.Note, error) {
		return s.mustLoad(ctx, "Snooze", id)
	})
	if err != nil {
		return nil, err
	}
	if !n.IsSnoozable(note.ForEdit) {
		return nil, fmt.Errorf("note %d is not snoozable: %w", id, domain.ErrConflict)
	}

	change := &statusChange{
		note:         n,
		to:           note.StatusSnoozed,
		reminder:     note.Instant(until),
		withReminder: true,
	}
	if err := s.commit(rc, "Snooze", n, change); err != nil {
		return nil, err
	}
	return n, nil
}

// UnsnoozeDue returns snoozed notes whose reminder is due to unactioned.
// Each note is processed independently; failures are collected per note.
func (s *NoteService) UnsnoozeDue(ctx context.Context, now time.Time) (*ports.UnsnoozeResult, error) {
	recs, err := s.repo.List(ctx, note.Filter{
		Statuses:  []note.Status{note.StatusSnoozed},
		DueBefore: now,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list due notes",
			slog.String("operation", "UnsnoozeDue"),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, s.workers, recs, func(ctx context.Context, rec note.Record) (int64, error) {
		n, err := s.schema.Hydrate(rec)
		if err != nil {
			return rec.ID, err
		}
		rc := appctx.New(ctx)
		return rec.ID, s.commit(rc, "UnsnoozeDue", n, &statusChange{note: n, to: note.StatusUnactioned})
	})

	res := &ports.UnsnoozeResult{Unsnoozed: []int64{}}
	for i, r := range results {
		if r.Err != nil {
			res.Errors = append(res.Errors, ports.UnsnoozeError{NoteID: recs[i].ID, Err: r.Err})
			continue
		}
		res.Unsnoozed = append(res.Unsnoozed, recs[i].ID)
	}

	if len(recs) > 0 {
		s.logger.InfoContext(ctx, "unsnoozed due notes",
			slog.Int("due", len(recs)),
			slog.Int("unsnoozed", len(res.Unsnoozed)),
			slog.Int("failed", len(res.Errors)),
		)
	}
	return res, nil
}

// commit stages change followed by a save of n and runs both. A failed save
// rolls the status change back on n.
func (s *NoteService) commit(rc *appctx.RequestContext, op string, n *note.Note, change *statusChange) error {
	key := noteKey(n.ID())
	if err := rc.Stage(key, n, change); err != nil {
		return err
	}
	if err := rc.Stage(key, n, &saveNote{store: s.repo, note: n}); err != nil {
		return err
	}

	if err := rc.Commit(rc); err != nil {
		s.logger.ErrorContext(rc, "failed to apply status change",
			slog.String("operation", op),
			slog.Int64("id", n.ID()),
			slog.String("status", string(change.to)),
			slog.Any("error", err),
		)
		return err
	}

	s.recordTransition(rc, change.from, change.to)
	return nil
}

func (s *NoteService) save(ctx context.Context, op string, n *note.Note) error {
	id, err := s.repo.Save(ctx, n)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save note",
			slog.String("operation", op),
			slog.Int64("id", n.ID()),
			slog.Any("error", err),
		)
		return err
	}
	n.SetID(id)
	n.ApplyChanges()
	return nil
}

func (s *NoteService) mustLoad(ctx context.Context, op string, id int64) (*note.Note, error) {
	rec, found, err := s.repo.Load(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load note",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}
	return s.hydrate(ctx, op, rec)
}

func (s *NoteService) hydrate(ctx context.Context, op string, rec note.Record) (*note.Note, error) {
	n, err := s.schema.Hydrate(rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "stored note failed validation",
			slog.String("operation", op),
			slog.Int64("id", rec.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return n, nil
}

func (s *NoteService) recordTransition(ctx context.Context, from, to note.Status) {
	if s.recorder == nil || from == to {
		return
	}
	s.recorder.RecordTransition(ctx, string(from), string(to))
}

func noteKey(id int64) string {
	return fmt.Sprintf("note:%d", id)
}
