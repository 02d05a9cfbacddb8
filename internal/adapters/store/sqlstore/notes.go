package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

const notesTable = "admin_notes"

// timeLayout is fixed-width so that text columns sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var noteColumns = []string{
	"note_id", "name", "type", "locale", "title", "content", "icon",
	"content_data", "status", "source", "date_created", "date_reminder",
	"is_snoozable", "actions",
}

type noteRow struct {
	ID           int64          `db:"note_id"`
	Name         string         `db:"name"`
	Type         string         `db:"type"`
	Locale       string         `db:"locale"`
	Title        string         `db:"title"`
	Content      string         `db:"content"`
	Icon         string         `db:"icon"`
	ContentData  string         `db:"content_data"`
	Status       string         `db:"status"`
	Source       string         `db:"source"`
	DateCreated  string         `db:"date_created"`
	DateReminder sql.NullString `db:"date_reminder"`
	IsSnoozable  bool           `db:"is_snoozable"`
	Actions      string         `db:"actions"`
}

func (r noteRow) record() (note.Record, error) {
	created, err := parseTime(r.DateCreated)
	if err != nil {
		return note.Record{}, fmt.Errorf("date_created: %w", err)
	}

	rec := note.Record{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Locale:      r.Locale,
		Title:       r.Title,
		Content:     r.Content,
		Icon:        r.Icon,
		ContentData: []byte(r.ContentData),
		Status:      r.Status,
		Source:      r.Source,
		DateCreated: created,
		IsSnoozable: r.IsSnoozable,
		Actions:     []byte(r.Actions),
	}
	if r.DateReminder.Valid && r.DateReminder.String != "" {
		reminder, err := parseTime(r.DateReminder.String)
		if err != nil {
			return note.Record{}, fmt.Errorf("date_reminder: %w", err)
		}
		rec.DateReminder = &reminder
	}
	return rec, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads both the text layout written by SQLite and the RFC 3339
// form a timestamptz column scans into.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// values maps the writable columns of rec, without the id.
func values(rec note.Record) map[string]any {
	var reminder any
	if rec.DateReminder != nil {
		reminder = formatTime(*rec.DateReminder)
	}
	return map[string]any{
		"name":          rec.Name,
		"type":          rec.Type,
		"locale":        rec.Locale,
		"title":         rec.Title,
		"content":       rec.Content,
		"icon":          rec.Icon,
		"content_data":  string(rec.ContentData),
		"status":        rec.Status,
		"source":        rec.Source,
		"date_created":  formatTime(rec.DateCreated),
		"date_reminder": reminder,
		"is_snoozable":  rec.IsSnoozable,
		"actions":       string(rec.Actions),
	}
}

// Load returns the stored record for id. A missing row is reported as
// ok == false with a nil error.
func (s *Store) Load(ctx context.Context, id int64) (note.Record, bool, error) {
	query, args, err := s.sb.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": id}).
		ToSql()
	if err != nil {
		return note.Record{}, false, &domain.PersistenceError{Op: "load", ID: id, Err: err}
	}

	var row noteRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return note.Record{}, false, nil
		}
		return note.Record{}, false, &domain.PersistenceError{Op: "load", ID: id, Err: err}
	}

	rec, err := row.record()
	if err != nil {
		return note.Record{}, false, &domain.PersistenceError{Op: "load", ID: id, Err: err}
	}
	return rec, true, nil
}

// Save inserts a new note (id 0) or updates an existing one and returns
// its id. Updating an id with no row fails with a PersistenceError wrapping
// domain.ErrNotFound.
func (s *Store) Save(ctx context.Context, n *note.Note) (int64, error) {
	rec, err := n.ToRecord()
	if err != nil {
		return 0, &domain.PersistenceError{Op: "save", ID: n.ID(), Err: err}
	}

	if rec.ID == 0 {
		return s.insert(ctx, rec)
	}
	return rec.ID, s.update(ctx, rec)
}

func (s *Store) insert(ctx context.Context, rec note.Record) (int64, error) {
	query, args, err := s.sb.Insert(notesTable).
		SetMap(values(rec)).
		Suffix("RETURNING note_id").
		ToSql()
	if err != nil {
		return 0, &domain.PersistenceError{Op: "save", Err: err}
	}

	var id int64
	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, &domain.PersistenceError{Op: "save", Err: err}
	}
	return id, nil
}

func (s *Store) update(ctx context.Context, rec note.Record) error {
	query, args, err := s.sb.Update(notesTable).
		SetMap(values(rec)).
		Where(sq.Eq{"note_id": rec.ID}).
		ToSql()
	if err != nil {
		return &domain.PersistenceError{Op: "save", ID: rec.ID, Err: err}
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.PersistenceError{Op: "save", ID: rec.ID, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &domain.PersistenceError{Op: "save", ID: rec.ID, Err: err}
	}
	if affected == 0 {
		return &domain.PersistenceError{Op: "save", ID: rec.ID, Err: domain.ErrNotFound}
	}
	return nil
}

// Exists reports whether a row with id is stored.
func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := s.sb.Select("COUNT(*)").
		From(notesTable).
		Where(sq.Eq{"note_id": id}).
		ToSql()
	if err != nil {
		return false, &domain.PersistenceError{Op: "exists", ID: id, Err: err}
	}

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, &domain.PersistenceError{Op: "exists", ID: id, Err: err}
	}
	return count > 0, nil
}

// List returns the records matching f, newest first.
func (s *Store) List(ctx context.Context, f note.Filter) ([]note.Record, error) {
	b := applyFilter(s.sb.Select(noteColumns...).From(notesTable), f).
		OrderBy("date_created DESC", "note_id DESC")
	switch {
	case f.Limit > 0:
		b = b.Limit(uint64(f.Limit))
	case f.Offset > 0:
		// OFFSET needs a LIMIT in SQLite.
		b = b.Limit(math.MaxInt64)
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}

	var rows []noteRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}

	out := make([]note.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, &domain.PersistenceError{Op: "list", ID: row.ID, Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Count returns how many records match f, ignoring Limit and Offset.
func (s *Store) Count(ctx context.Context, f note.Filter) (int, error) {
	query, args, err := applyFilter(s.sb.Select("COUNT(*)").From(notesTable), f).ToSql()
	if err != nil {
		return 0, &domain.PersistenceError{Op: "count", Err: err}
	}

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, &domain.PersistenceError{Op: "count", Err: err}
	}
	return count, nil
}

// Delete removes the row for id, returning domain.ErrNotFound when there
// is none.
func (s *Store) Delete(ctx context.Context, id int64) error {
	query, args, err := s.sb.Delete(notesTable).Where(sq.Eq{"note_id": id}).ToSql()
	if err != nil {
		return &domain.PersistenceError{Op: "delete", ID: id, Err: err}
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.PersistenceError{Op: "delete", ID: id, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &domain.PersistenceError{Op: "delete", ID: id, Err: err}
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func applyFilter(b sq.SelectBuilder, f note.Filter) sq.SelectBuilder {
	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		b = b.Where(sq.Eq{"type": types})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, st := range f.Statuses {
			statuses[i] = string(st)
		}
		b = b.Where(sq.Eq{"status": statuses})
	}
	if !f.DueBefore.IsZero() {
		b = b.Where(sq.And{
			sq.NotEq{"date_reminder": nil},
			sq.LtOrEq{"date_reminder": formatTime(f.DueBefore)},
		})
	}
	return b
}
