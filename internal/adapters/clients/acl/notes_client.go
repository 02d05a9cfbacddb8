package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/clients/acl/notes"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.NoteRepository = (*NotesClient)(nil)
	_ ports.HealthChecker  = (*NotesClient)(nil)
)

const (
	notesPath = "/wc-analytics/admin/notes"

	// totalHeader carries the number of matches of a list query.
	totalHeader = "X-WP-Total"

	// maxPerPage is the largest page the remote serves; unpaged lists ask
	// for it.
	maxPerPage = 100
)

// NotesClient is a ports.NoteRepository backed by a remote admin notes API.
// Every failure is reported as *domain.PersistenceError whose cause is the
// translated domain error (ErrUnavailable, ErrValidation, ...).
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry and tracing for every call. Creates carry a fresh
// Idempotency-Key so they can be retried.
type NotesClient struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewNotesClient creates a NotesClient that sends requests through client.
// The client's BaseURL points at the API root (e.g.
// "https://shop.example.com/wp-json").
func NewNotesClient(client *httpclient.Client, logger *slog.Logger) *NotesClient {
	return &NotesClient{client: client, logger: logger}
}

// Load fetches GET /wc-analytics/admin/notes/{id}. A 404 is reported as
// ok == false.
func (c *NotesClient) Load(ctx context.Context, id int64) (note.Record, bool, error) {
	var dto notes.NoteDTO
	if err := c.do(ctx, call{op: "load", method: http.MethodGet, path: notePath(id), want: http.StatusOK, out: &dto}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return note.Record{}, false, nil
		}
		return note.Record{}, false, &domain.PersistenceError{Op: "load", ID: id, Err: err}
	}

	rec, err := notes.ToRecord(&dto)
	if err != nil {
		return note.Record{}, false, &domain.PersistenceError{Op: "load", ID: id, Err: err}
	}
	return rec, true, nil
}

// Save creates the note with POST (id 0) or replaces it with PUT and returns
// the id the remote reports.
func (c *NotesClient) Save(ctx context.Context, n *note.Note) (int64, error) {
	rec, err := n.ToRecord()
	if err != nil {
		return 0, &domain.PersistenceError{Op: "save", ID: n.ID(), Err: err}
	}
	body, err := notes.FromRecord(rec)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "save", ID: rec.ID, Err: err}
	}

	method, path, want := http.MethodPost, notesPath, http.StatusCreated
	if rec.ID != 0 {
		method, path, want = http.MethodPut, notePath(rec.ID), http.StatusOK
	}

	var saved notes.NoteDTO
	if err := c.do(ctx, call{op: "save", method: method, path: path, want: want, in: body, out: &saved}); err != nil {
		return 0, &domain.PersistenceError{Op: "save", ID: rec.ID, Err: err}
	}
	if saved.ID == 0 {
		return 0, &domain.PersistenceError{Op: "save", ID: rec.ID, Err: errors.New("remote returned no id")}
	}
	return saved.ID, nil
}

// Exists reports whether the remote has the note.
func (c *NotesClient) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok, err := c.Load(ctx, id)
	if err != nil {
		var perr *domain.PersistenceError
		if errors.As(err, &perr) {
			perr.Op = "exists"
		}
		return false, err
	}
	return ok, nil
}

// List fetches GET /wc-analytics/admin/notes with the filter translated to
// query parameters. The API serves at most maxPerPage notes per request, so
// an unlimited filter (Limit 0) or one above that size is fetched page by
// page until a short page comes back.
func (c *NotesClient) List(ctx context.Context, f note.Filter) ([]note.Record, error) {
	var recs []note.Record
	page := f
	for {
		size := maxPerPage
		if f.Limit > 0 {
			size = min(f.Limit-len(recs), maxPerPage)
		}

		var dtos []notes.NoteDTO
		if err := c.do(ctx, call{op: "list", method: http.MethodGet, path: notesPath + listQuery(page, size), want: http.StatusOK, out: &dtos}); err != nil {
			return nil, &domain.PersistenceError{Op: "list", Err: err}
		}
		batch, err := notes.ToRecords(dtos)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "list", Err: err}
		}
		recs = append(recs, batch...)

		if len(dtos) < size || (f.Limit > 0 && len(recs) >= f.Limit) {
			return recs, nil
		}
		page.Offset += len(dtos)
	}
}

// Count asks for a one-item page and reads the total from the X-WP-Total
// header.
func (c *NotesClient) Count(ctx context.Context, f note.Filter) (int, error) {
	f.Offset = 0
	header, err := c.roundTrip(ctx, call{op: "count", method: http.MethodGet, path: notesPath + listQuery(f, 1), want: http.StatusOK})
	if err != nil {
		return 0, &domain.PersistenceError{Op: "count", Err: err}
	}

	total, err := strconv.Atoi(header.Get(totalHeader))
	if err != nil {
		return 0, &domain.PersistenceError{Op: "count", Err: fmt.Errorf("reading %s: %w", totalHeader, err)}
	}
	return total, nil
}

// Delete sends DELETE /wc-analytics/admin/notes/{id}. A 404 is returned as
// domain.ErrNotFound.
func (c *NotesClient) Delete(ctx context.Context, id int64) error {
	if err := c.do(ctx, call{op: "delete", method: http.MethodDelete, path: notePath(id), want: http.StatusOK}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return &domain.PersistenceError{Op: "delete", ID: id, Err: err}
	}
	return nil
}

func (c *NotesClient) do(ctx context.Context, cl call) error {
	_, err := c.roundTrip(ctx, cl)
	return err
}

func notePath(id int64) string {
	return fmt.Sprintf("%s/%d", notesPath, id)
}

// listQuery encodes the filter. Offset and per_page follow the WordPress
// REST collection parameters.
func listQuery(f note.Filter, perPage int) string {
	params := url.Values{}
	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		params.Set("type", strings.Join(types, ","))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		params.Set("status", strings.Join(statuses, ","))
	}
	if !f.DueBefore.IsZero() {
		params.Set("reminder_before_gmt", f.DueBefore.UTC().Format(notes.GMTLayout))
	}
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}
	params.Set("per_page", strconv.Itoa(perPage))
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	return "?" + params.Encode()
}
