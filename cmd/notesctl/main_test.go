package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/admin-notes-service/internal/app"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/sanitize"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

var cliNow = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

type cliClock struct{}

func (cliClock) Now() time.Time           { return cliNow }
func (cliClock) Location() *time.Location { return time.UTC }

// harness shares one in-memory store across command invocations.
type harness struct {
	t      *testing.T
	repo   *memstore.Store
	now    time.Time
	opened []sessionOptions
	closed int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, repo: memstore.New(), now: cliNow}
}

func (h *harness) open(_ context.Context, opts sessionOptions) (*session, error) {
	schema, err := app.NewSchema(sanitize.New(), cliClock{}, app.SchemaConfig{})
	require.NoError(h.t, err)

	h.opened = append(h.opened, opts)
	return &session{
		svc:   app.NewNoteService(schema, h.repo, slog.New(slog.DiscardHandler)),
		now:   func() time.Time { return h.now },
		close: func() error { h.closed++; return nil },
	}, nil
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()

	root := newRootCmd(h.open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(h.t.Context())
	return out.String(), err
}

func (h *harness) runJSON(v any, args ...string) {
	h.t.Helper()

	out, err := h.run("", append(args, "--json")...)
	require.NoError(h.t, err, out)
	require.NoError(h.t, json.Unmarshal([]byte(out), v), out)
}

func (h *harness) createDefault() notejson.NoteResponse {
	h.t.Helper()

	var created notejson.NoteResponse
	h.runJSON(&created, "create",
		"--name", "wc-update",
		"--title", "Update available",
		"--content", "<strong>Version 9.1</strong> is out",
		"--type", "update",
		"--snoozable",
		"--data", `{"version":"9.1"}`,
		"--action", "update-now:Update now",
		"--action", "dismiss:Dismiss:actioned",
		"--primary-action", "update-now",
	)
	return created
}

func TestCreate_FromFlags(t *testing.T) {
	h := newHarness(t)

	created := h.createDefault()

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "update", created.Type)
	assert.Equal(t, "unactioned", created.Status)
	assert.Equal(t, "9.1", created.ContentData["version"])
	assert.True(t, created.IsSnoozable)
	require.Len(t, created.Actions, 2)
	assert.True(t, created.Actions[0].Primary)
	assert.Equal(t, "actioned", created.Actions[1].Status)
	assert.Equal(t, 1, h.closed)
}

func TestCreate_FromStdin(t *testing.T) {
	h := newHarness(t)

	body := `{"name":"db-warning","title":"Database","content":"Slow queries","type":"warning"}`
	out, err := h.run(body, "create", "--file", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "db-warning")
	assert.Contains(t, out, "warning")
}

func TestCreate_FromFile(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "note.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"n","title":"t","content":"c","is_snoozable":true}`), 0o600))

	var created notejson.NoteResponse
	h.runJSON(&created, "create", "-f", path)
	assert.True(t, created.IsSnoozable)
}

func TestCreate_RejectsUnknownFileFields(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(`{"name":"n","title":"t","content":"c","colour":"red"}`, "create", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "create", "--name", "only-name")
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "content")
}

func TestCreate_UnknownType(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "create", "--name", "n", "--title", "t", "--content", "c", "--type", "marketing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_BadActionFlag(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "create", "--name", "n", "--title", "t", "--content", "c", "--action", "no-label")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name:label")

	_, err = h.run("", "create", "--name", "n", "--title", "t", "--content", "c",
		"--action", "a:A", "--primary-action", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary-action")
}

func TestGet(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	out, err := h.run("", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Update available")
	assert.Contains(t, out, "update-now -> actioned (primary)")
}

func TestGet_NotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "get", "42")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_InvalidID(t *testing.T) {
	h := newHarness(t)

	for _, id := range []string{"0", "-3", "abc"} {
		// "--" keeps cobra from reading -3 as a shorthand flag.
		_, err := h.run("", "get", "--", id)
		require.ErrorIs(t, err, domain.ErrValidation, id)
	}

	_, err := h.run("", "get", "-3")
	require.ErrorContains(t, err, "unknown shorthand flag")
}

func TestList_FiltersAndPages(t *testing.T) {
	h := newHarness(t)
	h.createDefault()
	h.createDefault()
	_, err := h.run("", "create", "--name", "w", "--title", "t", "--content", "c", "--type", "warning")
	require.NoError(t, err)

	var page notejson.NoteListResponse
	h.runJSON(&page, "list", "--type", "update", "--limit", "1")
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 2, page.Total)

	var all notejson.NoteListResponse
	h.runJSON(&all, "ls", "--type", "update,warning")
	assert.Equal(t, 3, all.Total)

	out, err := h.run("", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "3 of 3 notes")
}

func TestList_RejectsBadPaging(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "list", "--limit", "0")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.run("", "list", "--limit", "101")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.run("", "list", "--offset", "-1")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	var updated notejson.NoteResponse
	h.runJSON(&updated, "update", "1", "--title", "Update ready", "--status", "actioned")
	assert.Equal(t, "Update ready", updated.Title)
	assert.Equal(t, "actioned", updated.Status)

	_, err := h.run("", "update", "1", "--title", "  ")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.run("", "update", "9", "--title", "x")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_FromStdin(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	out, err := h.run(`{"actions":[{"name":"later","label":"Later"}]}`, "update", "1", "-f", "-", "--json")
	require.NoError(t, err)

	var updated notejson.NoteResponse
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	require.Len(t, updated.Actions, 1)
	assert.Equal(t, "later", updated.Actions[0].Name)
}

func TestAction(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	var actioned notejson.NoteResponse
	h.runJSON(&actioned, "action", "1", "dismiss")
	assert.Equal(t, "actioned", actioned.Status)

	_, err := h.run("", "action", "1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnoozeAndUnsnooze(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	var snoozed notejson.NoteResponse
	h.runJSON(&snoozed, "snooze", "1", "--for", "24h")
	assert.Equal(t, "snoozed", snoozed.Status)
	require.NotNil(t, snoozed.DateReminder)
	assert.Equal(t, "2026-03-10T10:00:00Z", *snoozed.DateReminder)

	var early notejson.UnsnoozeResponse
	h.runJSON(&early, "unsnooze")
	assert.Equal(t, 0, early.Total)

	h.now = cliNow.Add(25 * time.Hour)
	out, err := h.run("", "unsnooze")
	require.NoError(t, err)
	assert.Contains(t, out, "unsnoozed 1 of 1 notes")

	var got notejson.NoteResponse
	h.runJSON(&got, "get", "1")
	assert.Equal(t, "unactioned", got.Status)
}

func TestSnooze_Flags(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	_, err := h.run("", "snooze", "1")
	require.Error(t, err)

	_, err = h.run("", "snooze", "1", "--until", "2026-04-01T00:00:00Z", "--for", "1h")
	require.Error(t, err)

	_, err = h.run("", "snooze", "1", "--until", "next week")
	require.ErrorIs(t, err, domain.ErrValidation)

	var snoozed notejson.NoteResponse
	h.runJSON(&snoozed, "snooze", "1", "--until", "2026-04-01T00:00:00Z")
	assert.Equal(t, "snoozed", snoozed.Status)
}

func TestSnooze_NotSnoozable(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "create", "--name", "n", "--title", "t", "--content", "c")
	require.NoError(t, err)

	_, err = h.run("", "snooze", "1", "--for", "1h")
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.createDefault()

	out, err := h.run("", "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "deleted note 1\n", out)

	_, err = h.run("", "rm", "1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoot_PassesPersistentFlags(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "list", "--profile", "staging", "-v", "--store", "memory", "--config-dir", "/etc/notes")
	require.NoError(t, err)

	require.Len(t, h.opened, 1)
	assert.Equal(t, sessionOptions{
		profile:   "staging",
		configDir: "/etc/notes",
		driver:    "memory",
		verbose:   true,
	}, h.opened[0])
}

func TestOpenSession_StoreOverride(t *testing.T) {
	s, err := openSession(t.Context(), sessionOptions{
		profile:   "local",
		configDir: filepath.Join("..", "..", "configs"),
		driver:    "memory",
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.close()) })

	n, err := s.svc.Create(t.Context(), ports.NoteInput{
		Name:    "override",
		Type:    note.TypeInfo,
		Title:   "Stored in memory",
		Content: "body",
	})
	require.NoError(t, err)

	_, found, err := s.svc.Get(t.Context(), n.ID())
	require.NoError(t, err)
	assert.True(t, found)
}

func TestConfigOptions(t *testing.T) {
	assert.Empty(t, configOptions(sessionOptions{profile: "local"}))
	assert.Len(t, configOptions(sessionOptions{configDir: "cfg"}), 1)
	assert.Len(t, configOptions(sessionOptions{configDir: "cfg", driver: "memory"}), 2)
}

func TestRoot_OpenFailure(t *testing.T) {
	failing := func(context.Context, sessionOptions) (*session, error) {
		return nil, errors.New("no config")
	}
	root := newRootCmd(failing)
	root.SetArgs([]string{"list"})
	root.SetOut(&bytes.Buffer{})

	err := root.ExecuteContext(t.Context())
	require.EqualError(t, err, "no config")
}
