package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/admin-notes-service/internal/adapters/http"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/admin-notes-service/internal/app"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/health"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/sanitize"
)

var apiNow = time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)

type apiClock struct{}

func (apiClock) Now() time.Time           { return apiNow }
func (apiClock) Location() *time.Location { return time.UTC }

func newNotesAPI(t *testing.T) *httptest.Server {
	t.Helper()

	schema, err := app.NewSchema(sanitize.New(), apiClock{}, app.SchemaConfig{ExtraTypes: []string{"marketing"}})
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	repo := memstore.New()
	svc := app.NewNoteService(schema, repo, logger)

	registry := health.New()
	registry.Register(repo)

	router := adapthttp.NewRouter(
		handlers.NewNoteHandler(svc, func() time.Time { return apiNow.Add(48 * time.Hour) }),
		handlers.NewHealthHandler(registry),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logging(logger),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, srv.URL+path, r)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestNotesAPI_Lifecycle(t *testing.T) {
	t.Parallel()
	srv := newNotesAPI(t)

	status, body := call(t, srv, http.MethodPost, "/api/v1/notes", map[string]any{
		"name":         "wc-admin-new-feature",
		"type":         "marketing",
		"title":        "New feature",
		"content":      "<strong>Try</strong> it <script>alert(1)</script>",
		"content_data": map[string]any{"feature": "analytics"},
		"is_snoozable": true,
		"actions": []map[string]any{
			{"name": "learn-more", "label": "<em>Learn</em> more", "query": "https://example.com/a b", "primary": true},
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var created notejson.NoteResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Positive(t, created.ID)
	assert.NotContains(t, created.Content, "<script>")
	require.Len(t, created.Actions, 1)
	assert.Equal(t, "Learn more", created.Actions[0].Label)
	assert.Equal(t, "2025-06-02T08:30:00Z", created.DateCreated)

	path := fmt.Sprintf("/api/v1/notes/%d", created.ID)

	status, body = call(t, srv, http.MethodPost, path+"/snooze", map[string]string{"until": "2025-06-03T09:00:00Z"})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = call(t, srv, http.MethodGet, "/api/v1/notes?status=snoozed", nil)
	require.Equal(t, http.StatusOK, status)
	var snoozed notejson.NoteListResponse
	require.NoError(t, json.Unmarshal(body, &snoozed))
	assert.Equal(t, 1, snoozed.Total)

	status, body = call(t, srv, http.MethodPost, "/api/v1/notes/unsnooze", nil)
	require.Equal(t, http.StatusOK, status)
	var sweep notejson.UnsnoozeResponse
	require.NoError(t, json.Unmarshal(body, &sweep))
	assert.Equal(t, []int64{created.ID}, sweep.Unsnoozed)

	status, body = call(t, srv, http.MethodPost, path+"/actions/learn-more", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var actioned notejson.NoteResponse
	require.NoError(t, json.Unmarshal(body, &actioned))
	assert.Equal(t, "actioned", actioned.Status)

	status, _ = call(t, srv, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, srv, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNotesAPI_RejectsUnknownType(t *testing.T) {
	t.Parallel()
	srv := newNotesAPI(t)

	status, body := call(t, srv, http.MethodPost, "/api/v1/notes", map[string]any{
		"name": "n", "title": "t", "content": "c", "type": "promo",
	})
	require.Equal(t, http.StatusBadRequest, status)

	var problem dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &problem))
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "body.type", problem.Errors[0].Location)
}

func TestNotesAPI_Readiness(t *testing.T) {
	t.Parallel()
	srv := newNotesAPI(t)

	status, body := call(t, srv, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"notes-store":{"status":"ok"}`)
}
