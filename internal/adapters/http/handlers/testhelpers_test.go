package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/sanitize"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time           { return testTime }
func (fixedClock) Location() *time.Location { return time.UTC }

// withChiParams attaches URL params the way chi's router would.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	route := chi.NewRouteContext()
	for name, value := range params {
		route.URLParams.Add(name, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, route))
}

// validNote returns a stored snoozable note with one primary action.
func validNote(t *testing.T) *note.Note {
	t.Helper()

	n := note.NewSchema(sanitize.New(), note.WithClock(fixedClock{})).New()
	n.SetID(1)
	n.SetIsSnoozable(true)
	for _, err := range []error{
		n.SetName("wc-admin-welcome"),
		n.SetTitle("Welcome"),
		n.SetContent("Thanks for installing."),
		n.AddAction("dismiss", "Dismiss", note.WithPrimary(true)),
	} {
		if err != nil {
			t.Fatalf("building note: %v", err)
		}
	}
	return n
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// requireStatus fails the test immediately on an unexpected status code.
func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
