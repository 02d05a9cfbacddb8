package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/middleware"
)

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/api/v1/notes/3")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notes", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/notes/3", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":3}`, rec.Body.String())
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "too late")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, http.StatusGatewayTimeout, body["status"])

	select {
	case err := <-lateWrite:
		assert.ErrorIs(t, err, http.ErrHandlerTimeout)
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
}

func TestTimeout_ImplicitOKStatus(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	h := middleware.Recovery(discardLogger())(
		middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(boom)
		})),
	)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notes/1", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
