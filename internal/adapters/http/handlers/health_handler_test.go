package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/admin-notes-service/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		results  map[string]error
		wantCode int
		wantBody string
	}{
		{
			name:     "no checkers",
			results:  map[string]error{},
			wantCode: http.StatusOK,
			wantBody: `{"status":"ready","checks":{}}`,
		},
		{
			name:     "all healthy",
			results:  map[string]error{"notes-store": nil, "notes-api": nil},
			wantCode: http.StatusOK,
			wantBody: `{"status":"ready","checks":{"notes-store":{"status":"ok"},"notes-api":{"status":"ok"}}}`,
		},
		{
			name: "one failing",
			results: map[string]error{
				"notes-store": nil,
				"notes-api":   errors.New("notes-api: failing (circuit breaker open)"),
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"not_ready","checks":{
				"notes-store":{"status":"ok"},
				"notes-api":{"status":"failing","error":"notes-api: failing (circuit breaker open)"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
