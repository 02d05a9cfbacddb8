package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

func TestNewErrorResponse_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"validation", domain.NewFieldError("title", domain.MsgRequired), http.StatusBadRequest, "validation error: title: is required"},
		{"not found", fmt.Errorf("note 9: %w", domain.ErrNotFound), http.StatusNotFound, "note 9: not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"conflict", fmt.Errorf("note 3 is not snoozable: %w", domain.ErrConflict), http.StatusConflict, "note 3 is not snoozable: conflict"},
		{"remote unavailable", domain.ErrUnavailable, http.StatusBadGateway, "unavailable"},
		{"deadline", fmt.Errorf("request exceeded 10s: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "request exceeded 10s: context deadline exceeded"},
		{"storage failure is opaque", &domain.PersistenceError{Op: "save", ID: 3, Err: errors.New("disk full at /var/lib/notes")}, http.StatusServiceUnavailable, "Service Unavailable"},
		{"unknown failure is opaque", errors.New("nil pointer somewhere"), http.StatusInternalServerError, "Internal Server Error"},
		{"not found wins over storage wrapper", &domain.PersistenceError{Op: "save", ID: 7, Err: domain.ErrNotFound}, http.StatusNotFound, "persistence error: save note 7: not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/notes/3?x=1", nil)
			resp := dto.NewErrorResponse(req, tt.err)

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), resp.Title)
			assert.Equal(t, tt.wantDetail, resp.Detail)
			assert.Equal(t, "about:blank", resp.Type)
			assert.Equal(t, "/api/v1/notes/3?x=1", resp.Instance)
		})
	}
}

func TestNewErrorResponse_Locations(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	fields := &domain.ValidationError{Fields: map[string]string{
		"title": domain.MsgRequired,
		"name":  domain.MsgRequired,
	}}

	tests := []struct {
		name string
		err  error
		want []dto.ErrorDetail
	}{
		{"body by default, sorted", fields, []dto.ErrorDetail{
			{Location: "body.name", Message: domain.MsgRequired},
			{Location: "body.title", Message: domain.MsgRequired},
		}},
		{"query", dto.InQuery(domain.NewFieldError("limit", "must be between 1 and 100")), []dto.ErrorDetail{
			{Location: "query.limit", Message: "must be between 1 and 100"},
		}},
		{"path", dto.InPath(domain.NewFieldError("id", "must be a positive integer")), []dto.ErrorDetail{
			{Location: "path.id", Message: "must be a positive integer"},
		}},
		{"whole body", domain.NewFieldError("body", "invalid JSON"), []dto.ErrorDetail{
			{Location: "body", Message: "invalid JSON"},
		}},
		{"none for other errors", domain.ErrConflict, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dto.NewErrorResponse(req, tt.err).Errors)
		})
	}
}

func TestInQuery_KeepsClassification(t *testing.T) {
	t.Parallel()

	err := dto.InQuery(domain.NewFieldError("offset", "must be a non-negative integer"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "validation error: offset: must be a non-negative integer", err.Error())
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes/4/snooze", nil)
	dto.WriteErrorResponse(rec, req, fmt.Errorf("note 4 is not snoozable: %w", domain.ErrConflict))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{
		"type":     "about:blank",
		"title":    "Conflict",
		"status":   float64(http.StatusConflict),
		"detail":   "note 4 is not snoozable: conflict",
		"instance": "/api/v1/notes/4/snooze",
	}, body)
}
