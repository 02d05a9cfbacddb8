package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/httpclient"
)

// captureIDs runs RequestID then CorrelationID and records what the handler
// sees.
func captureIDs(t *testing.T, header http.Header) (reqID, corrID string, outbound map[string]string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
		outbound = httpclient.OutboundHeaders(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return reqID, corrID, outbound, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	reqID, corrID, _, rec := captureIDs(t, nil)

	_, err := uuid.Parse(reqID)
	require.NoError(t, err)
	assert.Equal(t, reqID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, reqID, corrID, "correlation falls back to the request ID")
	assert.Equal(t, reqID, rec.Header().Get("X-Correlation-ID"))
}

func TestRequestID_ReusesIncomingHeaders(t *testing.T) {
	t.Parallel()

	reqID, corrID, outbound, rec := captureIDs(t, http.Header{
		"X-Request-Id":     {"req-42"},
		"X-Correlation-Id": {"sweep-7"},
	})

	assert.Equal(t, "req-42", reqID)
	assert.Equal(t, "sweep-7", corrID)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "sweep-7", rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, map[string]string{"X-Request-Id": "req-42", "X-Correlation-Id": "sweep-7"}, outbound)
}

func TestRequestID_ReplacesMalformedHeaders(t *testing.T) {
	t.Parallel()

	for name, bad := range map[string]string{
		"space":    "has space",
		"newline":  "line\nbreak",
		"too long": strings.Repeat("a", 129),
		"unicode":  "nöte",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reqID, corrID, _, _ := captureIDs(t, http.Header{
				"X-Request-Id":     {bad},
				"X-Correlation-Id": {bad},
			})
			assert.NotEqual(t, bad, reqID)
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			assert.Equal(t, reqID, corrID)
		})
	}
}

func TestRequestID_AcceptsMaxLength(t *testing.T) {
	t.Parallel()

	id := strings.Repeat("x", 128)
	reqID, _, _, _ := captureIDs(t, http.Header{"X-Request-Id": {id}})
	assert.Equal(t, id, reqID)
}

func TestCorrelationID_WithoutRequestID(t *testing.T) {
	t.Parallel()

	var got string
	h := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = middleware.CorrelationIDFromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Empty(t, got)
	assert.Empty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestIDsFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "r1"), "c1")
	assert.Equal(t, "r1", middleware.RequestIDFromContext(ctx))
	assert.Equal(t, "c1", middleware.CorrelationIDFromContext(ctx))
	assert.Equal(t, map[string]string{"X-Request-Id": "r1", "X-Correlation-Id": "c1"}, httpclient.OutboundHeaders(ctx))
}
