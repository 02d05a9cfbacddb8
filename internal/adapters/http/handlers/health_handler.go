package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a handler that reports registry's checks.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readiness struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, checkResult{Status: "ok"})
}

// Readiness handles GET /health/ready: 200 when every dependency answers,
// 503 with the failing checks otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body := readiness{Status: "ready", Checks: map[string]checkResult{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			body.Checks[name] = checkResult{Status: "ok"}
			continue
		}
		body.Checks[name] = checkResult{Status: "failing", Error: err.Error()}
		body.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, body)
}
