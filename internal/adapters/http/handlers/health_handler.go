package handlers

import (
	"net/http"
	"slices"

	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	soft     []string
}

// NewHealthHandler returns a HealthHandler. Failing checks named in soft
// report the console as degraded instead of not ready: wizard sessions live
// in memory and listings fall back to cached pages, so an unreachable tenant
// directory should not take the console out of rotation.
func NewHealthHandler(registry ports.HealthRegistry, soft ...string) *HealthHandler {
	return &HealthHandler{registry: registry, soft: soft}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It answers 200 with "ready" or
// "degraded", and 503 when a check outside the soft set fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	status := statusReady
	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		switch {
		case !slices.Contains(h.soft, name):
			status = statusNotReady
		case status == statusReady:
			status = statusDegraded
		}
	}

	code := http.StatusOK
	if status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
