package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/hapkiduki/resin-calc/internal/application/dto"
)

// ReadinessChecker reports whether a dependency can serve traffic.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version   string
	startTime time.Time
	checks    map[string]ReadinessChecker
}

// NewHealthHandler creates a HealthHandler.
//
// Parameters:
//   - version: application version
//   - startTime: process start, for uptime
//   - checks: named readiness checks run by /ready
//
// Returns:
//   - *HealthHandler: the handler
func NewHealthHandler(version string, startTime time.Time, checks map[string]ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: startTime,
		checks:    checks,
	}
}

// Health handles GET /health. It never depends on other components.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready handles GET /ready, running every readiness check.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{
		Status:  "ready",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Checks:  make(map[string]dto.HealthCheckResult, len(h.checks)),
	}
	status := http.StatusOK

	for name, check := range h.checks {
		start := time.Now()
		result := dto.HealthCheckResult{Status: "up"}
		if err := check.Ready(r.Context()); err != nil {
			result.Status = "down"
			result.Message = err.Error()
			resp.Status = "not_ready"
			status = http.StatusServiceUnavailable
		}
		result.ResponseTime = time.Since(start).Milliseconds()
		resp.Checks[name] = result
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

// NotFound handles 404 responses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, dto.NewErrorResponse[any](dto.CodeNotFound, "The requested resource was not found"))
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, dto.NewErrorResponse[any](dto.CodeMethodNotAllowed, "The requested method is not allowed for this resource"))
}
