package handlers

import (
	"context"
	"net/http"
	"time"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	decks              service.DeckService
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(deckService service.DeckService) *HealthHandler {
	return &HealthHandler{
		decks:              deckService,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP reports whether the default deck can be fetched.
// Returns 200 OK if healthy, 503 Service Unavailable otherwise.
// Route: GET /api/health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if err := h.decks.Check(checkCtx); err != nil {
		logger.WarnContext(ctx, "deck source health check failed", "error", err)
		checks["deck_source"] = "error"
		issues = append(issues, "deck_source_unavailable")
	} else {
		checks["deck_source"] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(ctx, w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}
