package handlers

import (
	"net/http"
	"time"

	"github.com/globallang/gla-backend/internal/http/respond"
)

// HealthHandler returns uptime and basic status.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Handle reports service liveness.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

// Root serves the placeholder landing response.
func Root(w http.ResponseWriter, r *http.Request) {
	respond.Text(w, http.StatusOK, "Global Language marketplace API")
}
