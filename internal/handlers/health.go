// ABOUTME: Health check handler
// ABOUTME: Reports service status, version, uptime and whether the result cache is on

package handlers

import (
	"net/http"
	"time"

	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/models"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:        "ok",
		Version:       config.Version,
		StartedAt:     h.startedAt.UTC(),
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CacheEnabled:  h.cache != nil,
	})
}
