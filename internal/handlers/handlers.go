// ABOUTME: HTTP handlers for the availability calculator API
// ABOUTME: Shared handler state plus JSON request decoding and response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cyan1/Availability/internal/cache"
	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/reliability"
	"github.com/cyan1/Availability/internal/services"

	"golang.org/x/sync/singleflight"
)

// maxRequestBodySize bounds request bodies; a full batch fits comfortably.
const maxRequestBodySize = 1 << 20

type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	calc      *services.Calculator
	startedAt time.Time
	sfGroup   singleflight.Group
}

// NewHandler creates the API handlers. A nil cache disables result caching;
// a nil cfg uses config.Defaults.
func NewHandler(cfg *config.Config, cache *cache.Cache) *Handler {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Handler{
		cfg:       cfg,
		cache:     cache,
		calc:      services.NewCalculator(cfg),
		startedAt: time.Now(),
	}
}

// writeJSON encodes data before committing the status, so an encoding
// failure becomes a 500 error body instead of an empty success.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(models.ErrorResponse{
			Error: "Failed to encode response",
			Code:  status,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Debug("Failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorWithDetails(w, message, "", code)
}

func (h *Handler) writeErrorWithDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// decodeJSON reads a size-limited JSON body into v. On failure it writes a
// 400 response and returns false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		h.writeErrorWithDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeCalcError maps calculation errors to HTTP responses
func (h *Handler) writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reliability.ErrInvalidParameter):
		h.writeErrorWithDetails(w, "Invalid parameter", err.Error(), http.StatusBadRequest)
	case errors.Is(err, reliability.ErrOverflow):
		h.writeErrorWithDetails(w, "Result out of range", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, services.ErrBatchTooLarge):
		h.writeErrorWithDetails(w, "Batch too large", err.Error(), http.StatusRequestEntityTooLarge)
	default:
		slog.Error("Calculation failed", "error", err)
		h.writeError(w, "Calculation failed", http.StatusInternalServerError)
	}
}
