// ABOUTME: Calculation handlers for single configurations, sweeps, batches and recommendations
// ABOUTME: Single-configuration results are served from the TTL cache when available

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cyan1/Availability/internal/metrics"
	"github.com/cyan1/Availability/internal/models"
)

// Availability evaluates one configuration in either mode
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	var req models.CalculationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	key := req.CacheKey()
	if h.cache != nil {
		if cached, found := h.cache.Get(key); found {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			resp := cached.(models.CalculationResponse)
			resp.Name = req.Name
			h.writeJSON(w, http.StatusOK, resp)
			return
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	// Identical concurrent misses share one evaluation
	v, err, _ := h.sfGroup.Do(key, func() (any, error) {
		resp, err := h.calc.Calculate(req)
		if err != nil {
			return nil, err
		}
		if h.cache != nil {
			h.cache.Set(key, resp)
		}
		return resp, nil
	})
	if err != nil {
		slog.Debug("Calculation rejected", "error", err)
		h.writeCalcError(w, err)
		return
	}

	resp := v.(models.CalculationResponse)
	resp.Name = req.Name
	h.writeJSON(w, http.StatusOK, resp)
}

// Sweep evaluates every need from 1 to have
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req models.SweepRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.calc.Sweep(r.Context(), req)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Batch evaluates a list of configurations; invalid entries are reported per item
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if len(req.Configurations) == 0 {
		h.writeError(w, "No configurations provided", http.StatusBadRequest)
		return
	}

	resp, err := h.calc.RunBatch(r.Context(), req.Configurations)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Recommend finds the smallest redundant configuration meeting a target
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.calc.Recommend(req)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
