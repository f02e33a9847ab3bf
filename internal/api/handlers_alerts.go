// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package api

import (
	"net/http"
	"time"
)

// Alerts scans a user's inventory and returns the current alert
// report: wines entering peak, leaving peak soon, or past their
// window. Wines without a cached window are computed on the fly; the
// scheduled sweep owns the write-back.
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	wines, err := h.store.ListWines(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load inventory", err)
		return
	}

	now := time.Now().UTC()
	for _, wine := range wines {
		if wine.Window == nil {
			win := h.calc.Compute(wine, now)
			wine.Window = &win
		}
	}

	report := h.detector.Scan(userID, wines, now)
	respondJSON(w, http.StatusOK, report)
}

// RefreshWindows triggers an immediate full sweep: every user's
// windows recomputed, statuses written back, alerts published.
func (h *Handler) RefreshWindows(w http.ResponseWriter, r *http.Request) {
	if h.refresher == nil {
		respondError(w, http.StatusServiceUnavailable, "SWEEP_UNAVAILABLE",
			"Window refresh service is not running", nil)
		return
	}

	start := time.Now()
	if err := h.refresher.Sweep(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "SWEEP_FAILED", "Window refresh failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed":   true,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}
