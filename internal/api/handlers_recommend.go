// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/vinarium/internal/models"
	"github.com/tomtom215/vinarium/internal/reasoning"
	"github.com/tomtom215/vinarium/internal/recommend"
	"github.com/tomtom215/vinarium/internal/storage"
	"github.com/tomtom215/vinarium/internal/validation"
)

// RecommendationsRequest is the POST /recommendations payload. The
// server loads inventory, profile, and history; the client only names
// the user, the mode, and an optional occasion context.
type RecommendationsRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Mode   string `json:"mode" validate:"required,oneof=tonight purchase contextual"`

	Context *models.RecommendationContext `json:"context"`
}

// Recommendations generates recommendations for one request.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}
	if req.Context != nil && !req.Context.UrgencyHint.IsValid() {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Unknown urgency hint", nil)
		return
	}

	ctx := r.Context()

	inventory, err := h.store.ListWines(ctx, req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load inventory", err)
		return
	}

	profile, err := h.store.GetProfile(ctx, req.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load profile", err)
		return
	}

	history, err := h.store.ListConsumption(ctx, req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load history", err)
		return
	}

	resp, err := h.engine.Generate(ctx, &recommend.Request{
		UserID:    req.UserID,
		Mode:      recommend.Mode(req.Mode),
		Context:   req.Context,
		Inventory: inventory,
		Profile:   profile,
		History:   history,
	})
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	case errors.Is(err, reasoning.ErrUnavailable):
		respondError(w, http.StatusBadGateway, "REASONING_UNAVAILABLE",
			"The suggestion service is temporarily unavailable", err)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation generation failed", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
