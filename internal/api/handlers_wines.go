// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/vinarium/internal/models"
	"github.com/tomtom215/vinarium/internal/storage"
	"github.com/tomtom215/vinarium/internal/validation"
)

// CreateWineRequest is the POST /wines payload.
type CreateWineRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	Name          string   `json:"name" validate:"required,max=200"`
	Producer      string   `json:"producer" validate:"max=200"`
	Vintage       int      `json:"vintage" validate:"vintage"`
	Type          string   `json:"type" validate:"required"`
	Region        string   `json:"region" validate:"max=200"`
	Country       string   `json:"country" validate:"max=100"`
	Varietals     []string `json:"varietals"`
	Quantity      int      `json:"quantity" validate:"min=0"`
	PurchasePrice float64  `json:"purchase_price" validate:"min=0"`
	Notes         string   `json:"notes" validate:"max=4000"`

	External *models.ExternalWineData `json:"external"`
}

// UpdateWineRequest is the PUT /wines/{id} payload. Identity fields
// are immutable; window-relevant edits trigger recomputation.
type UpdateWineRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Producer      string   `json:"producer" validate:"max=200"`
	Vintage       int      `json:"vintage" validate:"vintage"`
	Type          string   `json:"type" validate:"required"`
	Region        string   `json:"region" validate:"max=200"`
	Country       string   `json:"country" validate:"max=100"`
	Varietals     []string `json:"varietals"`
	Quantity      int      `json:"quantity" validate:"min=0"`
	PurchasePrice float64  `json:"purchase_price" validate:"min=0"`
	Notes         string   `json:"notes" validate:"max=4000"`

	External *models.ExternalWineData `json:"external"`
}

// ConsumptionRequest records one drunk bottle.
type ConsumptionRequest struct {
	Rating   float64 `json:"rating" validate:"min=0,max=10"`
	Occasion string  `json:"occasion" validate:"max=200"`
	Notes    string  `json:"notes" validate:"max=4000"`
}

// CreateWine adds a wine to the inventory and computes its drinking
// window immediately.
func (h *Handler) CreateWine(w http.ResponseWriter, r *http.Request) {
	var req CreateWineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	now := time.Now().UTC()
	wine := &models.Wine{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Name:          req.Name,
		Producer:      req.Producer,
		Vintage:       req.Vintage,
		Type:          models.ParseWineType(req.Type),
		Region:        req.Region,
		Country:       req.Country,
		Varietals:     req.Varietals,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		Notes:         req.Notes,
		External:      req.External,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	win := h.calc.Compute(wine, now)
	wine.Window = &win

	if err := h.store.SaveWine(r.Context(), wine); err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save wine", err)
		return
	}

	h.logger.Info().
		Str("wine_id", wine.ID).
		Str("status", string(win.CurrentStatus)).
		Msg("wine created")
	respondJSON(w, http.StatusCreated, wine)
}

// GetWine returns one wine.
func (h *Handler) GetWine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	wine, err := h.store.GetWine(r.Context(), userID, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Wine not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load wine", err)
		return
	}
	respondJSON(w, http.StatusOK, wine)
}

// ListWines returns a user's inventory.
func (h *Handler) ListWines(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	wines, err := h.store.ListWines(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list wines", err)
		return
	}
	respondJSON(w, http.StatusOK, wines)
}

// UpdateWine replaces a wine's mutable fields. Edits that move the
// window inputs (vintage, type, region, external data) recompute the
// window in the same write.
func (h *Handler) UpdateWine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateWineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	wine, err := h.store.GetWine(r.Context(), userID, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Wine not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load wine", err)
		return
	}

	newType := models.ParseWineType(req.Type)
	windowStale := wine.Vintage != req.Vintage ||
		wine.Type != newType ||
		wine.Region != req.Region ||
		externalChanged(wine.External, req.External)

	wine.Name = req.Name
	wine.Producer = req.Producer
	wine.Vintage = req.Vintage
	wine.Type = newType
	wine.Region = req.Region
	wine.Country = req.Country
	wine.Varietals = req.Varietals
	wine.Quantity = req.Quantity
	wine.PurchasePrice = req.PurchasePrice
	wine.Notes = req.Notes
	wine.External = req.External
	wine.UpdatedAt = time.Now().UTC()

	if windowStale || wine.Window == nil {
		win := h.calc.Compute(wine, wine.UpdatedAt)
		wine.Window = &win
	}

	if err := h.store.SaveWine(r.Context(), wine); err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save wine", err)
		return
	}
	respondJSON(w, http.StatusOK, wine)
}

// DeleteWine removes a wine from the inventory.
func (h *Handler) DeleteWine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	err := h.store.DeleteWine(r.Context(), userID, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Wine not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete wine", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordConsumption logs a drunk bottle: decrements quantity and
// appends an immutable history record.
func (h *Handler) RecordConsumption(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ConsumptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	wine, err := h.store.GetWine(r.Context(), userID, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Wine not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load wine", err)
		return
	}
	if wine.Quantity <= 0 {
		respondError(w, http.StatusConflict, "NO_BOTTLES", "No bottles of this wine remain", nil)
		return
	}

	record := &models.ConsumptionRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		WineID:     wine.ID,
		ConsumedAt: time.Now().UTC(),
		Rating:     req.Rating,
		Occasion:   req.Occasion,
		Notes:      req.Notes,
	}
	if err := h.store.AppendConsumption(r.Context(), record); err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to record consumption", err)
		return
	}

	wine.Quantity--
	wine.UpdatedAt = record.ConsumedAt
	if err := h.store.SaveWine(r.Context(), wine); err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update quantity", err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// ListConsumption returns a user's consumption history, oldest first.
func (h *Handler) ListConsumption(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	records, err := h.store.ListConsumption(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list consumption", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// GetProfile returns a user's taste profile, or an empty profile when
// none has been saved.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.store.GetProfile(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		respondJSON(w, http.StatusOK, &models.TasteProfile{})
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// PutProfile replaces a user's taste profile.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var profile models.TasteProfile
	if !decodeJSON(w, r, &profile) {
		return
	}

	if err := h.store.SaveProfile(r.Context(), userID, &profile); err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save profile", err)
		return
	}
	respondJSON(w, http.StatusOK, &profile)
}

// externalChanged reports whether an edit moved the external aging
// inputs the window math depends on.
func externalChanged(before, after *models.ExternalWineData) bool {
	switch {
	case before == nil && after == nil:
		return false
	case before == nil || after == nil:
		return true
	default:
		return before.AgingPotentialYears != after.AgingPotentialYears ||
			len(before.ProfessionalRatings) != len(after.ProfessionalRatings)
	}
}
