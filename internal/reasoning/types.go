// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package reasoning is the client for the external text-generation
// service that turns collection-gap analyses into purchase
// suggestions. Only structured request and reply shapes cross this
// boundary; prompt construction is the service's concern.
package reasoning

import "github.com/tomtom215/vinarium/internal/models"

// Query is the structured purchase-suggestion request.
type Query struct {
	UserID string `json:"user_id"`

	MissingRegions        []string `json:"missing_regions,omitempty"`
	MissingVarietals      []string `json:"missing_varietals,omitempty"`
	UnderrepresentedTypes []string `json:"underrepresented_types,omitempty"`

	PriceRange *models.PriceRange `json:"price_range,omitempty"`
	Occasion   string             `json:"occasion,omitempty"`
}

// Suggestion is one wine the service proposes buying. The service
// identifies the bottle either way: WineID when it refers back to a
// wine the user already owns, SuggestedWine otherwise.
type Suggestion struct {
	// WineID references an inventory wine, when set.
	WineID string `json:"wine_id,omitempty"`

	// SuggestedWine is a human-readable description of the bottle.
	SuggestedWine string `json:"suggested_wine,omitempty"`

	// Reasoning explains why this bottle fits.
	Reasoning string `json:"reasoning"`

	// Confidence is the service's own confidence, [0,1].
	Confidence float64 `json:"confidence"`
}

// suggestResponse is the wire shape of the service reply.
type suggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}
