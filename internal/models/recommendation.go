// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package models

// UrgencyHint is the caller's coarse urgency preference for a
// contextual recommendation request.
type UrgencyHint string

const (
	UrgencyLow    UrgencyHint = "low"
	UrgencyMedium UrgencyHint = "medium"
	UrgencyHigh   UrgencyHint = "high"
)

// IsValid reports whether h is a recognized urgency hint.
// The empty hint is valid and means "no preference".
func (h UrgencyHint) IsValid() bool {
	switch h {
	case "", UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

// RecommendationContext carries request-scoped situational inputs for
// contextual recommendations. It is never persisted.
type RecommendationContext struct {
	// Occasion describes the event ("dinner party", "weeknight").
	Occasion string `json:"occasion,omitempty"`

	// FoodPairing is free text describing the meal.
	FoodPairing string `json:"food_pairing,omitempty"`

	UrgencyHint UrgencyHint `json:"urgency_hint,omitempty"`

	// PriceRange filters candidates; wines without a recorded price
	// always pass.
	PriceRange *PriceRange `json:"price_range,omitempty"`

	CompanionCount int `json:"companion_count,omitempty"`

	// WineTypeFilter restricts candidates to one type when set.
	WineTypeFilter WineType `json:"wine_type_filter,omitempty"`
}

// ServingGuidance annotates a recommendation with how to serve the bottle.
type ServingGuidance struct {
	TemperatureCelsius int    `json:"temperature_celsius"`
	Glassware          string `json:"glassware"`

	// DecantMinutes is 0 when decanting is not recommended.
	DecantMinutes int    `json:"decant_minutes,omitempty"`
	DecantAdvice  string `json:"decant_advice,omitempty"`
}

// WindowAlertNote flags time pressure on a recommended wine.
type WindowAlertNote struct {
	Status        WindowStatus `json:"status"`
	Message       string       `json:"message"`
	DaysRemaining int          `json:"days_remaining"`
}

// Recommendation is one ranked suggestion. Exactly one of Wine or
// SuggestedWine is set: Wine when the pick resolves to an inventory
// bottle, SuggestedWine for purchase-mode descriptions of bottles the
// user does not own. A returned recommendation is immutable.
type Recommendation struct {
	Wine          *Wine  `json:"wine,omitempty"`
	SuggestedWine string `json:"suggested_wine,omitempty"`

	// Reasoning is the human-readable justification.
	Reasoning string `json:"reasoning"`

	// Confidence is the recommender's confidence, [0,1].
	Confidence float64 `json:"confidence"`

	// UrgencyScore expresses drink-window pressure, [0,100] for
	// inventory picks. Purchase suggestions carry a fixed nominal 0.5.
	UrgencyScore float64 `json:"urgency_score"`

	Serving      *ServingGuidance `json:"serving,omitempty"`
	PairingNotes string           `json:"pairing_notes,omitempty"`
	WindowAlert  *WindowAlertNote `json:"window_alert,omitempty"`

	// LearningNote marks purchase suggestions that fill a collection gap.
	LearningNote string `json:"learning_note,omitempty"`
}
