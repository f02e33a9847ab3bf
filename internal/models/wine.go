// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package models

import (
	"strings"
	"time"
)

// WineType classifies a wine for aging defaults, preference lookup,
// and serving guidance.
type WineType string

// Wine types. Anything outside this set falls back to WineTypeOther
// for aging purposes.
const (
	WineTypeRed       WineType = "red"
	WineTypeWhite     WineType = "white"
	WineTypeRose      WineType = "rosé"
	WineTypeSparkling WineType = "sparkling"
	WineTypeDessert   WineType = "dessert"
	WineTypeFortified WineType = "fortified"
	WineTypeOther     WineType = "other"
)

// IsValid reports whether t is one of the recognized wine types.
func (t WineType) IsValid() bool {
	switch t {
	case WineTypeRed, WineTypeWhite, WineTypeRose, WineTypeSparkling,
		WineTypeDessert, WineTypeFortified, WineTypeOther:
		return true
	default:
		return false
	}
}

// ParseWineType normalizes a user-supplied type string. Unrecognized
// values map to WineTypeOther.
func ParseWineType(s string) WineType {
	t := WineType(strings.ToLower(strings.TrimSpace(s)))
	if t == "rose" {
		return WineTypeRose
	}
	if t.IsValid() {
		return t
	}
	return WineTypeOther
}

// ExternalWineData holds enrichment fetched from external wine databases.
// All fields are optional; zero values mean "not available".
type ExternalWineData struct {
	// AgingPotentialYears is the externally sourced aging potential.
	// When > 0 it takes precedence over curated and default estimates.
	AgingPotentialYears int `json:"aging_potential_years,omitempty"`

	// ABV is alcohol by volume in percent.
	ABV float64 `json:"abv,omitempty"`

	// ProfessionalRatings maps critic/source name to a 0-100 score.
	ProfessionalRatings map[string]int `json:"professional_ratings,omitempty"`

	// DecantingMinutes is a recommended decanting time when known.
	DecantingMinutes int `json:"decanting_minutes,omitempty"`

	// FetchedAt records when the enrichment was retrieved.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
}

// Wine is a cellar inventory record.
type Wine struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Name     string `json:"name"`
	Producer string `json:"producer,omitempty"`

	// Vintage is the harvest year. Required; drives all window math.
	Vintage int `json:"vintage"`

	Type      WineType `json:"type"`
	Region    string   `json:"region,omitempty"`
	Country   string   `json:"country,omitempty"`
	Varietals []string `json:"varietals,omitempty"`

	// Quantity is bottles on hand. Zero keeps the record for history
	// but excludes it from drink-tonight candidacy.
	Quantity int `json:"quantity"`

	PurchasePrice float64    `json:"purchase_price,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`

	// PersonalRating is the owner's own 0-10 score, if recorded.
	PersonalRating float64 `json:"personal_rating,omitempty"`
	Notes          string  `json:"notes,omitempty"`

	External *ExternalWineData `json:"external,omitempty"`

	Window *DrinkingWindow `json:"drinking_window,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgeYearsAt returns the wine's age in whole years at t, counted from
// the vintage year.
func (w *Wine) AgeYearsAt(t time.Time) int {
	age := t.Year() - w.Vintage
	if age < 0 {
		return 0
	}
	return age
}

// HasVarietal reports whether the wine lists the given varietal,
// case-insensitively.
func (w *Wine) HasVarietal(varietal string) bool {
	for _, v := range w.Varietals {
		if strings.EqualFold(v, varietal) {
			return true
		}
	}
	return false
}

// ExternalAgingPotential returns the externally sourced aging potential
// in years, or 0 when no usable value is present.
func (w *Wine) ExternalAgingPotential() int {
	if w.External == nil || w.External.AgingPotentialYears <= 0 {
		return 0
	}
	return w.External.AgingPotentialYears
}
