// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package models

import "time"

// FlavorAxes captures preference intensity on the standard tasting
// dimensions, each on a 0-10 scale.
type FlavorAxes struct {
	Fruitiness float64 `json:"fruitiness"`
	Earthiness float64 `json:"earthiness"`
	Oakiness   float64 `json:"oakiness"`
	Acidity    float64 `json:"acidity"`
	Tannins    float64 `json:"tannins"`
	Sweetness  float64 `json:"sweetness"`
	Body       float64 `json:"body"`
}

// TypePreferences bundles a user's preferences for one wine type.
type TypePreferences struct {
	Flavors FlavorAxes `json:"flavors"`

	PreferredRegions   []string `json:"preferred_regions,omitempty"`
	PreferredVarietals []string `json:"preferred_varietals,omitempty"`

	// DislikedCharacteristics lists free-text traits to avoid
	// ("too oaky", "high tannin").
	DislikedCharacteristics []string `json:"disliked_characteristics,omitempty"`
}

// PriceRange bounds an acceptable price band. Zero Max means unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price falls inside the range. A zero Max
// imposes no upper bound.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

// GeneralPreferences holds cross-type preferences.
type GeneralPreferences struct {
	PriceRange PriceRange `json:"price_range"`

	// FoodPairingImportance weights how much pairing should influence
	// contextual recommendations, [0,1].
	FoodPairingImportance float64 `json:"food_pairing_importance"`

	// OccasionWeights maps occasion name to a relative weight.
	OccasionWeights map[string]float64 `json:"occasion_weights,omitempty"`
}

// TasteProfile is a user's learned or declared taste preferences,
// bundled per wine type.
type TasteProfile struct {
	UserID string `json:"user_id"`

	Red       TypePreferences `json:"red"`
	White     TypePreferences `json:"white"`
	Sparkling TypePreferences `json:"sparkling"`

	General GeneralPreferences `json:"general"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ForType returns the preference bundle relevant to a wine type.
// Rosé and dessert wines borrow the white bundle, fortified borrows
// red; profiles only carry the three core bundles.
func (p *TasteProfile) ForType(t WineType) TypePreferences {
	switch t {
	case WineTypeWhite, WineTypeRose, WineTypeDessert:
		return p.White
	case WineTypeSparkling:
		return p.Sparkling
	default:
		return p.Red
	}
}
