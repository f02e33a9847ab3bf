// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package models

import "time"

// ConsumptionRecord is one bottle consumed. Records are append-only;
// corrections append a new record rather than mutating history.
type ConsumptionRecord struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	WineID string `json:"wine_id"`

	ConsumedAt time.Time `json:"consumed_at"`

	// Rating is the drinker's 0-10 score for this bottle.
	Rating float64 `json:"rating"`

	Occasion string `json:"occasion,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
