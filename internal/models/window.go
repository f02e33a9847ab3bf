// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package models

import (
	"fmt"
	"time"
)

// WindowStatus is the lifecycle stage of a wine relative to its
// drinking window. Status is fully derived from the window dates and
// the observation time; stored values are caches that must be
// refreshed before any urgency-sensitive read.
type WindowStatus string

// Lifecycle stages, in chronological order. There is no terminal
// state: over_hill wines remain in inventory until removed.
const (
	StatusTooYoung  WindowStatus = "too_young"
	StatusReady     WindowStatus = "ready"
	StatusPeak      WindowStatus = "peak"
	StatusDeclining WindowStatus = "declining"
	StatusOverHill  WindowStatus = "over_hill"
)

// IsValid reports whether s is a recognized lifecycle stage.
func (s WindowStatus) IsValid() bool {
	switch s {
	case StatusTooYoung, StatusReady, StatusPeak, StatusDeclining, StatusOverHill:
		return true
	default:
		return false
	}
}

// AgingSource identifies which tier of the aging-potential resolution
// produced an estimate.
type AgingSource string

const (
	AgingSourceExternal AgingSource = "external_data"
	AgingSourceCurated  AgingSource = "curated_table"
	AgingSourceDefault  AgingSource = "type_default"
)

// DrinkingWindow is the computed consumption window for a wine.
// The four dates are always non-decreasing.
type DrinkingWindow struct {
	// EarliestDate is when the wine becomes drinkable.
	EarliestDate time.Time `json:"earliest_date"`

	// PeakStartDate opens the optimal stretch.
	PeakStartDate time.Time `json:"peak_start_date"`

	// PeakEndDate closes the optimal stretch (inclusive).
	PeakEndDate time.Time `json:"peak_end_date"`

	// LatestDate is the last recommended consumption date (inclusive).
	LatestDate time.Time `json:"latest_date"`

	// CurrentStatus is the cached lifecycle stage as of ComputedAt.
	CurrentStatus WindowStatus `json:"current_status"`

	// AgingPotentialYears is the resolved aging potential the window
	// was derived from.
	AgingPotentialYears int `json:"aging_potential_years"`

	// Confidence is the resolver's confidence in the estimate, [0,1].
	Confidence float64 `json:"confidence"`

	// Source records which resolution tier produced the estimate.
	Source AgingSource `json:"source"`

	// ComputedAt is when the window (and cached status) was last derived.
	ComputedAt time.Time `json:"computed_at"`
}

// Validate checks the non-decreasing date invariant.
func (w *DrinkingWindow) Validate() error {
	if w.PeakStartDate.Before(w.EarliestDate) {
		return fmt.Errorf("drinking window: peak start %s before earliest %s",
			w.PeakStartDate.Format(time.DateOnly), w.EarliestDate.Format(time.DateOnly))
	}
	if w.PeakEndDate.Before(w.PeakStartDate) {
		return fmt.Errorf("drinking window: peak end %s before peak start %s",
			w.PeakEndDate.Format(time.DateOnly), w.PeakStartDate.Format(time.DateOnly))
	}
	if w.LatestDate.Before(w.PeakEndDate) {
		return fmt.Errorf("drinking window: latest %s before peak end %s",
			w.LatestDate.Format(time.DateOnly), w.PeakEndDate.Format(time.DateOnly))
	}
	return nil
}
