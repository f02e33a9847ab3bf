// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package window

import (
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

// Calculator derives drinking windows from vintage and resolved aging
// potential. It is stateless and safe for concurrent use.
type Calculator struct {
	resolver *Resolver
}

// NewCalculator creates a calculator backed by the given resolver.
func NewCalculator(resolver *Resolver) *Calculator {
	if resolver == nil {
		resolver = NewResolver()
	}
	return &Calculator{resolver: resolver}
}

// Compute derives the full drinking window for a wine as observed at
// now. The cached status is set from the same observation time.
//
// Date anchors are whole years from the vintage: window opens on
// Jan 1, closes on Dec 31, so a "drink within N years" estimate covers
// the entire Nth year.
func (c *Calculator) Compute(wine *models.Wine, now time.Time) models.DrinkingWindow {
	est := c.resolver.Resolve(wine)

	wineType := wine.Type
	if _, ok := minAgingYears[wineType]; !ok {
		wineType = models.WineTypeOther
	}

	peakStartYears := int(float64(est.Years) * 0.3)
	if peakStartYears < 2 {
		peakStartYears = 2
	}
	peakEndYears := int(float64(est.Years) * 0.7)
	if peakEndYears < 4 {
		peakEndYears = 4
	}

	w := models.DrinkingWindow{
		EarliestDate:        jan1(wine.Vintage + minAgingYears[wineType]),
		PeakStartDate:       jan1(wine.Vintage + peakStartYears),
		PeakEndDate:         dec31(wine.Vintage + peakEndYears),
		LatestDate:          dec31(wine.Vintage + est.Years),
		AgingPotentialYears: est.Years,
		Confidence:          est.Confidence,
		Source:              est.Source,
		ComputedAt:          now,
	}

	clampWindow(&w)
	w.CurrentStatus = StatusOf(&w, now)

	return w
}

// Refresh recomputes the cached status on an existing window without
// re-deriving the dates. Idempotent; safe to apply in any order across
// a batch.
func (c *Calculator) Refresh(w *models.DrinkingWindow, now time.Time) bool {
	status := StatusOf(w, now)
	if status == w.CurrentStatus {
		return false
	}
	w.CurrentStatus = status
	w.ComputedAt = now
	return true
}

// clampWindow forces the non-decreasing date invariant. Short aging
// potentials can produce a raw peak end past the latest date; the
// clamp resolves every such overlap in favor of the later bound.
func clampWindow(w *models.DrinkingWindow) {
	if w.PeakStartDate.Before(w.EarliestDate) {
		w.PeakStartDate = w.EarliestDate
	}
	if w.PeakEndDate.Before(w.PeakStartDate) {
		w.PeakEndDate = w.PeakStartDate
	}
	if w.LatestDate.Before(w.PeakEndDate) {
		w.LatestDate = w.PeakEndDate
	}
}

// jan1 returns midnight UTC on January 1 of the given year.
func jan1(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// dec31 returns midnight UTC on December 31 of the given year.
func dec31(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}
