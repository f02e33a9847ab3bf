// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package window

import (
	"strings"

	"github.com/tomtom215/vinarium/internal/models"
)

// minCuratedConfidence gates curated-table hits; entries below it fall
// through to the algorithmic default.
const minCuratedConfidence = 0.7

// premiumRegionBonus is the aging bump for premium regions, in years.
const premiumRegionBonus = 3

// AgingEstimate is a resolved aging potential with provenance.
type AgingEstimate struct {
	Years      int
	Confidence float64
	Source     models.AgingSource
}

// Resolver resolves a wine's aging potential through three tiers:
// external data, the curated table, then the algorithmic type default.
// Resolution never fails; every wine gets an estimate.
type Resolver struct{}

// NewResolver creates an aging-potential resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the aging estimate for a wine. Tiers are tried in
// order of trustworthiness and the first hit wins.
func (r *Resolver) Resolve(wine *models.Wine) AgingEstimate {
	if est, ok := r.fromExternal(wine); ok {
		return est
	}
	if est, ok := r.fromCurated(wine); ok {
		return est
	}
	return r.fromDefault(wine)
}

// fromExternal uses externally sourced aging data verbatim. Confidence
// is 0.90, raised to 0.95 when professional ratings corroborate the
// source.
func (r *Resolver) fromExternal(wine *models.Wine) (AgingEstimate, bool) {
	years := wine.ExternalAgingPotential()
	if years <= 0 {
		return AgingEstimate{}, false
	}

	confidence := 0.90
	if wine.External != nil && len(wine.External.ProfessionalRatings) > 0 {
		confidence = 0.95
	}

	return AgingEstimate{
		Years:      years,
		Confidence: confidence,
		Source:     models.AgingSourceExternal,
	}, true
}

// fromCurated consults the curated tables, producer+region first, then
// region+varietal. Entries below minCuratedConfidence are ignored.
func (r *Resolver) fromCurated(wine *models.Wine) (AgingEstimate, bool) {
	if wine.Producer != "" && wine.Region != "" {
		key := normalizeKey(wine.Producer) + "|" + normalizeKey(wine.Region)
		if entry, ok := curatedByProducerRegion[key]; ok && entry.confidence >= minCuratedConfidence {
			return AgingEstimate{
				Years:      entry.years,
				Confidence: entry.confidence,
				Source:     models.AgingSourceCurated,
			}, true
		}
	}

	if wine.Region != "" {
		for _, varietal := range wine.Varietals {
			key := normalizeKey(wine.Region) + "|" + normalizeKey(varietal)
			if entry, ok := curatedByRegionVarietal[key]; ok && entry.confidence >= minCuratedConfidence {
				return AgingEstimate{
					Years:      entry.years,
					Confidence: entry.confidence,
					Source:     models.AgingSourceCurated,
				}, true
			}
		}
	}

	return AgingEstimate{}, false
}

// fromDefault derives the estimate from the type table, with the
// premium-region bump.
func (r *Resolver) fromDefault(wine *models.Wine) AgingEstimate {
	wineType := wine.Type
	if _, ok := baseAgingYears[wineType]; !ok {
		wineType = models.WineTypeOther
	}

	years := baseAgingYears[wineType]
	if isPremiumRegion(wine.Region) {
		years += premiumRegionBonus
	}

	return AgingEstimate{
		Years:      years,
		Confidence: 0.5,
		Source:     models.AgingSourceDefault,
	}
}

// isPremiumRegion matches region against the premium list by
// case-insensitive substring.
func isPremiumRegion(region string) bool {
	if region == "" {
		return false
	}
	lower := strings.ToLower(region)
	for _, premium := range premiumRegions {
		if strings.Contains(lower, premium) {
			return true
		}
	}
	return false
}

// normalizeKey lowercases and trims a table-lookup key component.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
