// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/vinarium/internal/models"
)

// Scorer computes how well a wine matches a user's taste, [0,1].
// Implementations must be pure and safe for concurrent use; the
// engine treats the scorer as a swappable strategy so a learned model
// can replace the rule-based default without touching ranking.
type Scorer interface {
	// Name identifies the strategy for logging and response metadata.
	Name() string

	// Score rates one wine against the profile and consumption
	// history. A nil profile or empty history degrades gracefully
	// toward the neutral 0.5.
	Score(wine *models.Wine, profile *models.TasteProfile, history []*models.ConsumptionRecord) float64
}

// maxRecentRatings bounds how many past bottles of the same wine
// influence the score.
const maxRecentRatings = 3

// Preference score increments.
const (
	scoreBase          = 0.5
	regionBonus        = 0.2
	varietalBonus      = 0.2
	ratingPointWeight  = 0.1
	neutralRatingPivot = 5.0
)

// PreferenceScorer is the rule-based default scorer: a neutral base
// with bonuses for preferred regions and varietals, adjusted by the
// user's own recent ratings of the same wine.
type PreferenceScorer struct{}

// NewPreferenceScorer creates the default scorer.
func NewPreferenceScorer() *PreferenceScorer {
	return &PreferenceScorer{}
}

// Name implements Scorer.
func (s *PreferenceScorer) Name() string {
	return "preference"
}

// Score implements Scorer.
func (s *PreferenceScorer) Score(wine *models.Wine, profile *models.TasteProfile, history []*models.ConsumptionRecord) float64 {
	score := scoreBase

	if profile != nil {
		prefs := profile.ForType(wine.Type)
		if regionMatches(wine.Region, prefs.PreferredRegions) {
			score += regionBonus
		}
		if varietalMatches(wine.Varietals, prefs.PreferredVarietals) {
			score += varietalBonus
		}
	}

	if avg, ok := recentAverageRating(wine.ID, history); ok {
		score += (avg - neutralRatingPivot) * ratingPointWeight
	}

	return clamp01(score)
}

// regionMatches reports whether the wine's region appears in the
// preferred set, case-insensitively. A preferred "Bordeaux" matches
// "Saint-Julien, Bordeaux".
func regionMatches(region string, preferred []string) bool {
	if region == "" {
		return false
	}
	lower := strings.ToLower(region)
	for _, p := range preferred {
		if p == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// varietalMatches reports whether any wine varietal intersects the
// preferred set.
func varietalMatches(varietals, preferred []string) bool {
	for _, v := range varietals {
		for _, p := range preferred {
			if strings.EqualFold(v, p) {
				return true
			}
		}
	}
	return false
}

// recentAverageRating averages the user's ratings over the most recent
// consumption records of this wine, capped at maxRecentRatings. The
// second return is false when no records exist for the wine.
func recentAverageRating(wineID string, history []*models.ConsumptionRecord) (float64, bool) {
	var records []*models.ConsumptionRecord
	for _, rec := range history {
		if rec.WineID == wineID {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return 0, false
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ConsumedAt.After(records[j].ConsumedAt)
	})
	if len(records) > maxRecentRatings {
		records = records[:maxRecentRatings]
	}

	var sum float64
	for _, rec := range records {
		sum += rec.Rating
	}
	return sum / float64(len(records)), true
}

// clamp01 bounds v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ Scorer = (*PreferenceScorer)(nil)
