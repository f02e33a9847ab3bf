// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func redWine(id string) *models.Wine {
	return &models.Wine{
		ID:        id,
		Name:      "Test Red",
		Type:      models.WineTypeRed,
		Region:    "Rioja",
		Varietals: []string{"Tempranillo"},
	}
}

func profileWith(regions, varietals []string) *models.TasteProfile {
	return &models.TasteProfile{
		Red: models.TypePreferences{
			PreferredRegions:   regions,
			PreferredVarietals: varietals,
		},
	}
}

func records(wineID string, ratings ...float64) []*models.ConsumptionRecord {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*models.ConsumptionRecord, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, &models.ConsumptionRecord{
			WineID:     wineID,
			Rating:     r,
			ConsumedAt: base.AddDate(0, 0, i), // later index = more recent
		})
	}
	return out
}

func TestPreferenceScorer(t *testing.T) {
	scorer := NewPreferenceScorer()

	tests := []struct {
		name    string
		wine    *models.Wine
		profile *models.TasteProfile
		history []*models.ConsumptionRecord
		want    float64
	}{
		{
			name: "no profile no history is neutral",
			wine: redWine("w1"),
			want: 0.5,
		},
		{
			name:    "region match",
			wine:    redWine("w1"),
			profile: profileWith([]string{"Rioja"}, nil),
			want:    0.7,
		},
		{
			name:    "region match is case-insensitive substring",
			wine:    &models.Wine{ID: "w1", Type: models.WineTypeRed, Region: "Rioja Alta"},
			profile: profileWith([]string{"rioja"}, nil),
			want:    0.7,
		},
		{
			name:    "varietal match",
			wine:    redWine("w1"),
			profile: profileWith(nil, []string{"tempranillo"}),
			want:    0.7,
		},
		{
			name:    "region and varietal match",
			wine:    redWine("w1"),
			profile: profileWith([]string{"Rioja"}, []string{"Tempranillo"}),
			want:    0.9,
		},
		{
			name:    "no match stays neutral",
			wine:    redWine("w1"),
			profile: profileWith([]string{"Burgundy"}, []string{"Pinot Noir"}),
			want:    0.5,
		},
		{
			name:    "high ratings raise score",
			wine:    redWine("w1"),
			history: records("w1", 8, 8, 8),
			want:    0.8, // 0.5 + (8-5)*0.1
		},
		{
			name:    "low ratings lower score",
			wine:    redWine("w1"),
			history: records("w1", 2, 2),
			want:    0.2, // 0.5 + (2-5)*0.1
		},
		{
			name:    "ratings of other wines are ignored",
			wine:    redWine("w1"),
			history: records("other", 10, 10, 10),
			want:    0.5,
		},
		{
			name: "only three most recent ratings count",
			wine: redWine("w1"),
			// Oldest two are 10s; the three most recent are 2s.
			history: records("w1", 10, 10, 2, 2, 2),
			want:    0.2,
		},
		{
			name:    "score clamps at 1",
			wine:    redWine("w1"),
			profile: profileWith([]string{"Rioja"}, []string{"Tempranillo"}),
			history: records("w1", 10, 10, 10),
			want:    1.0, // 0.5 + 0.2 + 0.2 + 0.5 clamped
		},
		{
			name:    "score clamps at 0",
			wine:    redWine("w1"),
			history: records("w1", 0, 0, 0),
			want:    0.0,
		},
		{
			name: "rosé uses white preference bundle",
			wine: &models.Wine{ID: "w2", Type: models.WineTypeRose, Region: "Provence"},
			profile: &models.TasteProfile{
				White: models.TypePreferences{PreferredRegions: []string{"Provence"}},
			},
			want: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.wine, tt.profile, tt.history)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}
