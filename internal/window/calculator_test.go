// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package window

import (
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

func dateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}

func TestCalculatorCompute(t *testing.T) {
	calc := NewCalculator(NewResolver())
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		wine          *models.Wine
		wantEarliest  string
		wantPeakStart string
		wantPeakEnd   string
		wantLatest    string
	}{
		{
			name: "2018 red from generic region",
			wine: &models.Wine{
				Vintage: 2018,
				Type:    models.WineTypeRed,
				Region:  "Generic Region",
			},
			// aging potential 8: floor(8*0.3)=2, floor(8*0.7)=5
			wantEarliest:  "2020-01-01",
			wantPeakStart: "2020-01-01",
			wantPeakEnd:   "2023-12-31",
			wantLatest:    "2026-12-31",
		},
		{
			name: "2018 red from Bordeaux gets premium bump",
			wine: &models.Wine{
				Vintage: 2018,
				Type:    models.WineTypeRed,
				Region:  "Bordeaux",
			},
			// aging potential 11: floor(11*0.3)=3, floor(11*0.7)=7
			wantEarliest:  "2020-01-01",
			wantPeakStart: "2021-01-01",
			wantPeakEnd:   "2025-12-31",
			wantLatest:    "2029-12-31",
		},
		{
			name: "2022 white uses short minimums",
			wine: &models.Wine{
				Vintage: 2022,
				Type:    models.WineTypeWhite,
			},
			// aging potential 4: peak start floor 2, peak end floor 4
			wantEarliest:  "2023-01-01",
			wantPeakStart: "2024-01-01",
			wantPeakEnd:   "2026-12-31",
			wantLatest:    "2026-12-31",
		},
		{
			name: "2010 fortified long window",
			wine: &models.Wine{
				Vintage: 2010,
				Type:    models.WineTypeFortified,
			},
			// aging potential 20: floor(20*0.3)=6, floor(20*0.7)=14
			wantEarliest:  "2011-01-01",
			wantPeakStart: "2016-01-01",
			wantPeakEnd:   "2024-12-31",
			wantLatest:    "2030-12-31",
		},
		{
			name: "external aging potential drives window",
			wine: &models.Wine{
				Vintage:  2015,
				Type:     models.WineTypeRed,
				External: &models.ExternalWineData{AgingPotentialYears: 10},
			},
			// floor(10*0.3)=3, floor(10*0.7)=7
			wantEarliest:  "2017-01-01",
			wantPeakStart: "2018-01-01",
			wantPeakEnd:   "2022-12-31",
			wantLatest:    "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := calc.Compute(tt.wine, now)

			if got := dateOnly(w.EarliestDate); got != tt.wantEarliest {
				t.Errorf("EarliestDate = %s, want %s", got, tt.wantEarliest)
			}
			if got := dateOnly(w.PeakStartDate); got != tt.wantPeakStart {
				t.Errorf("PeakStartDate = %s, want %s", got, tt.wantPeakStart)
			}
			if got := dateOnly(w.PeakEndDate); got != tt.wantPeakEnd {
				t.Errorf("PeakEndDate = %s, want %s", got, tt.wantPeakEnd)
			}
			if got := dateOnly(w.LatestDate); got != tt.wantLatest {
				t.Errorf("LatestDate = %s, want %s", got, tt.wantLatest)
			}
			if err := w.Validate(); err != nil {
				t.Errorf("computed window violates ordering: %v", err)
			}
			if w.CurrentStatus == "" || !w.CurrentStatus.IsValid() {
				t.Errorf("CurrentStatus = %q, want a valid status", w.CurrentStatus)
			}
		})
	}
}

func TestCalculatorWindowAlwaysOrdered(t *testing.T) {
	calc := NewCalculator(NewResolver())
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// Sweep types and vintages; every window must satisfy the ordering
	// invariant regardless of how short the aging potential is.
	types := []models.WineType{
		models.WineTypeRed, models.WineTypeWhite, models.WineTypeRose,
		models.WineTypeSparkling, models.WineTypeDessert, models.WineTypeFortified,
		models.WineTypeOther,
	}
	for _, wineType := range types {
		for vintage := 1990; vintage <= 2026; vintage += 4 {
			w := calc.Compute(&models.Wine{Vintage: vintage, Type: wineType}, now)
			if err := w.Validate(); err != nil {
				t.Errorf("type %s vintage %d: %v", wineType, vintage, err)
			}
		}
	}
}

func TestCalculatorRefresh(t *testing.T) {
	calc := NewCalculator(NewResolver())

	wine := &models.Wine{Vintage: 2018, Type: models.WineTypeRed, Region: "Generic Region"}
	w := calc.Compute(wine, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC))

	if w.CurrentStatus != models.StatusTooYoung {
		t.Fatalf("status at 2019 = %q, want too_young", w.CurrentStatus)
	}

	// Moving forward in time changes the cached status once.
	if changed := calc.Refresh(&w, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)); !changed {
		t.Error("Refresh into peak reported no change")
	}
	if w.CurrentStatus != models.StatusPeak {
		t.Errorf("status after refresh = %q, want peak", w.CurrentStatus)
	}

	// Refreshing at the same instant is a no-op.
	if changed := calc.Refresh(&w, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)); changed {
		t.Error("idempotent Refresh reported a change")
	}
}
