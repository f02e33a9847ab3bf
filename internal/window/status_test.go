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

// testWindow is a 2018 red with aging potential 8:
// drinkable 2020, peak 2020 through 2023, latest 2026.
func testWindow() *models.DrinkingWindow {
	return &models.DrinkingWindow{
		EarliestDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		PeakStartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		PeakEndDate:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		LatestDate:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestStatusOf(t *testing.T) {
	w := testWindow()

	tests := []struct {
		name string
		now  time.Time
		want models.WindowStatus
	}{
		{name: "before earliest", now: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), want: models.StatusTooYoung},
		{name: "day before earliest", now: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), want: models.StatusTooYoung},
		{name: "on earliest", now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), want: models.StatusReady},
		{name: "between earliest and peak", now: time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC), want: models.StatusReady},
		{name: "on peak start", now: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), want: models.StatusPeak},
		{name: "mid peak", now: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), want: models.StatusPeak},
		{name: "on peak end still peak", now: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), want: models.StatusPeak},
		{name: "after peak end", now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: models.StatusDeclining},
		{name: "on latest still declining", now: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), want: models.StatusDeclining},
		{name: "after latest", now: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), want: models.StatusOverHill},
		{name: "years past latest", now: time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC), want: models.StatusOverHill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(w, tt.now); got != tt.want {
				t.Errorf("StatusOf(%s) = %q, want %q", tt.now.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestUrgencyScore(t *testing.T) {
	w := testWindow()

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{name: "too young", now: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), want: 10},
		{name: "ready", now: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), want: 40},
		{name: "peak far from end", now: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), want: 50},
		// 10 days to peak end: 90 - 10
		{name: "peak ending soon", now: time.Date(2023, 12, 21, 0, 0, 0, 0, time.UTC), want: 80},
		// last day of peak: 90 - 0
		{name: "peak last day", now: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), want: 90},
		// 12h before peak end: the partial day still counts, 90 - 1
		{name: "peak intraday before end", now: time.Date(2023, 12, 30, 12, 0, 0, 0, time.UTC), want: 89},
		// 100 days to latest: 70 - 10
		{name: "declining near latest", now: time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC), want: 60},
		// 50 days to latest: 70 - 5
		{name: "declining closer", now: time.Date(2026, 11, 11, 0, 0, 0, 0, time.UTC), want: 65},
		// 49.5 days to latest rounds up to 50: 70 - 5
		{name: "declining intraday", now: time.Date(2026, 11, 11, 12, 0, 0, 0, time.UTC), want: 65},
		// 1000 days out the decay would go below 60; floor holds
		{name: "declining floor", now: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), want: 60},
		{name: "over hill", now: time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UrgencyScore(w, tt.now); got != tt.want {
				t.Errorf("UrgencyScore(%s) = %v, want %v", tt.now.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestUrgencyScoreMonotonicAcrossStages(t *testing.T) {
	w := testWindow()

	// Sampling one instant per stage: urgency must rank over_hill above
	// declining above ready above too_young.
	tooYoung := UrgencyScore(w, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC))
	ready := UrgencyScore(w, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	declining := UrgencyScore(w, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	overHill := UrgencyScore(w, time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC))

	if !(tooYoung < ready && ready < declining && declining < overHill) {
		t.Errorf("urgency ordering broken: too_young=%v ready=%v declining=%v over_hill=%v",
			tooYoung, ready, declining, overHill)
	}
}

func TestNextTransition(t *testing.T) {
	w := testWindow()

	tests := []struct {
		name       string
		now        time.Time
		wantStatus models.WindowStatus
		wantDays   int
	}{
		{
			name:       "too young to ready",
			now:        time.Date(2019, 12, 22, 0, 0, 0, 0, time.UTC),
			wantStatus: models.StatusReady,
			wantDays:   10,
		},
		{
			name:       "ready to peak",
			now:        time.Date(2020, 12, 2, 0, 0, 0, 0, time.UTC),
			wantStatus: models.StatusPeak,
			wantDays:   30,
		},
		{
			name:       "peak to declining",
			now:        time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			wantStatus: models.StatusDeclining,
			wantDays:   30,
		},
		{
			name:       "declining to over hill",
			now:        time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC),
			wantStatus: models.StatusOverHill,
			wantDays:   10,
		},
		{
			// 9.5 days out rounds up: the started day counts.
			name:       "peak to declining intraday",
			now:        time.Date(2023, 12, 21, 12, 0, 0, 0, time.UTC),
			wantStatus: models.StatusDeclining,
			wantDays:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTransition(w, tt.now)
			if got.NextStatus != tt.wantStatus {
				t.Errorf("NextStatus = %q, want %q", got.NextStatus, tt.wantStatus)
			}
			if got.DaysUntil != tt.wantDays {
				t.Errorf("DaysUntil = %d, want %d", got.DaysUntil, tt.wantDays)
			}
		})
	}

	t.Run("over hill has no transition", func(t *testing.T) {
		got := NextTransition(w, time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC))
		if got.NextStatus != "" {
			t.Errorf("NextStatus = %q, want empty", got.NextStatus)
		}
		if got.DaysUntil != 0 {
			t.Errorf("DaysUntil = %d, want 0", got.DaysUntil)
		}
		if got.Description != "Past optimal drinking window" {
			t.Errorf("Description = %q", got.Description)
		}
	})
}
