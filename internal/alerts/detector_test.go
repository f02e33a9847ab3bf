// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package alerts

import (
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

var detectorNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

// wineWithWindow builds a wine whose window is shifted relative to
// detectorNow by the given day offsets.
func wineWithWindow(name string, peakStartOffset, peakEndOffset, latestOffset int) *models.Wine {
	return &models.Wine{
		ID:      name,
		Name:    name,
		Vintage: 2018,
		Window: &models.DrinkingWindow{
			EarliestDate:  detectorNow.AddDate(-3, 0, 0),
			PeakStartDate: detectorNow.AddDate(0, 0, peakStartOffset),
			PeakEndDate:   detectorNow.AddDate(0, 0, peakEndOffset),
			LatestDate:    detectorNow.AddDate(0, 0, latestOffset),
		},
	}
}

func TestDetectorScan(t *testing.T) {
	detector := NewDetector(DefaultConfig())

	tests := []struct {
		name         string
		wine         *models.Wine
		wantEntering bool
		wantLeaving  bool
		wantOverHill bool
	}{
		{
			name:         "peak starts in 3 days",
			wine:         wineWithWindow("entering", 3, 400, 800),
			wantEntering: true,
		},
		{
			name: "peak starts in exactly 7 days is included",
			wine: wineWithWindow("boundary-entering", 7, 400, 800),
			wantEntering: true,
		},
		{
			name: "peak starts in 8 days is outside horizon",
			wine: wineWithWindow("outside-entering", 8, 400, 800),
		},
		{
			name: "peak started today is not entering",
			wine: wineWithWindow("already-peak", 0, 400, 800),
		},
		{
			name:        "peak ends in 20 days",
			wine:        wineWithWindow("leaving", -200, 20, 800),
			wantLeaving: true,
		},
		{
			name:        "peak ends in exactly 30 days is included",
			wine:        wineWithWindow("boundary-leaving", -200, 30, 800),
			wantLeaving: true,
		},
		{
			name: "peak ends in 31 days is outside horizon",
			wine: wineWithWindow("outside-leaving", -200, 31, 800),
		},
		{
			name:         "latest date passed",
			wine:         wineWithWindow("gone", -900, -600, -10),
			wantOverHill: true,
		},
		{
			name:         "latest passed years ago is unbounded",
			wine:         wineWithWindow("long-gone", -3000, -2500, -2000),
			wantOverHill: true,
		},
		{
			name: "latest is today is not over hill",
			wine: wineWithWindow("last-day", -900, -600, 0),
		},
		{
			name: "no window is skipped",
			wine: &models.Wine{ID: "raw", Name: "raw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := detector.Scan("user-1", []*models.Wine{tt.wine}, detectorNow)

			if got := len(report.EnteringPeak) > 0; got != tt.wantEntering {
				t.Errorf("entering = %v, want %v", got, tt.wantEntering)
			}
			if got := len(report.LeavingPeak) > 0; got != tt.wantLeaving {
				t.Errorf("leaving = %v, want %v", got, tt.wantLeaving)
			}
			if got := len(report.OverHill) > 0; got != tt.wantOverHill {
				t.Errorf("over hill = %v, want %v", got, tt.wantOverHill)
			}
		})
	}
}

func TestDetectorConditionsAreIndependent(t *testing.T) {
	detector := NewDetector(DefaultConfig())

	// Peak ends in 10 days while another wine is over the hill: a
	// single wine can also trip multiple conditions at once.
	short := wineWithWindow("short", 5, 20, 25)

	report := detector.Scan("user-1", []*models.Wine{short}, detectorNow)

	if len(report.EnteringPeak) != 1 {
		t.Errorf("entering = %d, want 1", len(report.EnteringPeak))
	}
	if len(report.LeavingPeak) != 1 {
		t.Errorf("leaving = %d, want 1", len(report.LeavingPeak))
	}
	if report.Total() != 2 {
		t.Errorf("Total() = %d, want 2", report.Total())
	}
}

func TestDetectorIntradayDayCounts(t *testing.T) {
	detector := NewDetector(DefaultConfig())

	// Scanning mid-day, a started day still counts: 2.5 days to peak
	// start reports 3, 19.5 days to peak end reports 20.
	wine := wineWithWindow("intraday", 3, 20, 800)
	report := detector.Scan("user-1", []*models.Wine{wine}, detectorNow.Add(12*time.Hour))

	if len(report.EnteringPeak) != 1 {
		t.Fatalf("entering = %d, want 1", len(report.EnteringPeak))
	}
	if got := report.EnteringPeak[0].DaysUntil; got != 3 {
		t.Errorf("entering DaysUntil = %d, want 3", got)
	}
	if len(report.LeavingPeak) != 1 {
		t.Fatalf("leaving = %d, want 1", len(report.LeavingPeak))
	}
	if got := report.LeavingPeak[0].DaysUntil; got != 20 {
		t.Errorf("leaving DaysUntil = %d, want 20", got)
	}
}

func TestDetectorCustomHorizons(t *testing.T) {
	detector := NewDetector(Config{EnteringPeakDays: 14, LeavingPeakDays: 60})

	wine := wineWithWindow("wide", 10, 45, 800)
	report := detector.Scan("user-1", []*models.Wine{wine}, detectorNow)

	if len(report.EnteringPeak) != 1 {
		t.Errorf("entering with 14-day horizon = %d, want 1", len(report.EnteringPeak))
	}
	if len(report.LeavingPeak) != 1 {
		t.Errorf("leaving with 60-day horizon = %d, want 1", len(report.LeavingPeak))
	}
}

func TestReportEmpty(t *testing.T) {
	r := Report{}
	if !r.Empty() {
		t.Error("zero report should be empty")
	}
	r.OverHill = append(r.OverHill, WineAlert{})
	if r.Empty() {
		t.Error("report with an alert should not be empty")
	}
}
