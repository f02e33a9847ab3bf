// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

func TestBuildServingTemperatures(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		wineType  models.WineType
		wantTemp  int
		wantGlass string
	}{
		{models.WineTypeRed, 16, "Bordeaux glass"},
		{models.WineTypeWhite, 10, "white wine glass"},
		{models.WineTypeRose, 8, "white wine glass"},
		{models.WineTypeSparkling, 6, "flute"},
		{models.WineTypeDessert, 8, "dessert wine glass"},
		{models.WineTypeFortified, 16, "port glass"},
		{models.WineTypeOther, 12, "universal glass"},
	}

	for _, tt := range tests {
		t.Run(string(tt.wineType), func(t *testing.T) {
			wine := &models.Wine{Type: tt.wineType, Vintage: 2024}
			got := buildServing(wine, now)
			if got.TemperatureCelsius != tt.wantTemp {
				t.Errorf("temperature = %d, want %d", got.TemperatureCelsius, tt.wantTemp)
			}
			if got.Glassware != tt.wantGlass {
				t.Errorf("glassware = %q, want %q", got.Glassware, tt.wantGlass)
			}
		})
	}
}

func TestBuildServingDecanting(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		wine        *models.Wine
		wantMinutes int
	}{
		{
			name:        "old red gets the default",
			wine:        &models.Wine{Type: models.WineTypeRed, Vintage: 2015},
			wantMinutes: 60,
		},
		{
			name: "external hint overrides the default",
			wine: &models.Wine{
				Type:     models.WineTypeRed,
				Vintage:  2010,
				External: &models.ExternalWineData{DecantingMinutes: 90},
			},
			wantMinutes: 90,
		},
		{
			name:        "young red skips decanting",
			wine:        &models.Wine{Type: models.WineTypeRed, Vintage: 2024},
			wantMinutes: 0,
		},
		{
			name:        "old white skips decanting",
			wine:        &models.Wine{Type: models.WineTypeWhite, Vintage: 2010},
			wantMinutes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildServing(tt.wine, now)
			if got.DecantMinutes != tt.wantMinutes {
				t.Errorf("DecantMinutes = %d, want %d", got.DecantMinutes, tt.wantMinutes)
			}
			if tt.wantMinutes > 0 && got.DecantAdvice == "" {
				t.Error("decanting advice missing")
			}
			if tt.wantMinutes == 0 && got.DecantAdvice != "" {
				t.Errorf("unexpected decanting advice %q", got.DecantAdvice)
			}
		})
	}
}

func TestBuildWindowAlert(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	peakEndingSoon := &models.DrinkingWindow{
		EarliestDate:  now.AddDate(-3, 0, 0),
		PeakStartDate: now.AddDate(-1, 0, 0),
		PeakEndDate:   now.AddDate(0, 0, 10),
		LatestDate:    now.AddDate(2, 0, 0),
	}
	peakComfortable := &models.DrinkingWindow{
		EarliestDate:  now.AddDate(-3, 0, 0),
		PeakStartDate: now.AddDate(-1, 0, 0),
		PeakEndDate:   now.AddDate(1, 0, 0),
		LatestDate:    now.AddDate(3, 0, 0),
	}
	declining := &models.DrinkingWindow{
		EarliestDate:  now.AddDate(-6, 0, 0),
		PeakStartDate: now.AddDate(-5, 0, 0),
		PeakEndDate:   now.AddDate(-1, 0, 0),
		LatestDate:    now.AddDate(1, 0, 0),
	}

	tests := []struct {
		name       string
		window     *models.DrinkingWindow
		wantNote   bool
		wantStatus models.WindowStatus
	}{
		{name: "peak ending within horizon", window: peakEndingSoon, wantNote: true, wantStatus: models.StatusPeak},
		{name: "peak with time to spare", window: peakComfortable, wantNote: false},
		{name: "declining always noted", window: declining, wantNote: true, wantStatus: models.StatusDeclining},
		{name: "no window no note", window: nil, wantNote: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wine := &models.Wine{Type: models.WineTypeRed, Vintage: 2018, Window: tt.window}
			note := buildWindowAlert(wine, now)
			if (note != nil) != tt.wantNote {
				t.Fatalf("note = %+v, wantNote = %v", note, tt.wantNote)
			}
			if note != nil && note.Status != tt.wantStatus {
				t.Errorf("note.Status = %s, want %s", note.Status, tt.wantStatus)
			}
		})
	}
}
