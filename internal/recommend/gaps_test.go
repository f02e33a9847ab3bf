// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"testing"

	"github.com/tomtom215/vinarium/internal/models"
)

func smallCatalog() ReferenceCatalog {
	return ReferenceCatalog{
		Regions:   []string{"Bordeaux", "Burgundy"},
		Varietals: []string{"Merlot", "Chardonnay"},
		Types:     []models.WineType{models.WineTypeRed, models.WineTypeWhite, models.WineTypeSparkling},
	}
}

func TestGapAnalyzerAnalyze(t *testing.T) {
	analyzer := NewGapAnalyzer(smallCatalog())

	inventory := []*models.Wine{
		{
			ID:        "w1",
			Type:      models.WineTypeRed,
			Region:    "Bordeaux",
			Varietals: []string{"Merlot"},
		},
	}

	report := analyzer.Analyze(inventory, nil)

	if len(report.MissingRegions) != 1 || report.MissingRegions[0] != "Burgundy" {
		t.Errorf("MissingRegions = %v, want [Burgundy]", report.MissingRegions)
	}
	if len(report.MissingVarietals) != 1 || report.MissingVarietals[0] != "Chardonnay" {
		t.Errorf("MissingVarietals = %v, want [Chardonnay]", report.MissingVarietals)
	}
	// Red is held; white and sparkling are not.
	if len(report.UnderrepresentedTypes) != 2 {
		t.Errorf("UnderrepresentedTypes = %v, want white and sparkling", report.UnderrepresentedTypes)
	}
}

func TestGapAnalyzerSubRegionCoversCatalogRegion(t *testing.T) {
	analyzer := NewGapAnalyzer(smallCatalog())

	inventory := []*models.Wine{
		{ID: "w1", Type: models.WineTypeRed, Region: "Saint-Julien, Bordeaux"},
	}

	report := analyzer.Analyze(inventory, nil)
	for _, region := range report.MissingRegions {
		if region == "Bordeaux" {
			t.Error("sub-region holding did not cover Bordeaux")
		}
	}
}

func TestGapAnalyzerHistoryCountsTowardCoverage(t *testing.T) {
	analyzer := NewGapAnalyzer(smallCatalog())

	// The Burgundy bottle is drained (quantity zero) but still in the
	// inventory snapshot; its consumption keeps Burgundy covered.
	inventory := []*models.Wine{
		{ID: "w1", Type: models.WineTypeRed, Region: "Bordeaux", Quantity: 1},
		{ID: "w2", Type: models.WineTypeWhite, Region: "Burgundy", Varietals: []string{"Chardonnay"}, Quantity: 0},
	}
	history := []*models.ConsumptionRecord{
		{WineID: "w2", Rating: 8},
	}

	report := analyzer.Analyze(inventory, history)

	if len(report.MissingRegions) != 0 {
		t.Errorf("MissingRegions = %v, want none", report.MissingRegions)
	}
	if len(report.MissingVarietals) != 1 || report.MissingVarietals[0] != "Merlot" {
		t.Errorf("MissingVarietals = %v, want [Merlot]", report.MissingVarietals)
	}
}

func TestGapAnalyzerEmptyCollection(t *testing.T) {
	analyzer := NewGapAnalyzer(smallCatalog())

	report := analyzer.Analyze(nil, nil)

	if report.Empty() {
		t.Error("empty collection should miss the whole catalog")
	}
	if len(report.MissingRegions) != 2 || len(report.MissingVarietals) != 2 || len(report.UnderrepresentedTypes) != 3 {
		t.Errorf("report = %+v, want everything missing", report)
	}
}

func TestGapAnalyzerFullCoverage(t *testing.T) {
	analyzer := NewGapAnalyzer(smallCatalog())

	inventory := []*models.Wine{
		{ID: "w1", Type: models.WineTypeRed, Region: "Bordeaux", Varietals: []string{"Merlot"}},
		{ID: "w2", Type: models.WineTypeWhite, Region: "Burgundy", Varietals: []string{"Chardonnay"}},
		{ID: "w3", Type: models.WineTypeSparkling, Region: "Champagne"},
	}

	report := analyzer.Analyze(inventory, nil)
	if !report.Empty() {
		t.Errorf("full coverage report = %+v, want empty", report)
	}
}

func TestPairedTypes(t *testing.T) {
	tests := []struct {
		name string
		food string
		want []models.WineType
	}{
		{name: "beef pairs red", food: "grilled beef", want: []models.WineType{models.WineTypeRed}},
		{name: "seafood pairs white and sparkling", food: "Seafood platter",
			want: []models.WineType{models.WineTypeWhite, models.WineTypeSparkling}},
		{name: "unmatched food imposes no filter", food: "mystery dish", want: nil},
		{name: "empty food imposes no filter", food: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pairedTypes(tt.food)
			if len(got) != len(tt.want) {
				t.Fatalf("pairedTypes(%q) = %v, want %v", tt.food, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pairedTypes(%q)[%d] = %v, want %v", tt.food, i, got[i], tt.want[i])
				}
			}
		})
	}
}
