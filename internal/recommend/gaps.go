// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"strings"

	"github.com/tomtom215/vinarium/internal/models"
)

// GapReport lists where a collection falls short of the reference
// catalog. It phrases purchase queries; it is never a ranking signal
// for owned bottles.
type GapReport struct {
	MissingRegions        []string          `json:"missing_regions"`
	MissingVarietals      []string          `json:"missing_varietals"`
	UnderrepresentedTypes []models.WineType `json:"underrepresented_types"`
}

// Empty reports whether the collection covers the whole catalog.
func (r *GapReport) Empty() bool {
	return len(r.MissingRegions) == 0 &&
		len(r.MissingVarietals) == 0 &&
		len(r.UnderrepresentedTypes) == 0
}

// GapAnalyzer compares a collection against a reference catalog.
type GapAnalyzer struct {
	catalog ReferenceCatalog
}

// NewGapAnalyzer creates an analyzer. An empty catalog falls back to
// the built-in default.
func NewGapAnalyzer(catalog ReferenceCatalog) *GapAnalyzer {
	if len(catalog.Regions) == 0 && len(catalog.Varietals) == 0 && len(catalog.Types) == 0 {
		catalog = DefaultCatalog()
	}
	return &GapAnalyzer{catalog: catalog}
}

// Analyze computes coverage over the union of current inventory and
// consumption history. Consumed wines count toward coverage even when
// no bottles remain, so a drained region does not read as unexplored;
// history entries resolve through the inventory snapshot by wine ID.
func (a *GapAnalyzer) Analyze(inventory []*models.Wine, history []*models.ConsumptionRecord) GapReport {
	covered := coverageSet(inventory, history)

	var report GapReport

	for _, region := range a.catalog.Regions {
		if !covered.hasRegion(normalize(region)) {
			report.MissingRegions = append(report.MissingRegions, region)
		}
	}
	for _, varietal := range a.catalog.Varietals {
		if !covered.varietals[normalize(varietal)] {
			report.MissingVarietals = append(report.MissingVarietals, varietal)
		}
	}
	for _, wineType := range a.catalog.Types {
		if covered.typeCounts[wineType] == 0 {
			report.UnderrepresentedTypes = append(report.UnderrepresentedTypes, wineType)
		}
	}

	return report
}

// coverage indexes what a collection touches.
type coverage struct {
	regions    map[string]bool
	varietals  map[string]bool
	typeCounts map[models.WineType]int
}

func coverageSet(inventory []*models.Wine, history []*models.ConsumptionRecord) coverage {
	c := coverage{
		regions:    make(map[string]bool),
		varietals:  make(map[string]bool),
		typeCounts: make(map[models.WineType]int),
	}

	byID := make(map[string]*models.Wine, len(inventory))
	for _, wine := range inventory {
		byID[wine.ID] = wine
		c.add(wine)
	}
	for _, rec := range history {
		if wine, ok := byID[rec.WineID]; ok {
			c.add(wine)
		}
	}

	return c
}

func (c *coverage) add(wine *models.Wine) {
	if wine.Region != "" {
		c.regions[normalize(wine.Region)] = true
	}
	for _, v := range wine.Varietals {
		c.varietals[normalize(v)] = true
	}
	c.typeCounts[wine.Type]++
}

// hasRegion reports whether any collected region covers the catalog
// region by substring: "Saint-Julien, Bordeaux" covers "Bordeaux".
func (c *coverage) hasRegion(catalogRegion string) bool {
	for region := range c.regions {
		if strings.Contains(region, catalogRegion) {
			return true
		}
	}
	return false
}

// normalize lowercases and trims a coverage key.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
