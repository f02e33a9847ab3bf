// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package window

import "github.com/tomtom215/vinarium/internal/models"

// baseAgingYears is the fallback aging potential by wine type, in years.
var baseAgingYears = map[models.WineType]int{
	models.WineTypeRed:       8,
	models.WineTypeWhite:     4,
	models.WineTypeSparkling: 6,
	models.WineTypeDessert:   15,
	models.WineTypeFortified: 20,
	models.WineTypeOther:     5,
}

// minAgingYears is the minimum rest before a wine becomes drinkable,
// by type, in years from vintage.
var minAgingYears = map[models.WineType]int{
	models.WineTypeRed:       2,
	models.WineTypeWhite:     1,
	models.WineTypeSparkling: 2,
	models.WineTypeDessert:   3,
	models.WineTypeFortified: 1,
	models.WineTypeOther:     1,
}

// premiumRegions earn a +3 year bump on the type default. Matching is
// case-insensitive substring, so "Bordeaux Supérieur" and
// "Saint-Julien, Bordeaux" both qualify.
var premiumRegions = []string{
	"bordeaux",
	"burgundy",
	"bourgogne",
	"barolo",
	"barbaresco",
	"brunello",
	"napa",
	"rioja",
	"ribera del duero",
	"priorat",
	"champagne",
	"douro",
	"porto",
	"hermitage",
	"côte-rôtie",
	"chianti classico",
	"mosel",
	"sauternes",
}

// curatedEntry is one curated aging estimate with its own confidence.
type curatedEntry struct {
	years      int
	confidence float64
}

// curatedByProducerRegion keys on normalized "producer|region".
// Entries reflect well-documented producer track records.
var curatedByProducerRegion = map[string]curatedEntry{
	"château margaux|bordeaux":             {years: 30, confidence: 0.95},
	"château latour|bordeaux":              {years: 30, confidence: 0.95},
	"château d'yquem|sauternes":            {years: 40, confidence: 0.95},
	"domaine de la romanée-conti|burgundy": {years: 25, confidence: 0.95},
	"penfolds|barossa valley":              {years: 20, confidence: 0.9},
	"vega sicilia|ribera del duero":        {years: 25, confidence: 0.9},
	"giacomo conterno|barolo":              {years: 25, confidence: 0.9},
	"taylor's|douro":                       {years: 40, confidence: 0.9},
}

// curatedByRegionVarietal keys on normalized "region|varietal".
var curatedByRegionVarietal = map[string]curatedEntry{
	"bordeaux|cabernet sauvignon":       {years: 15, confidence: 0.85},
	"bordeaux|merlot":                   {years: 12, confidence: 0.8},
	"burgundy|pinot noir":               {years: 12, confidence: 0.85},
	"burgundy|chardonnay":               {years: 10, confidence: 0.8},
	"barolo|nebbiolo":                   {years: 20, confidence: 0.85},
	"brunello di montalcino|sangiovese": {years: 18, confidence: 0.85},
	"napa valley|cabernet sauvignon":    {years: 15, confidence: 0.8},
	"rioja|tempranillo":                 {years: 15, confidence: 0.8},
	"mosel|riesling":                    {years: 15, confidence: 0.8},
	"chablis|chardonnay":                {years: 8, confidence: 0.75},
	"champagne|chardonnay":              {years: 10, confidence: 0.75},
	"willamette valley|pinot noir":      {years: 8, confidence: 0.7},
}
