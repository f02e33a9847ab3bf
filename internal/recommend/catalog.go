// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"strings"

	"github.com/tomtom215/vinarium/internal/models"
)

// ReferenceCatalog is the fixed universe the gap analyzer compares a
// collection against. It is deliberately small: classic regions and
// varietals a broad cellar would cover, not an exhaustive atlas.
type ReferenceCatalog struct {
	Regions   []string
	Varietals []string
	Types     []models.WineType
}

// DefaultCatalog returns the built-in reference catalog.
func DefaultCatalog() ReferenceCatalog {
	return ReferenceCatalog{
		Regions: []string{
			"Bordeaux",
			"Burgundy",
			"Champagne",
			"Rhône Valley",
			"Loire Valley",
			"Tuscany",
			"Piedmont",
			"Rioja",
			"Douro",
			"Mosel",
			"Napa Valley",
			"Willamette Valley",
			"Barossa Valley",
			"Marlborough",
			"Mendoza",
		},
		Varietals: []string{
			"Cabernet Sauvignon",
			"Merlot",
			"Pinot Noir",
			"Syrah",
			"Grenache",
			"Nebbiolo",
			"Sangiovese",
			"Tempranillo",
			"Malbec",
			"Chardonnay",
			"Sauvignon Blanc",
			"Riesling",
			"Chenin Blanc",
			"Gewürztraminer",
		},
		Types: []models.WineType{
			models.WineTypeRed,
			models.WineTypeWhite,
			models.WineTypeRose,
			models.WineTypeSparkling,
			models.WineTypeDessert,
			models.WineTypeFortified,
		},
	}
}

// pairingRule maps food keywords to the wine types that suit them.
type pairingRule struct {
	keywords []string
	types    []models.WineType
}

// pairingRules is the coarse food-pairing heuristic. Matching is
// case-insensitive substring over the free-text food description; a
// description matching no rule imposes no filter.
var pairingRules = []pairingRule{
	{
		keywords: []string{"beef", "steak", "lamb", "venison", "game"},
		types:    []models.WineType{models.WineTypeRed},
	},
	{
		keywords: []string{"cheese", "charcuterie"},
		types:    []models.WineType{models.WineTypeRed, models.WineTypeFortified},
	},
	{
		keywords: []string{"fish", "seafood", "oyster", "sushi", "shellfish"},
		types:    []models.WineType{models.WineTypeWhite, models.WineTypeSparkling},
	},
	{
		keywords: []string{"chicken", "poultry", "pork"},
		types:    []models.WineType{models.WineTypeWhite, models.WineTypeRose, models.WineTypeRed},
	},
	{
		keywords: []string{"dessert", "chocolate", "cake"},
		types:    []models.WineType{models.WineTypeDessert, models.WineTypeFortified},
	},
	{
		keywords: []string{"salad", "vegetable", "vegetarian"},
		types:    []models.WineType{models.WineTypeWhite, models.WineTypeRose},
	},
	{
		keywords: []string{"spicy", "curry", "thai"},
		types:    []models.WineType{models.WineTypeWhite, models.WineTypeRose, models.WineTypeSparkling},
	},
}

// pairedTypes returns the wine types suited to a food description, or
// nil when no rule matches (meaning: do not filter).
func pairedTypes(food string) []models.WineType {
	if food == "" {
		return nil
	}
	lower := strings.ToLower(food)

	var matched []models.WineType
	seen := make(map[models.WineType]bool)
	for _, rule := range pairingRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				for _, t := range rule.types {
					if !seen[t] {
						seen[t] = true
						matched = append(matched, t)
					}
				}
				break
			}
		}
	}
	return matched
}
