// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
	"github.com/tomtom215/vinarium/internal/window"
)

// decantAgeThresholdYears: reds at or past this age get decanting advice.
const decantAgeThresholdYears = 8

// defaultDecantMinutes applies when external data carries no hint.
const defaultDecantMinutes = 60

// windowAlertHorizonDays bounds the "drink soon" note for peak wines.
const windowAlertHorizonDays = 30

// servingTemps and glassware by wine type.
var servingTemps = map[models.WineType]int{
	models.WineTypeRed:       16,
	models.WineTypeWhite:     10,
	models.WineTypeRose:      8,
	models.WineTypeSparkling: 6,
	models.WineTypeDessert:   8,
	models.WineTypeFortified: 16,
	models.WineTypeOther:     12,
}

var glassware = map[models.WineType]string{
	models.WineTypeRed:       "Bordeaux glass",
	models.WineTypeWhite:     "white wine glass",
	models.WineTypeRose:      "white wine glass",
	models.WineTypeSparkling: "flute",
	models.WineTypeDessert:   "dessert wine glass",
	models.WineTypeFortified: "port glass",
	models.WineTypeOther:     "universal glass",
}

// buildServing assembles serving guidance for a wine at now.
func buildServing(wine *models.Wine, now time.Time) *models.ServingGuidance {
	wineType := wine.Type
	if _, ok := servingTemps[wineType]; !ok {
		wineType = models.WineTypeOther
	}

	guidance := &models.ServingGuidance{
		TemperatureCelsius: servingTemps[wineType],
		Glassware:          glassware[wineType],
	}

	if wine.Type == models.WineTypeRed && wine.AgeYearsAt(now) >= decantAgeThresholdYears {
		minutes := defaultDecantMinutes
		if wine.External != nil && wine.External.DecantingMinutes > 0 {
			minutes = wine.External.DecantingMinutes
		}
		guidance.DecantMinutes = minutes
		guidance.DecantAdvice = fmt.Sprintf("Decant for %d minutes; older reds throw sediment", minutes)
	}

	return guidance
}

// buildWindowAlert attaches a time-pressure note for wines near the
// end of their peak or already declining. Nil for everything else.
func buildWindowAlert(wine *models.Wine, now time.Time) *models.WindowAlertNote {
	w := wine.Window
	if w == nil {
		return nil
	}

	switch window.StatusOf(w, now) {
	case models.StatusPeak:
		transition := window.NextTransition(w, now)
		if transition.DaysUntil > windowAlertHorizonDays {
			return nil
		}
		return &models.WindowAlertNote{
			Status:        models.StatusPeak,
			DaysRemaining: transition.DaysUntil,
			Message:       fmt.Sprintf("At peak, but only %d days remain in the optimal window", transition.DaysUntil),
		}
	case models.StatusDeclining:
		transition := window.NextTransition(w, now)
		return &models.WindowAlertNote{
			Status:        models.StatusDeclining,
			DaysRemaining: transition.DaysUntil,
			Message: fmt.Sprintf("Past peak and declining; drink by %s",
				w.LatestDate.Format("January 2006")),
		}
	default:
		return nil
	}
}
