// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package window

import (
	"math"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

// Urgency scale anchors, [0,100].
const (
	urgencyOverHill     = 100.0
	urgencyPeakBase     = 50.0
	urgencyReady        = 40.0
	urgencyTooYoung     = 10.0
	urgencyDeclineFloor = 60.0

	// peakEndingSoonDays is the tail of the peak where urgency ramps
	// from 60 up toward 90.
	peakEndingSoonDays = 30
)

// StatusOf classifies a wine's lifecycle stage at the observation
// time. Pure function of the window dates and now; boundary days
// belong to the more advanced stage on the start side (peakStart is
// peak) and to the earlier stage on the end side (peakEnd is still
// peak, latest is still declining).
func StatusOf(w *models.DrinkingWindow, now time.Time) models.WindowStatus {
	switch {
	case now.Before(w.EarliestDate):
		return models.StatusTooYoung
	case now.Before(w.PeakStartDate):
		return models.StatusReady
	case !now.After(w.PeakEndDate):
		return models.StatusPeak
	case !now.After(w.LatestDate):
		return models.StatusDeclining
	default:
		return models.StatusOverHill
	}
}

// UrgencyScore maps a window and observation time to [0,100].
//
// over_hill pins to 100. Peak wines sit at 50 until the final 30 days,
// where the score ramps as 90 - daysUntilPeakEnd. Declining wines decay
// from 70 toward a floor of 60 as the latest date approaches. Ready is
// a flat 40 and too_young a flat 10.
func UrgencyScore(w *models.DrinkingWindow, now time.Time) float64 {
	switch StatusOf(w, now) {
	case models.StatusOverHill:
		return urgencyOverHill
	case models.StatusPeak:
		days := daysUntil(now, w.PeakEndDate)
		if days <= peakEndingSoonDays {
			return 90.0 - float64(days)
		}
		return urgencyPeakBase
	case models.StatusDeclining:
		days := daysUntil(now, w.LatestDate)
		score := 70.0 - float64(days)/10.0
		if score < urgencyDeclineFloor {
			return urgencyDeclineFloor
		}
		return score
	case models.StatusReady:
		return urgencyReady
	default:
		return urgencyTooYoung
	}
}

// Transition describes the next lifecycle stage change.
type Transition struct {
	// NextStatus is empty when no further transition exists (over_hill).
	NextStatus models.WindowStatus `json:"next_status,omitempty"`

	// DaysUntil is days from the observation time to the transition.
	DaysUntil int `json:"days_until"`

	Description string `json:"description"`
}

// NextTransition reports the next stage change for a wine. Over-hill
// wines have none.
func NextTransition(w *models.DrinkingWindow, now time.Time) Transition {
	switch StatusOf(w, now) {
	case models.StatusTooYoung:
		return Transition{
			NextStatus:  models.StatusReady,
			DaysUntil:   daysUntil(now, w.EarliestDate),
			Description: "Becomes drinkable",
		}
	case models.StatusReady:
		return Transition{
			NextStatus:  models.StatusPeak,
			DaysUntil:   daysUntil(now, w.PeakStartDate),
			Description: "Enters peak window",
		}
	case models.StatusPeak:
		return Transition{
			NextStatus:  models.StatusDeclining,
			DaysUntil:   daysUntil(now, w.PeakEndDate),
			Description: "Leaves peak window",
		}
	case models.StatusDeclining:
		return Transition{
			NextStatus:  models.StatusOverHill,
			DaysUntil:   daysUntil(now, w.LatestDate),
			Description: "Passes recommended drinking window",
		}
	default:
		return Transition{
			DaysUntil:   0,
			Description: "Past optimal drinking window",
		}
	}
}

// daysUntil counts days from now to target, rounding partial days up
// so an intraday observation still charges the started day. Never
// negative.
func daysUntil(now, target time.Time) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
