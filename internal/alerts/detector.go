// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package alerts

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

// AlertKind identifies an alert condition.
type AlertKind string

const (
	KindEnteringPeak AlertKind = "entering_peak"
	KindLeavingPeak  AlertKind = "leaving_peak"
	KindOverHill     AlertKind = "over_hill"
)

// Config holds detector look-ahead horizons.
type Config struct {
	// EnteringPeakDays is the look-ahead for peak-start alerts.
	EnteringPeakDays int `koanf:"entering_peak_days"`

	// LeavingPeakDays is the look-ahead for peak-end alerts.
	LeavingPeakDays int `koanf:"leaving_peak_days"`
}

// DefaultConfig returns the standard alert horizons.
func DefaultConfig() Config {
	return Config{
		EnteringPeakDays: 7,
		LeavingPeakDays:  30,
	}
}

// WineAlert is one alert condition on one wine.
type WineAlert struct {
	Wine      *models.Wine `json:"wine"`
	Kind      AlertKind    `json:"kind"`
	DaysUntil int          `json:"days_until"`
	Message   string       `json:"message"`
}

// Report is the result of one detector scan. The three lists are not
// mutually exclusive: each condition is evaluated independently, so a
// wine whose peak ends within the horizon and whose latest date has
// passed appears in both LeavingPeak and OverHill. OverHill is the
// authoritative signal for consumers that must pick one.
type Report struct {
	UserID      string    `json:"user_id"`
	GeneratedAt time.Time `json:"generated_at"`

	EnteringPeak []WineAlert `json:"entering_peak"`
	LeavingPeak  []WineAlert `json:"leaving_peak"`
	OverHill     []WineAlert `json:"over_hill"`
}

// Total returns the number of alerts across all lists.
func (r *Report) Total() int {
	return len(r.EnteringPeak) + len(r.LeavingPeak) + len(r.OverHill)
}

// Empty reports whether the scan found nothing.
func (r *Report) Empty() bool {
	return r.Total() == 0
}

// Detector scans wine snapshots for alert conditions. Stateless and
// safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector. Zero horizons fall back to defaults.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.EnteringPeakDays <= 0 {
		cfg.EnteringPeakDays = def.EnteringPeakDays
	}
	if cfg.LeavingPeakDays <= 0 {
		cfg.LeavingPeakDays = def.LeavingPeakDays
	}
	return &Detector{cfg: cfg}
}

// Scan evaluates every wine against the three alert conditions as
// observed at now. Wines without a computed window are skipped.
func (d *Detector) Scan(userID string, wines []*models.Wine, now time.Time) Report {
	report := Report{UserID: userID, GeneratedAt: now}

	enteringHorizon := now.AddDate(0, 0, d.cfg.EnteringPeakDays)
	leavingHorizon := now.AddDate(0, 0, d.cfg.LeavingPeakDays)

	for _, wine := range wines {
		w := wine.Window
		if w == nil {
			continue
		}

		// Peak start strictly in the future, within the horizon.
		if w.PeakStartDate.After(now) && !w.PeakStartDate.After(enteringHorizon) {
			days := wholeDays(now, w.PeakStartDate)
			report.EnteringPeak = append(report.EnteringPeak, WineAlert{
				Wine:      wine,
				Kind:      KindEnteringPeak,
				DaysUntil: days,
				Message:   fmt.Sprintf("%s enters its peak window in %d days", wineLabel(wine), days),
			})
		}

		// Peak end strictly in the future, within the horizon.
		if w.PeakEndDate.After(now) && !w.PeakEndDate.After(leavingHorizon) {
			days := wholeDays(now, w.PeakEndDate)
			report.LeavingPeak = append(report.LeavingPeak, WineAlert{
				Wine:      wine,
				Kind:      KindLeavingPeak,
				DaysUntil: days,
				Message:   fmt.Sprintf("%s leaves its peak window in %d days", wineLabel(wine), days),
			})
		}

		// Past the latest recommended date, no look-back bound.
		if w.LatestDate.Before(now) {
			report.OverHill = append(report.OverHill, WineAlert{
				Wine:    wine,
				Kind:    KindOverHill,
				Message: fmt.Sprintf("%s is past its recommended drinking window", wineLabel(wine)),
			})
		}
	}

	return report
}

// wineLabel formats a wine for alert messages.
func wineLabel(w *models.Wine) string {
	if w.Vintage > 0 {
		return fmt.Sprintf("%d %s", w.Vintage, w.Name)
	}
	return w.Name
}

// wholeDays counts days from now to target, rounding partial days up
// so an intraday scan still charges the started day. Never negative.
func wholeDays(now, target time.Time) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
