// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package api provides the HTTP surface: wine inventory CRUD, taste
// profiles, consumption history, recommendations, drinking-window
// alerts, and operational endpoints. Routing uses chi; responses use
// a uniform JSON envelope.
package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vinarium/internal/alerts"
	"github.com/tomtom215/vinarium/internal/recommend"
	"github.com/tomtom215/vinarium/internal/storage"
	"github.com/tomtom215/vinarium/internal/window"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// WindowRefresher triggers a full drinking-window sweep. Satisfied by
// the alert sweeper.
type WindowRefresher interface {
	Sweep(ctx context.Context) error
}

// Handler carries the dependencies shared by all endpoint methods.
//
// Handler methods are split across files:
//   - handlers_wines.go: inventory CRUD, profiles, consumption
//   - handlers_recommend.go: recommendation generation
//   - handlers_alerts.go: alert reports and window refresh
//   - handlers_health.go: liveness
type Handler struct {
	store     *storage.Store
	engine    *recommend.Engine
	calc      *window.Calculator
	detector  *alerts.Detector
	refresher WindowRefresher
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler assembles the API handler. refresher may be nil; the
// refresh endpoint then answers 503.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(store *storage.Store, engine *recommend.Engine, calc *window.Calculator, detector *alerts.Detector, refresher WindowRefresher, logger zerolog.Logger) *Handler {
	if calc == nil {
		calc = window.NewCalculator(nil)
	}
	if detector == nil {
		detector = alerts.NewDetector(alerts.DefaultConfig())
	}
	return &Handler{
		store:     store,
		engine:    engine,
		calc:      calc,
		detector:  detector,
		refresher: refresher,
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}
