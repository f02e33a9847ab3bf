// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package logging provides centralized zerolog-based structured logging.
//
// The package wraps a single global zerolog logger configured once at
// startup. JSON output is the production default; console output is
// available for development.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("wine_id", id).Msg("window recomputed")
//	logging.Error().Err(err).Msg("sweep failed")
//
// Component loggers carry default fields:
//
//	sweepLogger := logging.With().Str("component", "alerts").Logger()
//
// An slog adapter is provided for libraries that require *slog.Logger
// (the suture supervisor's sutureslog event hook):
//
//	slogger := logging.NewSlogLogger()
//
// All exported functions are safe for concurrent use.
package logging
