// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package models defines the domain records shared across Vinarium:
// cellar wines and their drinking windows, taste profiles, consumption
// history, and recommendation payloads.
//
// Types here are data carriers with small helper methods only. Window
// computation lives in internal/window and scoring in internal/recommend.
package models
