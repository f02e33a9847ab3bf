// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package recommend implements the recommendation scoring engine.
//
// The Engine is the single entry point. It composes the
// drinking-window urgency score with a swappable personalization
// Scorer, analyzes collection gaps for purchase advice, and applies
// situational filters for contextual requests. All scoring runs
// synchronously over the caller-provided snapshot; the engine holds no
// inventory state of its own.
package recommend
