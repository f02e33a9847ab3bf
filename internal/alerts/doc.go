// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package alerts detects drinking-window alert conditions and fans the
// resulting reports out over an in-process Watermill bus.
//
// The Detector is a pure scan over a wine snapshot: wines entering
// their peak soon, wines leaving it soon, and wines already past their
// window. The Sweeper runs the scan periodically under suture
// supervision, refreshing cached statuses and writing changes back to
// the store. The delivery subpackage consumes published reports and
// forwards them to a webhook endpoint.
package alerts
