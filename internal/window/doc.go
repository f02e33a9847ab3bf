// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package window implements the drinking-window lifecycle engine: the
// aging-potential resolver, the window calculator, and the status
// machine that classifies a wine's lifecycle stage and urgency.
//
// All computation here is pure. The calculator derives four dates from
// a wine's vintage and resolved aging potential; the status machine is
// a function of those dates and an observation time. Callers own
// persistence and refresh; stored statuses are caches.
package window
