// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package services contains suture.Service wrappers for components
// that don't implement the interface themselves: the HTTP server and
// Badger value-log garbage collection.
package services
