// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package supervisor builds the suture supervision tree that runs
// Vinarium's long-lived services.
//
// The tree has three child layers under the root:
//   - data: storage maintenance (Badger value-log GC)
//   - alerts: the drinking-window sweeper and the alert delivery consumer
//   - api: the HTTP server
//
// Layering isolates failures: a crashing delivery consumer is restarted
// inside the alerts layer without disturbing the HTTP server.
package supervisor
