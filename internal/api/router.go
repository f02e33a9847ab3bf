// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the middleware knobs the router needs.
type RouterConfig struct {
	// CORSOrigins for browser clients. Empty disables CORS handling.
	CORSOrigins []string

	// RateLimitReqs per RateLimitWindow per client IP. Zero disables
	// rate limiting.
	RateLimitReqs   int
	RateLimitWindow time.Duration
}

// NewRouter wires all routes.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	r.Use(requestLogging)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitReqs > 0 {
			window := cfg.RateLimitWindow
			if window <= 0 {
				window = time.Minute
			}
			r.Use(httprate.LimitByIP(cfg.RateLimitReqs, window))
		}
		r.Use(prometheusMetrics)

		// Inventory
		r.Route("/wines", func(r chi.Router) {
			r.Get("/", handler.ListWines)
			r.Post("/", handler.CreateWine)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetWine)
				r.Put("/", handler.UpdateWine)
				r.Delete("/", handler.DeleteWine)
				r.Post("/consumption", handler.RecordConsumption)
			})
		})

		// Taste profile and history
		r.Get("/profile", handler.GetProfile)
		r.Put("/profile", handler.PutProfile)
		r.Get("/consumption", handler.ListConsumption)

		// Recommendation scoring engine
		r.Post("/recommendations", handler.Recommendations)

		// Drinking-window lifecycle
		r.Get("/alerts", handler.Alerts)
		r.Post("/windows/refresh", handler.RefreshWindows)
	})

	// Observability
	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
