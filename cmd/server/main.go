// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package main is the entry point for the Vinarium server application.
//
// Vinarium is a self-hosted wine cellar analytics platform. It tracks a
// collection's drinking windows (when each bottle should be opened),
// raises alerts as wines enter or leave their peak, and generates
// personalized drink-tonight and purchase recommendations.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered settings (defaults, YAML, env)
//  2. Storage: embedded BadgerDB key-value store
//  3. Window calculator: aging estimates and drinking-window dates
//  4. Alert pipeline: detector, Watermill bus, sweeper, webhook delivery
//  5. Recommendation engine: urgency plus preference scoring
//  6. HTTP server: chi REST API with Prometheus metrics
//
// All long-lived services run under a suture supervisor tree with
// data, alerts, and api layers for failure isolation.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (VINARIUM_ prefix, e.g. VINARIUM_SERVER_PORT)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Common settings:
//   - DATA_DIR: BadgerDB directory (default /data/vinarium)
//   - HTTP_PORT: listener port (default 8790)
//   - WEBHOOK_URL: alert delivery endpoint (optional)
//   - VINARIUM_REASONING_BASE_URL: external suggestion service (optional)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Stops the sweeper and alert delivery, then closes the database
//
// # Example Usage
//
// Local development with an in-memory store:
//
//	export VINARIUM_DATABASE_DIR=""
//	export LOG_FORMAT=console
//	./vinarium
//
// Production with webhook alerts:
//
//	export DATA_DIR=/data/vinarium
//	export WEBHOOK_URL=https://hooks.example.com/cellar
//	./vinarium
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/vinarium/internal/alerts"
	"github.com/tomtom215/vinarium/internal/alerts/delivery"
	"github.com/tomtom215/vinarium/internal/api"
	"github.com/tomtom215/vinarium/internal/config"
	"github.com/tomtom215/vinarium/internal/logging"
	"github.com/tomtom215/vinarium/internal/reasoning"
	"github.com/tomtom215/vinarium/internal/recommend"
	"github.com/tomtom215/vinarium/internal/storage"
	"github.com/tomtom215/vinarium/internal/supervisor"
	"github.com/tomtom215/vinarium/internal/supervisor/services"
	"github.com/tomtom215/vinarium/internal/window"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("data_dir", cfg.Database.Dir).
		Int("port", cfg.Server.Port).
		Bool("webhook_enabled", cfg.Alerts.Webhook.Enabled).
		Msg("Starting Vinarium")

	logger := logging.Logger()

	store, err := storage.Open(cfg.Database, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database opened")

	// Window math and alert detection are shared by the API handlers
	// and the sweeper.
	calc := window.NewCalculator(window.NewResolver())
	detector := alerts.NewDetector(cfg.Alerts.Detector)

	// In-process Watermill bus carries alert reports from the sweeper
	// to the delivery consumer.
	bus := alerts.NewBus(alerts.NewWatermillLogger(logger))
	publisher := alerts.NewPublisher(bus)
	defer func() {
		publisher.Close()
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing alert bus")
		}
	}()

	sweeper := alerts.NewSweeper(store, calc, detector, publisher, cfg.Alerts.Sweeper, logger)

	// The external reasoning service is optional; without it the
	// engine falls back to catalog-based purchase suggestions.
	var reasoner recommend.Reasoner
	if cfg.Reasoning.BaseURL != "" {
		reasoner = reasoning.NewClient(cfg.Reasoning, logger)
		logging.Info().Str("base_url", cfg.Reasoning.BaseURL).Msg("Reasoning service enabled")
	} else {
		logging.Info().Msg("Reasoning service not configured - using catalog suggestions")
	}

	engine, err := recommend.NewEngine(
		cfg.Recommend,
		calc,
		recommend.NewPreferenceScorer(),
		recommend.NewGapAnalyzer(recommend.ReferenceCatalog{}),
		reasoner,
		logger,
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(store, engine, calc, detector, sweeper, logger)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSOrigins:     cfg.Server.CORSOrigins,
		RateLimitReqs:   cfg.Server.RateLimitReqs,
		RateLimitWindow: cfg.Server.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer: Badger value-log GC
	tree.AddDataService(services.NewBadgerGCService(store.DB(), time.Hour, 0.5, logger))

	// Alerts layer: scheduled sweep plus webhook delivery
	tree.AddAlertService(sweeper)
	notifier := delivery.NewWebhookNotifier(cfg.Alerts.Webhook)
	if notifier.Enabled() {
		tree.AddAlertService(delivery.NewConsumer(bus, notifier, logger))
		logging.Info().Str("url", cfg.Alerts.Webhook.WebhookURL).Msg("Webhook delivery enabled")
	} else {
		logging.Info().Msg("Webhook delivery disabled")
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
