// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package config loads layered application configuration with Koanf v2:
// struct defaults, then an optional YAML file, then environment
// variables. Precedence: ENV > file > defaults.
package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/vinarium/internal/alerts"
	"github.com/tomtom215/vinarium/internal/alerts/delivery"
	"github.com/tomtom215/vinarium/internal/reasoning"
	"github.com/tomtom215/vinarium/internal/recommend"
	"github.com/tomtom215/vinarium/internal/storage"
)

// Config is the full application configuration tree.
type Config struct {
	Server    ServerConfig           `koanf:"server"`
	Database  storage.Config         `koanf:"database"`
	Logging   LoggingConfig          `koanf:"logging"`
	Recommend recommend.Config       `koanf:"recommend"`
	Reasoning reasoning.ClientConfig `koanf:"reasoning"`
	Alerts    AlertsConfig           `koanf:"alerts"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// Timeout bounds request read/write on the listener.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimitReqs per RateLimitWindow per client IP. Zero disables.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file:line in log events.
	Caller bool `koanf:"caller"`
}

// AlertsConfig groups the drinking-window alert pipeline settings.
type AlertsConfig struct {
	Detector alerts.Config          `koanf:"detector"`
	Sweeper  alerts.SweeperConfig   `koanf:"sweeper"`
	Webhook  delivery.WebhookConfig `koanf:"webhook"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8790,
			Timeout:         30 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Database: storage.Config{
			Dir: "/data/vinarium",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: recommend.DefaultConfig(),
		Reasoning: reasoning.DefaultClientConfig(),
		Alerts: AlertsConfig{
			Detector: alerts.DefaultConfig(),
			Sweeper: alerts.SweeperConfig{
				Interval:       24 * time.Hour,
				BatchSize:      100,
				SweepOnStartup: true,
			},
			Webhook: delivery.WebhookConfig{
				Enabled:     false,
				RateLimitMs: 500,
			},
		},
	}
}

// Validate checks the loaded configuration for contradictions the
// zero-value defaults cannot catch.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	if err := c.Recommend.Validate(); err != nil {
		return err
	}
	if c.Alerts.Detector.EnteringPeakDays < 0 || c.Alerts.Detector.LeavingPeakDays < 0 {
		return fmt.Errorf("alerts.detector horizons must be non-negative")
	}
	if c.Alerts.Sweeper.Interval <= 0 {
		return fmt.Errorf("alerts.sweeper.interval must be positive")
	}
	if c.Alerts.Sweeper.BatchSize <= 0 {
		return fmt.Errorf("alerts.sweeper.batch_size must be positive")
	}
	if c.Alerts.Webhook.Enabled && c.Alerts.Webhook.WebhookURL == "" {
		return fmt.Errorf("alerts.webhook.webhook_url is required when the webhook is enabled")
	}
	return nil
}
