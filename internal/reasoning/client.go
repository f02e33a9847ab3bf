// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package reasoning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/vinarium/internal/metrics"
)

// ErrUnavailable marks any reasoning-service failure: network errors,
// non-2xx replies, an open circuit, or rate-limit exhaustion. Callers
// distinguish it from validation errors with errors.Is and must not
// retry; the breaker owns recovery.
var ErrUnavailable = errors.New("reasoning service unavailable")

// ClientConfig configures the reasoning client.
type ClientConfig struct {
	// BaseURL of the suggestion service, without trailing slash.
	BaseURL string `koanf:"base_url"`

	// APIKey is sent as a bearer token when set.
	APIKey string `koanf:"api_key"`

	// Timeout bounds one request.
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerMinute is the client-side rate limit.
	RequestsPerMinute int `koanf:"requests_per_minute"`
}

// DefaultClientConfig returns conservative client defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:           15 * time.Second,
		RequestsPerMinute: 30,
	}
}

// Client calls the reasoning service over HTTP with circuit breaker
// protection and a client-side rate limiter.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]Suggestion]
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

const breakerName = "reasoning-service"

// NewClient creates the reasoning client.
//
// Breaker policy: opens at a 60% failure rate over at least 10
// requests, resets counts every minute while closed, and waits two
// minutes before probing with up to 3 half-open requests.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 30
	}

	componentLogger := logger.With().Str("component", "reasoning").Logger()

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]Suggestion](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Info().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("reasoning breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute),
		logger:     componentLogger,
	}
}

// Suggest requests purchase suggestions for a gap query. All failure
// modes surface as errors wrapping ErrUnavailable.
func (c *Client) Suggest(ctx context.Context, query Query) ([]Suggestion, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no base URL configured", ErrUnavailable)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.ReasoningRequests.WithLabelValues("rate_limited").Inc()
		return nil, fmt.Errorf("%w: rate limit: %v", ErrUnavailable, err)
	}

	suggestions, err := c.breaker.Execute(func() ([]Suggestion, error) {
		return c.doSuggest(ctx, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.ReasoningRequests.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%w: circuit open", ErrUnavailable)
		}
		metrics.ReasoningRequests.WithLabelValues("error").Inc()
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	metrics.ReasoningRequests.WithLabelValues("ok").Inc()
	return suggestions, nil
}

func (c *Client) doSuggest(ctx context.Context, query Query) ([]Suggestion, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/suggestions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var decoded suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return decoded.Suggestions, nil
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
