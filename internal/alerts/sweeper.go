// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package alerts

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vinarium/internal/metrics"
	"github.com/tomtom215/vinarium/internal/models"
	"github.com/tomtom215/vinarium/internal/window"
)

// Store is the persistence surface the sweeper needs. Defined here to
// avoid importing the storage package.
type Store interface {
	// ListUserIDs returns every user with at least one wine.
	ListUserIDs(ctx context.Context) ([]string, error)

	// ListWines returns a user's full inventory snapshot.
	ListWines(ctx context.Context, userID string) ([]*models.Wine, error)

	// SaveWine persists a wine, including its recomputed window.
	SaveWine(ctx context.Context, wine *models.Wine) error
}

// SweeperConfig holds sweep scheduling parameters.
type SweeperConfig struct {
	// Interval between full sweeps.
	Interval time.Duration `koanf:"interval"`

	// BatchSize bounds how many wines are processed per batch.
	BatchSize int `koanf:"batch_size"`

	// SweepOnStartup triggers an immediate sweep when the service starts.
	SweepOnStartup bool `koanf:"sweep_on_startup"`
}

// Sweeper periodically refreshes cached window statuses, writes
// changes back, and publishes alert reports. It implements
// suture.Service and is restarted by the supervisor on failure.
type Sweeper struct {
	store     Store
	calc      *window.Calculator
	detector  *Detector
	publisher *Publisher
	config    SweeperConfig
	logger    zerolog.Logger
	name      string
}

// NewSweeper creates the sweep service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSweeper(store Store, calc *window.Calculator, detector *Detector, publisher *Publisher, cfg SweeperConfig, logger zerolog.Logger) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Sweeper{
		store:     store,
		calc:      calc,
		detector:  detector,
		publisher: publisher,
		config:    cfg,
		logger:    logger.With().Str("service", "alert-sweeper").Logger(),
		name:      "alert-sweeper",
	}
}

// Serve implements the suture.Service interface.
func (s *Sweeper) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Int("batch_size", s.config.BatchSize).
		Msg("alert sweeper starting")

	if s.config.SweepOnStartup {
		if err := s.Sweep(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("startup sweep failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("alert sweeper shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled sweep failed")
			}
		}
	}
}

// String returns the service name for supervisor logging.
func (s *Sweeper) String() string {
	return s.name
}

// Sweep runs one full pass over all users. Per-user failures are
// logged and skipped; the pass continues.
func (s *Sweeper) Sweep(ctx context.Context) error {
	start := time.Now()

	userIDs, err := s.store.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	processed := 0
	for _, userID := range userIDs {
		n, err := s.sweepUser(ctx, userID)
		processed += n
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("user sweep failed")
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	metrics.ObserveSweep(time.Since(start), processed)
	s.logger.Info().
		Int("users", len(userIDs)).
		Int("wines", processed).
		Dur("elapsed", time.Since(start)).
		Msg("sweep complete")

	return nil
}

// sweepUser refreshes one user's inventory in bounded batches and
// publishes a single aggregated report. Returns wines processed.
func (s *Sweeper) sweepUser(ctx context.Context, userID string) (int, error) {
	wines, err := s.store.ListWines(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	report := Report{UserID: userID, GeneratedAt: now}

	for start := 0; start < len(wines); start += s.config.BatchSize {
		end := start + s.config.BatchSize
		if end > len(wines) {
			end = len(wines)
		}
		batch := wines[start:end]

		s.refreshBatch(ctx, batch, now)

		batchReport := s.detector.Scan(userID, batch, now)
		report.EnteringPeak = append(report.EnteringPeak, batchReport.EnteringPeak...)
		report.LeavingPeak = append(report.LeavingPeak, batchReport.LeavingPeak...)
		report.OverHill = append(report.OverHill, batchReport.OverHill...)

		if ctx.Err() != nil {
			return start + len(batch), ctx.Err()
		}
	}

	s.recordAlertMetrics(&report)

	if !report.Empty() && s.publisher != nil {
		if err := s.publisher.PublishReport(&report); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("alert publish failed")
		}
	}

	return len(wines), nil
}

// refreshBatch recomputes missing windows and refreshes cached
// statuses, writing changed wines back. Status recomputation is
// idempotent, so write-back failures are logged and retried on the
// next sweep rather than aborting the batch.
func (s *Sweeper) refreshBatch(ctx context.Context, batch []*models.Wine, now time.Time) {
	for _, wine := range batch {
		changed := false

		if wine.Window == nil {
			w := s.calc.Compute(wine, now)
			wine.Window = &w
			changed = true
		} else if s.calc.Refresh(wine.Window, now) {
			changed = true
		}

		if !changed {
			continue
		}

		metrics.StatusTransitions.WithLabelValues(string(wine.Window.CurrentStatus)).Inc()
		if err := s.store.SaveWine(ctx, wine); err != nil {
			s.logger.Warn().Err(err).Str("wine_id", wine.ID).Msg("window write-back failed")
		}
	}
}

func (s *Sweeper) recordAlertMetrics(report *Report) {
	if n := len(report.EnteringPeak); n > 0 {
		metrics.AlertsDetected.WithLabelValues(string(KindEnteringPeak)).Add(float64(n))
	}
	if n := len(report.LeavingPeak); n > 0 {
		metrics.AlertsDetected.WithLabelValues(string(KindLeavingPeak)).Add(float64(n))
	}
	if n := len(report.OverHill); n > 0 {
		metrics.AlertsDetected.WithLabelValues(string(KindOverHill)).Add(float64(n))
	}
}
