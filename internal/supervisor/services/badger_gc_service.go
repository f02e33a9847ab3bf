// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package services

import (
	"context"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

const (
	defaultGCInterval     = time.Hour
	defaultGCDiscardRatio = 0.5
)

// BadgerGCService periodically runs Badger value-log garbage
// collection. Badger never reclaims value-log space on its own; the
// embedding application is expected to call RunValueLogGC on a timer.
type BadgerGCService struct {
	db           *badger.DB
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
	name         string
}

// NewBadgerGCService creates the GC service. A zero interval defaults
// to one hour, a zero discardRatio to 0.5.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerGCService(db *badger.DB, interval time.Duration, discardRatio float64, logger zerolog.Logger) *BadgerGCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = defaultGCDiscardRatio
	}
	return &BadgerGCService{
		db:           db,
		interval:     interval,
		discardRatio: discardRatio,
		logger:       logger.With().Str("service", "badger-gc").Logger(),
		name:         "badger-gc",
	}
}

// Serve implements suture.Service.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			s.collect()
		}
	}
}

// collect loops RunValueLogGC until no file is rewritten. Each call
// rewrites at most one value-log file, so repeating until
// ErrNoRewrite drains the backlog. In-memory databases have no value
// log; GC is a no-op for them.
func (s *BadgerGCService) collect() {
	rewritten := 0
	for {
		err := s.db.RunValueLogGC(s.discardRatio)
		if err == nil {
			rewritten++
			continue
		}
		if !errors.Is(err, badger.ErrNoRewrite) && !errors.Is(err, badger.ErrGCInMemoryMode) {
			s.logger.Warn().Err(err).Msg("value log gc failed")
		}
		break
	}
	if rewritten > 0 {
		s.logger.Debug().Int("files", rewritten).Msg("value log gc reclaimed space")
	}
}

// String identifies the service in supervisor log messages.
func (s *BadgerGCService) String() string {
	return s.name
}
