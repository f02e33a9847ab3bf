// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package alerts

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/logging"
	"github.com/tomtom215/vinarium/internal/models"
	"github.com/tomtom215/vinarium/internal/window"
)

// memStore is an in-memory Store for sweeper tests.
type memStore struct {
	mu    sync.Mutex
	wines map[string][]*models.Wine
	saves int
}

func newMemStore() *memStore {
	return &memStore{wines: make(map[string][]*models.Wine)}
}

func (s *memStore) ListUserIDs(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.wines))
	for id := range s.wines {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *memStore) ListWines(_ context.Context, userID string) ([]*models.Wine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wines[userID], nil
}

func (s *memStore) SaveWine(_ context.Context, _ *models.Wine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	return nil
}

func newTestSweeper(store Store, batchSize int) *Sweeper {
	var buf bytes.Buffer
	return NewSweeper(
		store,
		window.NewCalculator(window.NewResolver()),
		NewDetector(DefaultConfig()),
		nil, // no publisher
		SweeperConfig{Interval: time.Hour, BatchSize: batchSize},
		logging.NewTestLogger(&buf),
	)
}

func TestSweepComputesMissingWindows(t *testing.T) {
	store := newMemStore()
	store.wines["user-1"] = []*models.Wine{
		{ID: "w1", Name: "Left Bank", Vintage: 2018, Type: models.WineTypeRed, Quantity: 2},
		{ID: "w2", Name: "Village White", Vintage: 2023, Type: models.WineTypeWhite, Quantity: 1},
	}

	sweeper := newTestSweeper(store, 100)
	if err := sweeper.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	for _, w := range store.wines["user-1"] {
		if w.Window == nil {
			t.Errorf("wine %s still has no window after sweep", w.ID)
		}
	}
	if store.saves != 2 {
		t.Errorf("saves = %d, want 2 (one per computed window)", store.saves)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	store := newMemStore()
	store.wines["user-1"] = []*models.Wine{
		{ID: "w1", Name: "Left Bank", Vintage: 2018, Type: models.WineTypeRed, Quantity: 2},
	}

	sweeper := newTestSweeper(store, 100)
	ctx := context.Background()

	if err := sweeper.Sweep(ctx); err != nil {
		t.Fatalf("first Sweep() error = %v", err)
	}
	savesAfterFirst := store.saves

	// Second sweep at effectively the same time changes nothing.
	if err := sweeper.Sweep(ctx); err != nil {
		t.Fatalf("second Sweep() error = %v", err)
	}
	if store.saves != savesAfterFirst {
		t.Errorf("second sweep wrote %d more saves, want 0", store.saves-savesAfterFirst)
	}
}

func TestSweepProcessesAllBatches(t *testing.T) {
	store := newMemStore()
	var wines []*models.Wine
	for i := 0; i < 250; i++ {
		wines = append(wines, &models.Wine{
			ID:      string(rune('a'+i%26)) + "-wine",
			Name:    "Bulk",
			Vintage: 2018 + i%5,
			Type:    models.WineTypeRed,
		})
	}
	store.wines["user-1"] = wines

	// Batch size 100 over 250 wines: every wine must still be processed.
	sweeper := newTestSweeper(store, 100)
	if err := sweeper.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	for i, w := range wines {
		if w.Window == nil {
			t.Fatalf("wine %d skipped by batching", i)
		}
	}
}

func TestSweepHonorsCancellation(t *testing.T) {
	store := newMemStore()
	store.wines["user-1"] = []*models.Wine{
		{ID: "w1", Name: "Left Bank", Vintage: 2018, Type: models.WineTypeRed},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sweeper := newTestSweeper(store, 100)
	if err := sweeper.Sweep(ctx); err == nil {
		t.Error("Sweep() with canceled context returned nil error")
	}
}
