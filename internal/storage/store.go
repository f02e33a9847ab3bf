// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package storage persists wines, taste profiles, and consumption
// history in BadgerDB. Everything is stored as JSON under typed key
// prefixes; per-user listings use prefix iteration.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/vinarium/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Key prefixes. Wines and consumption records key by user first so a
// single prefix scan lists one user's data.
const (
	wineKeyPrefix        = "wine:"
	profileKeyPrefix     = "profile:"
	consumptionKeyPrefix = "consumption:"
)

// Config holds storage settings.
type Config struct {
	// Dir is the BadgerDB directory. Empty selects an in-memory
	// database, used by tests.
	Dir string `koanf:"dir"`
}

// Store is the BadgerDB-backed persistence layer. It satisfies the
// alert sweeper's store contract and backs the HTTP API.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens the database and returns a ready store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	}
	// Badger logs through our logger instead of its own.
	opts = opts.WithLogger(badgerLogger{logger.With().Str("component", "badger").Logger()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Dir, err)
	}

	return &Store{
		db:     db,
		logger: logger.With().Str("component", "storage").Logger(),
	}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for maintenance tasks.
func (s *Store) DB() *badger.DB {
	return s.db
}

func wineKey(userID, wineID string) []byte {
	return []byte(wineKeyPrefix + userID + ":" + wineID)
}

func profileKey(userID string) []byte {
	return []byte(profileKeyPrefix + userID)
}

func consumptionKey(userID string, consumedAt time.Time, id string) []byte {
	// RFC 3339 keys sort chronologically under prefix iteration.
	return []byte(consumptionKeyPrefix + userID + ":" + consumedAt.UTC().Format(time.RFC3339Nano) + ":" + id)
}

// SaveWine inserts or replaces a wine record.
func (s *Store) SaveWine(_ context.Context, wine *models.Wine) error {
	if wine == nil || wine.ID == "" || wine.UserID == "" {
		return fmt.Errorf("save wine: id and user_id are required")
	}

	data, err := json.Marshal(wine)
	if err != nil {
		return fmt.Errorf("marshal wine: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(wineKey(wine.UserID, wine.ID), data)
	})
}

// GetWine retrieves one wine, or ErrNotFound.
func (s *Store) GetWine(_ context.Context, userID, wineID string) (*models.Wine, error) {
	var wine models.Wine

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(wineKey(userID, wineID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get wine: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &wine)
		})
	})
	if err != nil {
		return nil, err
	}
	return &wine, nil
}

// DeleteWine removes a wine. Deleting a missing wine is ErrNotFound so
// the API layer can answer 404.
func (s *Store) DeleteWine(_ context.Context, userID, wineID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := wineKey(userID, wineID)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("check wine: %w", err)
		}
		return txn.Delete(key)
	})
}

// ListWines returns a user's full inventory, sorted by name for stable
// API output.
func (s *Store) ListWines(_ context.Context, userID string) ([]*models.Wine, error) {
	var wines []*models.Wine

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(wineKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var wine models.Wine
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &wine)
			})
			if err != nil {
				return fmt.Errorf("decode wine: %w", err)
			}
			wines = append(wines, &wine)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(wines, func(i, j int) bool {
		if wines[i].Name != wines[j].Name {
			return wines[i].Name < wines[j].Name
		}
		return wines[i].ID < wines[j].ID
	})
	return wines, nil
}

// ListUserIDs returns every user holding at least one wine record. The
// alert sweeper iterates this set.
func (s *Store) ListUserIDs(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(wineKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			rest := key[len(wineKeyPrefix):]
			for i := 0; i < len(rest); i++ {
				if rest[i] == ':' {
					seen[rest[:i]] = true
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(seen))
	for id := range seen {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)
	return userIDs, nil
}

// SaveProfile inserts or replaces a user's taste profile.
func (s *Store) SaveProfile(_ context.Context, userID string, profile *models.TasteProfile) error {
	if userID == "" {
		return fmt.Errorf("save profile: user_id is required")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(userID), data)
	})
}

// GetProfile retrieves a user's taste profile, or ErrNotFound when none
// has been saved yet.
func (s *Store) GetProfile(_ context.Context, userID string) (*models.TasteProfile, error) {
	var profile models.TasteProfile

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// AppendConsumption records one consumed bottle. History is
// append-only; there is no update or delete.
func (s *Store) AppendConsumption(_ context.Context, record *models.ConsumptionRecord) error {
	if record == nil || record.ID == "" || record.UserID == "" {
		return fmt.Errorf("append consumption: id and user_id are required")
	}
	if record.ConsumedAt.IsZero() {
		record.ConsumedAt = time.Now().UTC()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal consumption: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(consumptionKey(record.UserID, record.ConsumedAt, record.ID), data)
	})
}

// ListConsumption returns a user's consumption history, oldest first.
func (s *Store) ListConsumption(_ context.Context, userID string) ([]*models.ConsumptionRecord, error) {
	var records []*models.ConsumptionRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(consumptionKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record models.ConsumptionRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return fmt.Errorf("decode consumption: %w", err)
			}
			records = append(records, &record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// badgerLogger adapts zerolog to badger's Logger interface.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
