// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import "fmt"

// Config holds engine weights and limits.
type Config struct {
	// UrgencyWeight scales the normalized drink-window urgency in the
	// composite score.
	UrgencyWeight float64 `koanf:"urgency_weight"`

	// PersonalizationWeight scales the personalization score.
	PersonalizationWeight float64 `koanf:"personalization_weight"`

	// TopN is how many recommendations a response carries.
	TopN int `koanf:"top_n"`

	// PurchaseUrgency is the nominal urgency attached to purchase
	// suggestions, which have no drinking window yet.
	PurchaseUrgency float64 `koanf:"purchase_urgency"`
}

// DefaultConfig returns the standard engine weights: urgency 0.6,
// personalization 0.4, top 3.
func DefaultConfig() Config {
	return Config{
		UrgencyWeight:         0.6,
		PersonalizationWeight: 0.4,
		TopN:                  3,
		PurchaseUrgency:       0.5,
	}
}

// Validate checks weight and limit sanity.
func (c Config) Validate() error {
	if c.UrgencyWeight < 0 || c.PersonalizationWeight < 0 {
		return fmt.Errorf("recommend config: weights must be non-negative")
	}
	sum := c.UrgencyWeight + c.PersonalizationWeight
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("recommend config: weights must sum to 1.0, got %.2f", sum)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("recommend config: top_n must be positive, got %d", c.TopN)
	}
	if c.PurchaseUrgency < 0 || c.PurchaseUrgency > 100 {
		return fmt.Errorf("recommend config: purchase_urgency out of range: %v", c.PurchaseUrgency)
	}
	return nil
}
