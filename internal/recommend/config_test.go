// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "equal weights", mutate: func(c *Config) {
			c.UrgencyWeight = 0.5
			c.PersonalizationWeight = 0.5
		}},
		{name: "weights must sum to one", mutate: func(c *Config) {
			c.UrgencyWeight = 0.6
			c.PersonalizationWeight = 0.6
		}, wantErr: true},
		{name: "negative weight", mutate: func(c *Config) {
			c.UrgencyWeight = -0.1
			c.PersonalizationWeight = 1.1
		}, wantErr: true},
		{name: "zero top n", mutate: func(c *Config) { c.TopN = 0 }, wantErr: true},
		{name: "purchase urgency out of range", mutate: func(c *Config) { c.PurchaseUrgency = 101 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
