// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"time"

	"github.com/tomtom215/vinarium/internal/models"
)

// Mode selects the recommendation strategy.
type Mode string

const (
	// ModeTonight ranks owned bottles for drinking now.
	ModeTonight Mode = "tonight"

	// ModePurchase suggests bottles to buy, driven by gap analysis.
	ModePurchase Mode = "purchase"

	// ModeContextual ranks owned bottles for a specific situation.
	// Requires a RecommendationContext.
	ModeContextual Mode = "contextual"
)

// IsValid reports whether m is a recognized mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeTonight, ModePurchase, ModeContextual:
		return true
	default:
		return false
	}
}

// Request carries everything the engine needs for one recommendation.
// Inventory, Profile, and History are caller-provided snapshots; the
// engine never reads storage directly.
type Request struct {
	UserID string `json:"user_id"`
	Mode   Mode   `json:"mode"`

	// Context is required for ModeContextual and ignored otherwise.
	Context *models.RecommendationContext `json:"context,omitempty"`

	Inventory []*models.Wine              `json:"inventory"`
	Profile   *models.TasteProfile        `json:"profile,omitempty"`
	History   []*models.ConsumptionRecord `json:"history,omitempty"`
}

// Response is the engine's answer. Confidence is the mean of the
// per-recommendation confidences, rounded to two decimals, and 0 when
// no recommendations could be made.
type Response struct {
	Mode            Mode                    `json:"mode"`
	Recommendations []models.Recommendation `json:"recommendations"`

	// Reasoning summarizes how the list was assembled.
	Reasoning string `json:"reasoning"`

	Confidence float64 `json:"confidence"`

	// EducationalNotes surface collection-gap insight (purchase mode).
	EducationalNotes []string `json:"educational_notes,omitempty"`

	// FollowUpQuestions are returned instead of an error when the
	// request was valid but nothing could be recommended.
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Empty reports whether the response carries no recommendations.
func (r *Response) Empty() bool {
	return len(r.Recommendations) == 0
}
