// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vinarium/internal/metrics"
	"github.com/tomtom215/vinarium/internal/models"
	"github.com/tomtom215/vinarium/internal/reasoning"
	"github.com/tomtom215/vinarium/internal/window"
)

// Request validation errors. Callers can errors.Is against
// ErrInvalidRequest to distinguish bad input from collaborator
// failures.
var (
	ErrInvalidRequest  = errors.New("invalid recommendation request")
	ErrContextRequired = fmt.Errorf("%w: contextual mode requires a context", ErrInvalidRequest)
)

// Reasoner is the purchase-mode collaborator that turns a gap
// analysis into concrete wine suggestions. Implementations live in
// internal/reasoning; the engine works without one, falling back to
// catalog-derived suggestions.
type Reasoner interface {
	Suggest(ctx context.Context, query reasoning.Query) ([]reasoning.Suggestion, error)
}

// Engine is the single entry point of the recommendation scoring
// engine. It is stateless between calls and safe for concurrent use.
type Engine struct {
	config   Config
	calc     *window.Calculator
	scorer   Scorer
	gaps     *GapAnalyzer
	reasoner Reasoner
	logger   zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewEngine assembles the engine. reasoner may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, calc *window.Calculator, scorer Scorer, gaps *GapAnalyzer, reasoner Reasoner, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if calc == nil {
		calc = window.NewCalculator(nil)
	}
	if scorer == nil {
		scorer = NewPreferenceScorer()
	}
	if gaps == nil {
		gaps = NewGapAnalyzer(DefaultCatalog())
	}
	return &Engine{
		config:   cfg,
		calc:     calc,
		scorer:   scorer,
		gaps:     gaps,
		reasoner: reasoner,
		logger:   logger.With().Str("component", "recommend").Logger(),
		now:      time.Now,
	}, nil
}

// Generate produces recommendations for one request.
//
// Invalid input (unknown mode, contextual without context) returns an
// error wrapping ErrInvalidRequest. An empty-but-valid state (no
// drinkable bottles, nothing passing filters) returns a
// zero-confidence response with follow-up questions, never an error.
// Reasoning-service failures propagate as reasoning.ErrUnavailable.
func (e *Engine) Generate(ctx context.Context, req *Request) (*Response, error) {
	start := e.now()

	resp, err := e.generate(ctx, req)

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case resp.Empty():
		outcome = "empty"
	}
	mode := "invalid"
	if req != nil && req.Mode.IsValid() {
		mode = string(req.Mode)
	}
	metrics.ObserveRecommendation(mode, outcome, e.now().Sub(start))

	return resp, err
}

func (e *Engine) generate(ctx context.Context, req *Request) (*Response, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	now := e.now().UTC()

	switch req.Mode {
	case ModeTonight:
		return e.tonight(req, now), nil
	case ModePurchase:
		return e.purchase(ctx, req, now)
	default:
		return e.contextual(req, now), nil
	}
}

func (e *Engine) validate(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, req.Mode)
	}
	if req.Mode == ModeContextual && req.Context == nil {
		return ErrContextRequired
	}
	if req.Context != nil && !req.Context.UrgencyHint.IsValid() {
		return fmt.Errorf("%w: unknown urgency hint %q", ErrInvalidRequest, req.Context.UrgencyHint)
	}
	return nil
}

// tonight ranks drinkable inventory by the urgency/personalization
// composite and returns the top picks.
func (e *Engine) tonight(req *Request, now time.Time) *Response {
	candidates := e.drinkable(req.Inventory, now)
	if len(candidates) == 0 {
		return e.emptyResponse(req.Mode, now,
			"No bottles are available to drink tonight.",
			[]string{
				"Would you like purchase suggestions to restock your cellar?",
				"Do you have bottles on hand that are not logged yet?",
			})
	}

	scored := e.scoreAll(candidates, req, now)
	top := topN(scored, e.config.TopN)

	recommendations := make([]models.Recommendation, 0, len(top))
	for _, sc := range top {
		recommendations = append(recommendations, e.buildRecommendation(sc, "", now))
	}

	return &Response{
		Mode:            req.Mode,
		Recommendations: recommendations,
		Reasoning: fmt.Sprintf("Ranked %d drinkable bottles by drink-window urgency and taste match.",
			len(candidates)),
		Confidence:  meanConfidence(recommendations),
		GeneratedAt: now,
	}
}

// purchase turns the collection's gaps into buy suggestions, through
// the reasoning service when available.
func (e *Engine) purchase(ctx context.Context, req *Request, now time.Time) (*Response, error) {
	report := e.gaps.Analyze(req.Inventory, req.History)

	if report.Empty() {
		return e.emptyResponse(req.Mode, now,
			"Your collection already covers every region, varietal, and type in the reference catalog.",
			[]string{
				"Would you like deeper picks within a region you already collect?",
			}), nil
	}

	notes := educationalNotes(&report)

	var recommendations []models.Recommendation
	if e.reasoner != nil {
		suggestions, err := e.reasoner.Suggest(ctx, e.buildQuery(req, &report))
		if err != nil {
			return nil, fmt.Errorf("purchase suggestions: %w", err)
		}
		recommendations = e.fromSuggestions(suggestions, req.Inventory)
	} else {
		recommendations = e.catalogSuggestions(&report)
	}

	if len(recommendations) == 0 {
		return e.emptyResponse(req.Mode, now,
			"No purchase suggestions could be generated.",
			[]string{"Would you like to broaden your price range?"}), nil
	}

	return &Response{
		Mode:             req.Mode,
		Recommendations:  recommendations,
		Reasoning:        "Suggestions target the gaps in your collection.",
		Confidence:       meanConfidence(recommendations),
		EducationalNotes: notes,
		GeneratedAt:      now,
	}, nil
}

// contextual applies situational filters before the composite ranking.
func (e *Engine) contextual(req *Request, now time.Time) *Response {
	rctx := req.Context
	candidates := e.drinkable(req.Inventory, now)
	candidates = filterByType(candidates, rctx.WineTypeFilter)
	candidates = filterByPrice(candidates, rctx.PriceRange)
	candidates = filterByUrgencyHint(candidates, rctx.UrgencyHint, now)

	pairing := pairedTypes(rctx.FoodPairing)
	candidates = filterByPairing(candidates, pairing)

	if len(candidates) == 0 {
		return e.emptyResponse(req.Mode, now,
			"Nothing in the cellar fits this occasion.",
			[]string{
				"Would you relax the price range or wine type?",
				"Should I suggest bottles to buy for this occasion instead?",
			})
	}

	scored := e.scoreAll(candidates, req, now)
	top := topN(scored, e.config.TopN)

	pairingNote := ""
	if len(pairing) > 0 {
		pairingNote = fmt.Sprintf("Pairs with %s", strings.ToLower(rctx.FoodPairing))
	}

	recommendations := make([]models.Recommendation, 0, len(top))
	for _, sc := range top {
		recommendations = append(recommendations, e.buildRecommendation(sc, pairingNote, now))
	}

	return &Response{
		Mode:            req.Mode,
		Recommendations: recommendations,
		Reasoning: fmt.Sprintf("Filtered %d drinkable bottles down to %d for the occasion, then ranked by urgency and taste match.",
			len(req.Inventory), len(candidates)),
		Confidence:  meanConfidence(recommendations),
		GeneratedAt: now,
	}
}

// drinkable returns inventory with bottles on hand, computing any
// missing windows in place.
func (e *Engine) drinkable(inventory []*models.Wine, now time.Time) []*models.Wine {
	var out []*models.Wine
	for _, wine := range inventory {
		if wine.Quantity <= 0 {
			continue
		}
		if wine.Window == nil {
			w := e.calc.Compute(wine, now)
			wine.Window = &w
		}
		out = append(out, wine)
	}
	return out
}

// scoredWine pairs a candidate with its score components.
type scoredWine struct {
	wine         *models.Wine
	urgency      float64
	personalized float64
	composite    float64
}

func (e *Engine) scoreAll(candidates []*models.Wine, req *Request, now time.Time) []scoredWine {
	scored := make([]scoredWine, 0, len(candidates))
	for _, wine := range candidates {
		urgency := window.UrgencyScore(wine.Window, now)
		personalized := e.scorer.Score(wine, req.Profile, req.History)
		scored = append(scored, scoredWine{
			wine:         wine,
			urgency:      urgency,
			personalized: personalized,
			composite: e.config.UrgencyWeight*(urgency/100.0) +
				e.config.PersonalizationWeight*personalized,
		})
	}
	return scored
}

// topN sorts by composite descending (urgency, then name as
// tiebreakers for determinism) and truncates.
func topN(scored []scoredWine, n int) []scoredWine {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].composite != scored[j].composite {
			return scored[i].composite > scored[j].composite
		}
		if scored[i].urgency != scored[j].urgency {
			return scored[i].urgency > scored[j].urgency
		}
		return scored[i].wine.Name < scored[j].wine.Name
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func (e *Engine) buildRecommendation(sc scoredWine, pairingNote string, now time.Time) models.Recommendation {
	return models.Recommendation{
		Wine:         sc.wine,
		Reasoning:    reasonFor(sc, now),
		Confidence:   clamp01(0.5*sc.wine.Window.Confidence + 0.5*sc.personalized),
		UrgencyScore: sc.urgency,
		Serving:      buildServing(sc.wine, now),
		PairingNotes: pairingNote,
		WindowAlert:  buildWindowAlert(sc.wine, now),
	}
}

// reasonFor renders the score components as a human-readable sentence.
func reasonFor(sc scoredWine, now time.Time) string {
	var parts []string

	switch window.StatusOf(sc.wine.Window, now) {
	case models.StatusPeak:
		parts = append(parts, "in its peak drinking window")
	case models.StatusReady:
		parts = append(parts, "ready to drink")
	case models.StatusDeclining:
		parts = append(parts, "past peak and should be drunk soon")
	case models.StatusOverHill:
		parts = append(parts, "past its recommended window")
	default:
		parts = append(parts, "still young")
	}

	switch {
	case sc.personalized >= 0.7:
		parts = append(parts, "a strong match for your tastes")
	case sc.personalized <= 0.3:
		parts = append(parts, "outside your usual preferences")
	}

	sentence := strings.Join(parts, " and ")
	return strings.ToUpper(sentence[:1]) + sentence[1:] + "."
}

func (e *Engine) buildQuery(req *Request, report *GapReport) reasoning.Query {
	query := reasoning.Query{
		UserID:           req.UserID,
		MissingRegions:   report.MissingRegions,
		MissingVarietals: report.MissingVarietals,
	}
	for _, t := range report.UnderrepresentedTypes {
		query.UnderrepresentedTypes = append(query.UnderrepresentedTypes, string(t))
	}
	if req.Profile != nil {
		query.PriceRange = &req.Profile.General.PriceRange
	}
	if req.Context != nil {
		query.Occasion = req.Context.Occasion
		if req.Context.PriceRange != nil {
			query.PriceRange = req.Context.PriceRange
		}
	}
	return query
}

// fromSuggestions converts reasoning-service suggestions, pinning the
// nominal purchase urgency. A suggestion may reference an inventory
// wine by ID instead of describing a new bottle; unresolvable IDs with
// no description are dropped.
func (e *Engine) fromSuggestions(suggestions []reasoning.Suggestion, inventory []*models.Wine) []models.Recommendation {
	byID := make(map[string]*models.Wine, len(inventory))
	for _, w := range inventory {
		byID[w.ID] = w
	}

	recommendations := make([]models.Recommendation, 0, len(suggestions))
	for _, s := range suggestions {
		rec := models.Recommendation{
			Reasoning:    s.Reasoning,
			Confidence:   clamp01(s.Confidence),
			UrgencyScore: e.config.PurchaseUrgency,
			LearningNote: "Fills a gap in your collection",
		}
		switch {
		case s.WineID != "" && byID[s.WineID] != nil:
			rec.Wine = byID[s.WineID]
		case s.SuggestedWine != "":
			rec.SuggestedWine = s.SuggestedWine
		default:
			continue
		}
		recommendations = append(recommendations, rec)
	}
	return recommendations
}

// catalogSuggestions is the reasoner-less fallback: one suggestion per
// gap, regions first, capped at TopN.
func (e *Engine) catalogSuggestions(report *GapReport) []models.Recommendation {
	var recommendations []models.Recommendation

	add := func(suggested, why, note string) {
		if len(recommendations) >= e.config.TopN {
			return
		}
		recommendations = append(recommendations, models.Recommendation{
			SuggestedWine: suggested,
			Reasoning:     why,
			Confidence:    0.6,
			UrgencyScore:  e.config.PurchaseUrgency,
			LearningNote:  note,
		})
	}

	for _, region := range report.MissingRegions {
		add(
			fmt.Sprintf("A classic bottle from %s", region),
			fmt.Sprintf("Your collection has nothing from %s.", region),
			fmt.Sprintf("Introduces %s to your cellar", region),
		)
	}
	for _, varietal := range report.MissingVarietals {
		add(
			fmt.Sprintf("A well-reviewed %s", varietal),
			fmt.Sprintf("You have not explored %s yet.", varietal),
			fmt.Sprintf("First %s in your cellar", varietal),
		)
	}
	for _, wineType := range report.UnderrepresentedTypes {
		add(
			fmt.Sprintf("An entry-level %s wine", wineType),
			fmt.Sprintf("Your cellar holds no %s wines.", wineType),
			fmt.Sprintf("Broadens your cellar into %s wines", wineType),
		)
	}

	return recommendations
}

func (e *Engine) emptyResponse(mode Mode, now time.Time, reasoning string, followUps []string) *Response {
	return &Response{
		Mode:              mode,
		Recommendations:   nil,
		Reasoning:         reasoning,
		Confidence:        0,
		FollowUpQuestions: followUps,
		GeneratedAt:       now,
	}
}

// meanConfidence averages per-recommendation confidence, rounded to
// two decimals. Zero for an empty list.
func meanConfidence(recommendations []models.Recommendation) float64 {
	if len(recommendations) == 0 {
		return 0
	}
	var sum float64
	for _, r := range recommendations {
		sum += r.Confidence
	}
	return math.Round(sum/float64(len(recommendations))*100) / 100
}

// Contextual candidate filters. Each returns a filtered copy.

func filterByType(wines []*models.Wine, filter models.WineType) []*models.Wine {
	if filter == "" {
		return wines
	}
	var out []*models.Wine
	for _, w := range wines {
		if w.Type == filter {
			out = append(out, w)
		}
	}
	return out
}

// filterByPrice drops wines priced outside the range. Wines without a
// recorded price always pass.
func filterByPrice(wines []*models.Wine, priceRange *models.PriceRange) []*models.Wine {
	if priceRange == nil {
		return wines
	}
	var out []*models.Wine
	for _, w := range wines {
		if w.PurchasePrice == 0 || priceRange.Contains(w.PurchasePrice) {
			out = append(out, w)
		}
	}
	return out
}

// filterByUrgencyHint keeps only peak and declining wines when the
// caller signals high urgency.
func filterByUrgencyHint(wines []*models.Wine, hint models.UrgencyHint, now time.Time) []*models.Wine {
	if hint != models.UrgencyHigh {
		return wines
	}
	var out []*models.Wine
	for _, w := range wines {
		status := window.StatusOf(w.Window, now)
		if status == models.StatusPeak || status == models.StatusDeclining {
			out = append(out, w)
		}
	}
	return out
}

// filterByPairing keeps wines whose type suits the food. A nil type
// set means the food matched no rule and imposes no filter.
func filterByPairing(wines []*models.Wine, types []models.WineType) []*models.Wine {
	if len(types) == 0 {
		return wines
	}
	allowed := make(map[models.WineType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	var out []*models.Wine
	for _, w := range wines {
		if allowed[w.Type] {
			out = append(out, w)
		}
	}
	return out
}

func educationalNotes(report *GapReport) []string {
	var notes []string
	if len(report.MissingRegions) > 0 {
		notes = append(notes, fmt.Sprintf("Unexplored regions: %s",
			strings.Join(report.MissingRegions, ", ")))
	}
	if len(report.MissingVarietals) > 0 {
		notes = append(notes, fmt.Sprintf("Unexplored varietals: %s",
			strings.Join(report.MissingVarietals, ", ")))
	}
	if len(report.UnderrepresentedTypes) > 0 {
		types := make([]string, 0, len(report.UnderrepresentedTypes))
		for _, t := range report.UnderrepresentedTypes {
			types = append(types, string(t))
		}
		notes = append(notes, fmt.Sprintf("Wine types not represented: %s",
			strings.Join(types, ", ")))
	}
	return notes
}
