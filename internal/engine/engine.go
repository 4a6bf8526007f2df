// Package engine wires the analyzer, mode scorers, synthesizer, and
// decision store into the single entry point the server and CLI call.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/concept"
	"github.com/genesis-cli/genesis/internal/decisions"
	"github.com/genesis-cli/genesis/internal/modes"
	"github.com/genesis-cli/genesis/internal/recommend"
)

// Engine produces recommendations and records decisions. The store is
// optional: without one the engine still analyzes and recommends, it
// just keeps no history.
type Engine struct {
	analyzer    *analysis.Analyzer
	synthesizer *recommend.Synthesizer
	store       *decisions.Store
	logger      *slog.Logger
}

// New assembles an Engine. store may be nil for history-free operation;
// logger may be nil to use the default.
func New(analyzer *analysis.Analyzer, store *decisions.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	var src recommend.PatternSource
	if store != nil {
		src = store
	}
	return &Engine{
		analyzer:    analyzer,
		synthesizer: recommend.NewSynthesizer(src),
		store:       store,
		logger:      logger,
	}
}

// Start loads historical decisions and patterns in the background.
// Recommendations made before the load completes simply see less
// pattern history; they never block on it.
func (e *Engine) Start(ctx context.Context) {
	if e.store == nil {
		return
	}
	go func() {
		if err := ctx.Err(); err != nil {
			return
		}
		if err := e.store.LoadAll(); err != nil {
			e.logger.Error("failed to load historical data", "error", err)
		}
	}()
}

// Request carries everything one recommendation run needs.
type Request struct {
	Snapshot    concept.Snapshot
	Preferences modes.UserPreferences
	Constraints modes.Constraints
}

// Result is the outcome of a recommendation run: the persisted decision
// ID (empty when no store is configured), the analysis, and the
// recommendation itself.
type Result struct {
	DecisionID     string                   `json:"decision_id,omitempty"`
	Analysis       analysis.Analysis        `json:"complexity_analysis"`
	Context        modes.ProjectContext     `json:"project_context"`
	Recommendation recommend.Recommendation `json:"recommendation"`
}

// Recommend analyzes the concept, scores the modes, synthesizes a
// recommendation, and appends a decision record. A store failure is
// logged but does not fail the run; the caller still gets the
// recommendation, just without a decision ID.
func (e *Engine) Recommend(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := req.Preferences.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid preferences: %w", err)
	}

	a := e.analyzer.Analyze(req.Snapshot)
	pctx := modes.BuildContext(req.Snapshot, e.analyzer.InnovationLevel(req.Snapshot), req.Constraints)
	rec := e.synthesizer.Recommend(a, req.Preferences, pctx)

	res := Result{
		Analysis:       a,
		Context:        pctx,
		Recommendation: rec,
	}

	if e.store == nil {
		return res, nil
	}

	d := decisions.Decision{
		ID:              uuid.NewString(),
		Context:         pctx,
		Preferences:     req.Preferences,
		Analysis:        a,
		Recommendation:  rec,
		UserChoice:      rec.Mode,
		ChoiceRationale: "AI recommendation accepted",
		DecidedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := e.store.AppendDecision(d); err != nil {
		e.logger.Warn("failed to store decision", "error", err)
		return res, nil
	}
	res.DecisionID = d.ID
	return res, nil
}

// RecordOutcome reports how a recommended project turned out. Requires
// a configured store.
func (e *Engine) RecordOutcome(ctx context.Context, decisionID string, o decisions.Outcome) (decisions.Decision, error) {
	if err := ctx.Err(); err != nil {
		return decisions.Decision{}, err
	}
	if e.store == nil {
		return decisions.Decision{}, fmt.Errorf("outcome tracking requires a decision store")
	}
	return e.store.UpdateOutcome(decisionID, o)
}

// FindPatterns returns historical patterns relevant to a complexity
// score and mode. Without a store the result is empty.
func (e *Engine) FindPatterns(complexityScore float64, mode modes.ExecutionMode) []decisions.Pattern {
	if e.store == nil {
		return nil
	}
	return e.store.RelevantPatterns(complexityScore, mode)
}

// Health summarizes the engine's operational state.
type Health struct {
	Status        string `json:"status"` // healthy or degraded
	StoreEnabled  bool   `json:"store_enabled"`
	DecisionCount int    `json:"decision_count"`
	PatternCount  int    `json:"pattern_count"`
}

// CheckHealth reports whether history persistence is available and how
// much history has loaded.
func (e *Engine) CheckHealth() Health {
	h := Health{Status: "healthy", StoreEnabled: e.store != nil}
	if e.store == nil {
		h.Status = "degraded"
		return h
	}
	h.DecisionCount = len(e.store.Decisions())
	h.PatternCount = len(e.store.Patterns())
	return h
}
