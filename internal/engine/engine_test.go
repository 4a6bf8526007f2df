package engine

import (
	"context"
	"testing"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/concept"
	"github.com/genesis-cli/genesis/internal/decisions"
	"github.com/genesis-cli/genesis/internal/logging"
	"github.com/genesis-cli/genesis/internal/modes"
)

func testSnapshot() concept.Snapshot {
	return concept.Snapshot{
		ID:          "c-1",
		Name:        "TeamSync",
		Description: "a shared planning board",
		Stories: []concept.StakeholderStory{
			{Name: "Lead", Type: concept.TypePrimary, StoryConfidence: 0.8},
			{Name: "Member", Type: concept.TypeSecondary, StoryConfidence: 0.7},
		},
		Challenges: []concept.ChallengeResolution{
			{Scenario: "adoption resistance"},
			{Scenario: "sync conflicts"},
		},
		ConceptMaturity:     0.6,
		NarrativeConfidence: 0.7,
		ValidationLevel:     concept.LevelStressTested,
	}
}

func newTestEngine(t *testing.T, withStore bool) *Engine {
	t.Helper()
	analyzer := analysis.New(analysis.DefaultVocabulary())
	var store *decisions.Store
	if withStore {
		var err error
		store, err = decisions.NewStore(t.TempDir(), logging.NewDiscard())
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
	}
	return New(analyzer, store, logging.NewDiscard())
}

func TestRecommendWithoutStore(t *testing.T) {
	eng := newTestEngine(t, false)

	res, err := eng.Recommend(context.Background(), Request{
		Snapshot:    testSnapshot(),
		Preferences: modes.DefaultPreferences(),
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if res.DecisionID != "" {
		t.Errorf("DecisionID = %q, want empty without a store", res.DecisionID)
	}
	if err := modes.ValidateMode(res.Recommendation.Mode); err != nil {
		t.Errorf("recommended mode invalid: %v", err)
	}
	if res.Context.ProjectName != "TeamSync" {
		t.Errorf("Context.ProjectName = %q, want TeamSync", res.Context.ProjectName)
	}
}

func TestRecommendPersistsDecision(t *testing.T) {
	eng := newTestEngine(t, true)

	res, err := eng.Recommend(context.Background(), Request{
		Snapshot:    testSnapshot(),
		Preferences: modes.DefaultPreferences(),
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if res.DecisionID == "" {
		t.Fatal("DecisionID should be set when a store is configured")
	}

	d, err := eng.store.Decision(res.DecisionID)
	if err != nil {
		t.Fatalf("stored decision not found: %v", err)
	}
	if d.UserChoice != res.Recommendation.Mode {
		t.Errorf("stored UserChoice = %q, want %q", d.UserChoice, res.Recommendation.Mode)
	}
	if d.OutcomeRecorded() {
		t.Error("fresh decision should have no outcome")
	}
}

func TestRecommendRejectsInvalidPreferences(t *testing.T) {
	eng := newTestEngine(t, false)

	prefs := modes.DefaultPreferences()
	prefs.RiskTolerance = 5.0
	_, err := eng.Recommend(context.Background(), Request{
		Snapshot:    testSnapshot(),
		Preferences: prefs,
	})
	if err == nil {
		t.Error("Recommend should reject out-of-range preferences")
	}
}

func TestRecommendHonorsContextCancellation(t *testing.T) {
	eng := newTestEngine(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Recommend(ctx, Request{
		Snapshot:    testSnapshot(),
		Preferences: modes.DefaultPreferences(),
	})
	if err == nil {
		t.Error("Recommend should fail on a cancelled context")
	}
}

func TestRecordOutcome(t *testing.T) {
	eng := newTestEngine(t, true)

	res, err := eng.Recommend(context.Background(), Request{
		Snapshot:    testSnapshot(),
		Preferences: modes.DefaultPreferences(),
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	d, err := eng.RecordOutcome(context.Background(), res.DecisionID, decisions.Outcome{
		Success:        true,
		LessonsLearned: []string{"ship earlier"},
	})
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if !d.OutcomeRecorded() {
		t.Error("decision should report a recorded outcome")
	}
}

func TestRecordOutcomeWithoutStore(t *testing.T) {
	eng := newTestEngine(t, false)
	_, err := eng.RecordOutcome(context.Background(), "any", decisions.Outcome{Success: true})
	if err == nil {
		t.Error("RecordOutcome without a store should fail")
	}
}

func TestFindPatternsWithoutStore(t *testing.T) {
	eng := newTestEngine(t, false)
	if got := eng.FindPatterns(5.0, modes.ModeHybrid); got != nil {
		t.Errorf("FindPatterns without store = %v, want nil", got)
	}
}

func TestCheckHealth(t *testing.T) {
	degraded := newTestEngine(t, false)
	h := degraded.CheckHealth()
	if h.Status != "degraded" || h.StoreEnabled {
		t.Errorf("health without store = %+v, want degraded", h)
	}

	healthy := newTestEngine(t, true)
	h = healthy.CheckHealth()
	if h.Status != "healthy" || !h.StoreEnabled {
		t.Errorf("health with store = %+v, want healthy", h)
	}
	if h.DecisionCount != 0 || h.PatternCount != 0 {
		t.Errorf("fresh store counts = %+v, want zero", h)
	}
}
