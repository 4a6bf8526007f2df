package modes

import (
	"testing"

	"github.com/genesis-cli/genesis/internal/analysis"
)

func TestScoreAllRanges(t *testing.T) {
	// Extreme inputs must still land in [0,1]: the scorers clamp.
	analyses := []analysis.Analysis{
		{},
		{ComplexityScore: 10, UncertaintyLevel: 10, StakeholderComplexity: 10},
		{ComplexityScore: 5.5, UncertaintyLevel: 3},
	}
	prefs := []UserPreferences{
		DefaultPreferences(),
		{
			RiskTolerance: 1, SpeedVsQuality: 1, AIExperienceLevel: 10,
			TechnicalExpertise: 10, ProjectManagementExperience: 10,
			TimeConstraints: ConstraintFlexible, BudgetConstraints: ConstraintFlexible,
			TeamSize: 1, ValidationLevel: RigorEnterprise, ConfidenceThreshold: 1,
			LearningMode: true, ExperimentationWillingness: 1,
		},
		{
			TimeConstraints: ConstraintTight, BudgetConstraints: ConstraintTight,
			TeamSize: 10, ValidationLevel: RigorStandard,
		},
	}
	contexts := []ProjectContext{
		{},
		{InnovationLevel: 1.0, StakeholderCount: 10},
	}

	for _, a := range analyses {
		for _, p := range prefs {
			for _, ctx := range contexts {
				scores := ScoreAll(a, p, ctx)
				if len(scores) != 4 {
					t.Fatalf("ScoreAll returned %d scores, want 4", len(scores))
				}
				for mode, s := range scores {
					if s < 0.0 || s > 1.0 {
						t.Errorf("score for %s = %v, want within [0,1]", mode, s)
					}
				}
			}
		}
	}
}

func TestBestTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		scores   Scores
		wantBest ExecutionMode
	}{
		{
			name: "all equal picks first in enumeration order",
			scores: Scores{
				ModeLightweight: 0.5, ModeKnowledgeGraph: 0.5,
				ModeHybrid: 0.5, ModeCreative: 0.5,
			},
			wantBest: ModeLightweight,
		},
		{
			name: "tie between knowledge_graph and creative",
			scores: Scores{
				ModeLightweight: 0.2, ModeKnowledgeGraph: 0.8,
				ModeHybrid: 0.5, ModeCreative: 0.8,
			},
			wantBest: ModeKnowledgeGraph,
		},
		{
			name: "strict maximum wins",
			scores: Scores{
				ModeLightweight: 0.1, ModeKnowledgeGraph: 0.2,
				ModeHybrid: 0.9, ModeCreative: 0.3,
			},
			wantBest: ModeHybrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, rest := tt.scores.Best()
			if best != tt.wantBest {
				t.Errorf("Best() = %q, want %q", best, tt.wantBest)
			}
			if len(rest) != 3 {
				t.Fatalf("rest has %d modes, want 3", len(rest))
			}
			for i := 1; i < len(rest); i++ {
				if tt.scores[rest[i]] > tt.scores[rest[i-1]] {
					t.Errorf("rest not sorted descending: %v", rest)
				}
			}
			for _, m := range rest {
				if m == best {
					t.Errorf("rest contains the winner %q", m)
				}
			}
		})
	}
}

func TestScoreLightweightSimpleProject(t *testing.T) {
	a := analysis.Analysis{ComplexityScore: 2.5, UncertaintyLevel: 3.0}
	p := DefaultPreferences()
	p.SpeedVsQuality = 0.8
	p.AIExperienceLevel = 8

	got := ScoreLightweight(a, p, ProjectContext{})
	// 0.5 base + 0.3 low complexity + 0.2 speed + 0.1 experience + 0.1 small team
	if got != 1.0 {
		t.Errorf("ScoreLightweight = %v, want 1.0 (clamped)", got)
	}
}

func TestScoreKnowledgeGraphEnterpriseProject(t *testing.T) {
	a := analysis.Analysis{ComplexityScore: 8.5}
	p := DefaultPreferences()
	p.ValidationLevel = RigorEnterprise
	p.ConfidenceThreshold = 0.95
	p.SpeedVsQuality = 0.2
	ctx := ProjectContext{StakeholderCount: 6}

	scores := ScoreAll(a, p, ctx)
	best, _ := scores.Best()
	if best != ModeKnowledgeGraph {
		t.Errorf("enterprise project best = %q, want knowledge_graph (scores %v)", best, scores)
	}
}

func TestScoreKnowledgeGraphTightTimePenalty(t *testing.T) {
	a := analysis.Analysis{ComplexityScore: 8.0}
	base := DefaultPreferences()
	tight := base
	tight.TimeConstraints = ConstraintTight

	if got, want := ScoreKnowledgeGraph(a, tight, ProjectContext{}), ScoreKnowledgeGraph(a, base, ProjectContext{}); got >= want {
		t.Errorf("tight time should lower knowledge_graph score: %v >= %v", got, want)
	}
}

func TestScoreHybridDefaultBalance(t *testing.T) {
	// Middling everything is hybrid's home turf.
	a := analysis.Analysis{ComplexityScore: 5.5}
	p := DefaultPreferences()
	p.TeamSize = 3

	scores := ScoreAll(a, p, ProjectContext{InnovationLevel: 0.3})
	best, _ := scores.Best()
	if best != ModeHybrid {
		t.Errorf("balanced project best = %q, want hybrid (scores %v)", best, scores)
	}
}

func TestScoreCreativeInnovativeProject(t *testing.T) {
	a := analysis.Analysis{ComplexityScore: 7.5}
	p := DefaultPreferences()
	p.ExperimentationWillingness = 0.9
	p.RiskTolerance = 0.8
	p.LearningMode = true
	p.ValidationLevel = RigorHigh
	ctx := ProjectContext{InnovationLevel: 0.8}

	got := ScoreCreative(a, p, ctx)
	// 0.2 base + 0.4 innovation + 0.3 experimentation + 0.2 learning + 0.2 risk + 0.1 solo
	if got != 1.0 {
		t.Errorf("ScoreCreative = %v, want 1.0 (clamped)", got)
	}

	scores := ScoreAll(a, p, ctx)
	best, _ := scores.Best()
	if best != ModeCreative {
		t.Errorf("innovative project best = %q, want creative (scores %v)", best, scores)
	}
}
