package analysis

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/genesis-cli/genesis/internal/concept"
)

// devConcept is a moderately developed concept used across tests.
func devConcept() concept.Snapshot {
	return concept.Snapshot{
		ID:          "c-1",
		Name:        "TeamSync",
		Description: "A shared planning board that keeps distributed teams aligned",
		Stories: []concept.StakeholderStory{
			{
				Name:               "Project Lead",
				Type:               concept.TypePrimary,
				CurrentSituation:   "Tracks work across three disconnected tools and loses updates",
				PainPoints:         []string{"duplicate status updates", "missed handoffs"},
				EnhancedExperience: "Sees one live board with real-time API sync across tools",
				ValueDelivered:     "keeps the whole team aligned without manual updates",
				SuccessIndicators:  []string{"fewer status meetings"},
				StoryConfidence:    0.8,
			},
			{
				Name:               "Team Member",
				Type:               concept.TypeSecondary,
				CurrentSituation:   "Gets interrupted for status several times a day",
				PainPoints:         []string{"context switching"},
				EnhancedExperience: "Updates status once and the platform syncs it everywhere",
				ValueDelivered:     "keeps the team aligned with less interruption",
				StoryConfidence:    0.7,
			},
		},
		Challenges: []concept.ChallengeResolution{
			{
				Scenario:              "A large client resists changing their existing workflow",
				SolutionApproach:      "Gradual rollout with pricing tiers per team",
				ConceptEvolution:      "Added a read-only mirror mode",
				ConfidenceImprovement: 0.1,
			},
			{
				Scenario:              "Sync conflicts when two tools disagree",
				SolutionApproach:      "Last-writer-wins with a visible conflict log",
				ConceptEvolution:      "Conflict log became a first-class feature",
				ConfidenceImprovement: 0.1,
			},
		},
		Enhancements: []concept.Enhancement{
			{
				Type:                   "integration",
				Description:            "Calendar integration for deadline sync",
				ImplementationApproach: "Use the calendar API",
				ImpactScore:            0.8,
				FeasibilityScore:       0.7,
				InnovationLevel:        0.5,
			},
		},
		ConceptMaturity:            0.7,
		NarrativeConfidence:        0.75,
		ValidationLevel:            concept.LevelStressTested,
		CompetitiveDifferentiation: "Only board that syncs bidirectionally with existing tools",
		SuccessMetrics:             []string{"weekly active teams", "sync error rate"},
	}
}

func TestAnalyzeScoreRanges(t *testing.T) {
	a := New(DefaultVocabulary())

	snapshots := map[string]concept.Snapshot{
		"empty":     {},
		"developed": devConcept(),
	}

	for name, snap := range snapshots {
		t.Run(name, func(t *testing.T) {
			got := a.Analyze(snap)

			dims := map[string]float64{
				"complexity_score":       got.ComplexityScore,
				"stakeholder_complexity": got.StakeholderComplexity,
				"technical_complexity":   got.TechnicalComplexity,
				"business_complexity":    got.BusinessComplexity,
				"integration_complexity": got.IntegrationComplexity,
				"uncertainty_level":      got.UncertaintyLevel,
				"story_richness":         got.StoryRichness,
				"narrative_coherence":    got.NarrativeCoherence,
				"stakeholder_alignment":  got.StakeholderAlignment,
			}
			for dim, v := range dims {
				if v < 0.0 || v > 10.0 {
					t.Errorf("%s = %v, want within [0,10]", dim, v)
				}
			}
			if got.AnalysisConfidence < 0.0 || got.AnalysisConfidence > 1.0 {
				t.Errorf("analysis_confidence = %v, want within [0,1]", got.AnalysisConfidence)
			}
		})
	}
}

func TestAnalyzeWeightedSum(t *testing.T) {
	a := New(DefaultVocabulary())
	got := a.Analyze(devConcept())

	want := got.StakeholderComplexity*WeightStakeholder +
		got.TechnicalComplexity*WeightTechnical +
		got.BusinessComplexity*WeightBusiness +
		got.IntegrationComplexity*WeightIntegration +
		got.UncertaintyLevel*WeightUncertainty

	if math.Abs(got.ComplexityScore-want) > 1e-9 {
		t.Errorf("ComplexityScore = %v, want weighted sum %v", got.ComplexityScore, want)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := New(DefaultVocabulary())
	snap := devConcept()

	first := a.Analyze(snap)
	second := a.Analyze(snap)

	// AnalyzedAt is wall-clock; everything else must match exactly.
	first.AnalyzedAt, second.AnalyzedAt = "", ""
	if first.ComplexityScore != second.ComplexityScore ||
		first.AnalysisConfidence != second.AnalysisConfidence ||
		!slices.Equal(first.RiskFactors, second.RiskFactors) {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeEmptyConceptRisks(t *testing.T) {
	a := New(DefaultVocabulary())
	got := a.Analyze(concept.Snapshot{Name: "bare idea"})

	wantRisks := []string{
		"Unclear competitive differentiation",
		"Insufficient challenge stress-testing",
		"Undefined success metrics",
	}
	for _, want := range wantRisks {
		if !slices.Contains(got.RiskFactors, want) {
			t.Errorf("risk factors missing %q, got %v", want, got.RiskFactors)
		}
	}
}

func TestAnalyzeRiskTriggers(t *testing.T) {
	a := New(DefaultVocabulary())

	// Six stakeholders trigger the coordination risk.
	snap := devConcept()
	for i := 0; i < 4; i++ {
		snap.Stories = append(snap.Stories, concept.StakeholderStory{
			Name: "Extra", Type: concept.TypeTertiary, StoryConfidence: 0.6,
		})
	}
	got := a.Analyze(snap)
	if !slices.Contains(got.RiskFactors, "High stakeholder complexity - coordination challenges") {
		t.Errorf("expected stakeholder coordination risk, got %v", got.RiskFactors)
	}

	// A well-covered concept must not flag missing metrics or challenges.
	got = a.Analyze(devConcept())
	for _, r := range got.RiskFactors {
		if r == "Undefined success metrics" || r == "Insufficient challenge stress-testing" {
			t.Errorf("unexpected risk %q for developed concept", r)
		}
	}
}

func TestStoryRichnessEmpty(t *testing.T) {
	a := New(DefaultVocabulary())
	got := a.Analyze(concept.Snapshot{})
	if got.StoryRichness != 0.0 {
		t.Errorf("StoryRichness for no stories = %v, want 0", got.StoryRichness)
	}
	// Single story gets a neutral coherence score.
	one := a.Analyze(concept.Snapshot{Stories: []concept.StakeholderStory{{Name: "a"}}})
	if one.NarrativeCoherence != 5.0 {
		t.Errorf("NarrativeCoherence for one story = %v, want 5.0", one.NarrativeCoherence)
	}
}

func TestInnovationLevel(t *testing.T) {
	a := New(DefaultVocabulary())

	plain := concept.Snapshot{Description: "a simple task list"}
	if got := a.InnovationLevel(plain); got != 0.0 {
		t.Errorf("InnovationLevel(plain) = %v, want 0", got)
	}

	novel := concept.Snapshot{
		Description: "a new, novel, revolutionary breakthrough that will transform and reinvent the market",
	}
	if got := a.InnovationLevel(novel); got != 10.0 {
		t.Errorf("InnovationLevel(novel) = %v, want 10", got)
	}
}

func TestCountMatches(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     int
	}{
		{"no matches", "plain text", []string{"api", "sync"}, 0},
		{"case insensitive", "The API syncs", []string{"api", "sync"}, 2},
		{"repeats count once", "api api api", []string{"api"}, 1},
		{"empty text", "", []string{"api"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countMatches(tt.text, tt.keywords); got != tt.want {
				t.Errorf("countMatches(%q, %v) = %d, want %d", tt.text, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestAnalyzeVersionStamp(t *testing.T) {
	a := New(DefaultVocabulary())
	got := a.Analyze(devConcept())
	if got.Version != Version {
		t.Errorf("Version = %q, want %q", got.Version, Version)
	}
	if !strings.Contains(got.AnalyzedAt, "T") {
		t.Errorf("AnalyzedAt = %q, want RFC3339 timestamp", got.AnalyzedAt)
	}
}
