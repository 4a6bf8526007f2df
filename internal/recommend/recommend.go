// Package recommend synthesizes a development recommendation from a
// complexity analysis: it runs the four mode scorers, picks the winner,
// and generates rationale, timeline, risk, and success-factor guidance.
package recommend

import (
	"time"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/modes"
)

// Version identifies the recommendation engine; embedded in every
// persisted recommendation.
const Version = "1.0.0"

// Recommendation is the engine's sole output contract: the chosen mode
// plus everything a caller needs to act on (or argue with) the choice.
type Recommendation struct {
	Mode            modes.ExecutionMode `json:"recommended_mode"`
	ConfidenceScore float64             `json:"confidence_score"` // the winner's suitability score
	Rationale       string              `json:"rationale"`

	Alternatives []modes.ExecutionMode `json:"alternative_modes,omitempty"`

	ValidationRequirements []string `json:"validation_requirements,omitempty"`
	EstimatedTimeline      string   `json:"estimated_timeline,omitempty"`

	IdentifiedRisks      []string `json:"identified_risks,omitempty"`
	MitigationStrategies []string `json:"mitigation_strategies,omitempty"`
	SuccessFactors       []string `json:"success_factors,omitempty"`

	RelevantPatterns []string `json:"relevant_patterns,omitempty"`

	CreatedAt string `json:"created_at,omitempty"` // RFC3339
	Version   string `json:"version,omitempty"`
}

// PatternSource supplies names of historical cross-project patterns
// relevant to a complexity score and mode. Implementations must tolerate
// being asked before any history has loaded and answer with an empty
// list; pattern lookup degrades gracefully, it never blocks or errors.
type PatternSource interface {
	RelevantPatternNames(complexityScore float64, mode modes.ExecutionMode) []string
}

// Synthesizer builds recommendations. It is stateless apart from the
// optional pattern source; identical inputs always yield identical
// output (pattern history aside).
type Synthesizer struct {
	patterns PatternSource
}

// NewSynthesizer creates a Synthesizer. patterns may be nil, in which
// case recommendations carry no historical pattern references.
func NewSynthesizer(patterns PatternSource) *Synthesizer {
	return &Synthesizer{patterns: patterns}
}

// Recommend scores all four modes, picks the winner (ties broken by
// enumeration order), and assembles the full recommendation.
func (s *Synthesizer) Recommend(a analysis.Analysis, p modes.UserPreferences, ctx modes.ProjectContext) Recommendation {
	scores := modes.ScoreAll(a, p, ctx)
	best, rest := scores.Best()

	risks, mitigations := risksAndMitigations(best, a)

	var patternNames []string
	if s.patterns != nil {
		patternNames = s.patterns.RelevantPatternNames(a.ComplexityScore, best)
	}

	return Recommendation{
		Mode:                   best,
		ConfidenceScore:        scores[best],
		Rationale:              buildRationale(best, a, p, scores[best]),
		Alternatives:           rest[:2],
		ValidationRequirements: validationRequirements(best, a),
		EstimatedTimeline:      estimateTimeline(best, a, ctx),
		IdentifiedRisks:        risks,
		MitigationStrategies:   mitigations,
		SuccessFactors:         successFactors(best, a, p),
		RelevantPatterns:       patternNames,
		CreatedAt:              time.Now().UTC().Format(time.RFC3339),
		Version:                Version,
	}
}
