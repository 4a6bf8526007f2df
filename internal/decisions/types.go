// Package decisions persists recommendation decisions and cross-project
// patterns as one JSON file per record, and answers pattern-relevance
// queries from an in-memory view of that history.
package decisions

import (
	"fmt"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/modes"
	"github.com/genesis-cli/genesis/internal/recommend"
)

// Pattern is a reusable observation mined from past projects: which
// approach worked, in what complexity range, and how reliably.
type Pattern struct {
	ID          string `json:"pattern_id"`
	Name        string `json:"pattern_name"`
	Description string `json:"pattern_description"`

	// Type is one of: success, failure, approach.
	Type             string     `json:"pattern_type"`
	ComplexityRange  [2]float64 `json:"complexity_range"`
	StakeholderTypes []string   `json:"stakeholder_types,omitempty"`

	SuccessRate        float64    `json:"success_rate"` // [0,1]
	SampleSize         int        `json:"sample_size"`  // >=1
	ConfidenceInterval [2]float64 `json:"confidence_interval"`

	ApplicableModes    []modes.ExecutionMode `json:"applicable_modes,omitempty"`
	RequiredConditions []string              `json:"required_conditions,omitempty"`
	Contraindications  []string              `json:"contraindications,omitempty"`

	ImplementationSteps []string `json:"implementation_steps,omitempty"`
	CommonPitfalls      []string `json:"common_pitfalls,omitempty"`
	SuccessIndicators   []string `json:"success_indicators,omitempty"`

	FirstObserved string `json:"first_observed,omitempty"` // RFC3339
	LastUpdated   string `json:"last_updated,omitempty"`   // RFC3339
	Version       string `json:"pattern_version,omitempty"`
}

// Validate rejects patterns that would poison relevance queries.
func (p Pattern) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pattern id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	if p.SuccessRate < 0.0 || p.SuccessRate > 1.0 {
		return fmt.Errorf("success_rate must be in [0,1], got %g", p.SuccessRate)
	}
	if p.SampleSize < 1 {
		return fmt.Errorf("sample_size must be >= 1, got %d", p.SampleSize)
	}
	if p.ComplexityRange[0] > p.ComplexityRange[1] {
		return fmt.Errorf("complexity_range low %g exceeds high %g", p.ComplexityRange[0], p.ComplexityRange[1])
	}
	for _, m := range p.ApplicableModes {
		if err := modes.ValidateMode(m); err != nil {
			return err
		}
	}
	return nil
}

// AppliesTo reports whether the pattern covers the given complexity
// score and execution mode.
func (p Pattern) AppliesTo(complexityScore float64, mode modes.ExecutionMode) bool {
	if complexityScore < p.ComplexityRange[0] || complexityScore > p.ComplexityRange[1] {
		return false
	}
	for _, m := range p.ApplicableModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Outcome is the post-hoc result of a decision, reported once the
// project concludes.
type Outcome struct {
	Success        bool               `json:"project_success"`
	SuccessMetrics map[string]float64 `json:"success_metrics,omitempty"`
	LessonsLearned []string           `json:"lessons_learned,omitempty"`
}

// Decision is the full record of one recommendation event: everything
// the engine saw, what it recommended, what the user chose, and later
// how the project turned out.
type Decision struct {
	ID string `json:"decision_id"`

	Context     modes.ProjectContext  `json:"project_context"`
	Preferences modes.UserPreferences `json:"user_preferences"`
	Analysis    analysis.Analysis     `json:"complexity_analysis"`

	Recommendation  recommend.Recommendation `json:"recommendation"`
	UserChoice      modes.ExecutionMode      `json:"user_choice"`
	ChoiceRationale string                   `json:"decision_rationale"`

	// Outcome tracking; nil until RecordOutcome.
	ProjectSuccess *bool              `json:"project_success,omitempty"`
	SuccessMetrics map[string]float64 `json:"success_metrics,omitempty"`
	LessonsLearned []string           `json:"lessons_learned,omitempty"`

	DecidedAt   string `json:"decision_timestamp"` // RFC3339
	CompletedAt string `json:"project_completion,omitempty"`
}

// OutcomeRecorded reports whether the decision's outcome has been set.
func (d Decision) OutcomeRecorded() bool {
	return d.ProjectSuccess != nil
}
