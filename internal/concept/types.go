// Package concept defines the value objects produced by narrative
// collection and consumed by complexity analysis: the concept snapshot,
// stakeholder stories, challenge resolutions, and enhancements.
//
// All types are immutable by convention: the analyzer and scorers
// receive snapshots by value and never write back.
package concept

import (
	"fmt"
	"strings"
)

// --- Stakeholder type enum ---

// StakeholderType categorizes a stakeholder's relationship to the concept.
type StakeholderType string

const (
	TypePrimary   StakeholderType = "primary"
	TypeSecondary StakeholderType = "secondary"
	TypeTertiary  StakeholderType = "tertiary"
)

// validStakeholderTypes is the set of allowed stakeholder types.
var validStakeholderTypes = map[StakeholderType]bool{
	TypePrimary:   true,
	TypeSecondary: true,
	TypeTertiary:  true,
}

// ValidateStakeholderType returns an error if the type is not recognized.
func ValidateStakeholderType(t StakeholderType) error {
	if !validStakeholderTypes[t] {
		return fmt.Errorf("invalid stakeholder type %q: must be one of: primary, secondary, tertiary", t)
	}
	return nil
}

// --- Validation level enum ---

// ValidationLevel tracks how far a concept has progressed through the
// three collection levels.
type ValidationLevel string

const (
	LevelFoundation   ValidationLevel = "foundation"    // stories collected
	LevelStressTested ValidationLevel = "stress_tested" // challenges resolved
	LevelEnhanced     ValidationLevel = "enhanced"      // amplifications explored
)

// validValidationLevels is the set of allowed validation levels.
var validValidationLevels = map[ValidationLevel]bool{
	LevelFoundation:   true,
	LevelStressTested: true,
	LevelEnhanced:     true,
}

// ValidateValidationLevel returns an error if the level is not recognized.
func ValidateValidationLevel(l ValidationLevel) error {
	if !validValidationLevels[l] {
		return fmt.Errorf("invalid validation level %q: must be one of: foundation, stress_tested, enhanced", l)
	}
	return nil
}

// --- Core data structures ---

// StakeholderStory is one affected party's narrative: their current
// situation, the pain the concept removes, and the value it delivers.
type StakeholderStory struct {
	Name               string          `json:"name"`
	Type               StakeholderType `json:"type"`
	Role               string          `json:"role,omitempty"`
	CurrentSituation   string          `json:"current_situation"`
	PainPoints         []string        `json:"pain_points,omitempty"`
	Goals              []string        `json:"goals,omitempty"`
	EnhancedExperience string          `json:"enhanced_experience"`
	ValueDelivered     string          `json:"value_delivered"`
	SuccessIndicators  []string        `json:"success_indicators,omitempty"`
	StoryConfidence    float64         `json:"story_confidence"` // always in [0,1]
}

// ChallengeResolution records a stress-test scenario and the accepted
// mitigation that hardened the concept against it.
type ChallengeResolution struct {
	Scenario              string   `json:"scenario"`
	AffectedStakeholders  []string `json:"affected_stakeholders,omitempty"`
	SolutionApproach      string   `json:"solution_approach"`
	ConceptEvolution      string   `json:"concept_evolution"`
	Category              string   `json:"category,omitempty"`
	ConfidenceImprovement float64  `json:"confidence_improvement"`
}

// Enhancement is a proposed amplification layered onto a validated
// concept, e.g. network effects or an integration play.
type Enhancement struct {
	Type                   string  `json:"type"`
	Description            string  `json:"description"`
	ImplementationApproach string  `json:"implementation_approach"`
	SuccessAmplification   string  `json:"success_amplification,omitempty"`
	ImpactScore            float64 `json:"impact_score"`       // [0,1]
	FeasibilityScore       float64 `json:"feasibility_score"`  // [0,1]
	InnovationLevel        float64 `json:"innovation_level"`   // [0,1]
}

// Snapshot is the read-only input to complexity analysis: a concept plus
// everything the narrative collection discovered about it.
type Snapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Stories      []StakeholderStory    `json:"stories,omitempty"`
	Challenges   []ChallengeResolution `json:"challenges,omitempty"`
	Enhancements []Enhancement         `json:"enhancements,omitempty"`

	ConceptMaturity     float64         `json:"concept_maturity"`     // [0,1]
	NarrativeConfidence float64         `json:"narrative_confidence"` // [0,1]
	ValidationLevel     ValidationLevel `json:"validation_level"`

	CompetitiveDifferentiation string   `json:"competitive_differentiation,omitempty"`
	SuccessMetrics             []string `json:"success_metrics,omitempty"`

	CreatedAt string `json:"created_at,omitempty"` // RFC3339
	UpdatedAt string `json:"updated_at,omitempty"` // RFC3339
	Version   string `json:"version,omitempty"`
}

// StakeholderCount returns the number of collected stories.
func (s Snapshot) StakeholderCount() int {
	return len(s.Stories)
}

// DistinctStakeholderTypes returns how many distinct stakeholder types
// appear across the stories.
func (s Snapshot) DistinctStakeholderTypes() int {
	seen := map[StakeholderType]bool{}
	for _, st := range s.Stories {
		seen[st.Type] = true
	}
	return len(seen)
}

// StakeholderTypeNames returns the distinct stakeholder type labels in
// story order, for context reporting.
func (s Snapshot) StakeholderTypeNames() []string {
	var names []string
	seen := map[StakeholderType]bool{}
	for _, st := range s.Stories {
		if !seen[st.Type] {
			seen[st.Type] = true
			names = append(names, string(st.Type))
		}
	}
	return names
}

// FindStory returns the story for the named stakeholder, or nil.
// Matching is case-insensitive.
func (s Snapshot) FindStory(name string) *StakeholderStory {
	for i := range s.Stories {
		if strings.EqualFold(s.Stories[i].Name, name) {
			return &s.Stories[i]
		}
	}
	return nil
}
