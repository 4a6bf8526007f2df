package modes

import (
	"fmt"

	"github.com/genesis-cli/genesis/internal/concept"
)

// Constraint labels a resource constraint's tightness.
type Constraint string

const (
	ConstraintTight    Constraint = "tight"
	ConstraintModerate Constraint = "moderate"
	ConstraintFlexible Constraint = "flexible"
)

var validConstraints = map[Constraint]bool{
	ConstraintTight:    true,
	ConstraintModerate: true,
	ConstraintFlexible: true,
}

// ValidationRigor labels how much validation the user requires.
type ValidationRigor string

const (
	RigorStandard   ValidationRigor = "standard"
	RigorHigh       ValidationRigor = "high"
	RigorEnterprise ValidationRigor = "enterprise"
)

var validRigors = map[ValidationRigor]bool{
	RigorStandard:   true,
	RigorHigh:       true,
	RigorEnterprise: true,
}

// UserPreferences captures the caller's constraints and appetites.
// The scoring formulas assume every field is within its documented
// range, so Validate must be called at the boundary. Out-of-range
// values are rejected, never clamped.
type UserPreferences struct {
	PreferredMode ExecutionMode `json:"preferred_mode,omitempty"`

	RiskTolerance  float64 `json:"risk_tolerance"`   // [0,1]
	SpeedVsQuality float64 `json:"speed_vs_quality"` // 0=quality, 1=speed

	AIExperienceLevel           int `json:"ai_experience_level"`           // 1-10
	TechnicalExpertise          int `json:"technical_expertise"`           // 1-10
	ProjectManagementExperience int `json:"project_management_experience"` // 1-10

	TimeConstraints   Constraint `json:"time_constraints"`
	BudgetConstraints Constraint `json:"budget_constraints"`
	TeamSize          int        `json:"team_size"` // >=1

	ValidationLevel     ValidationRigor `json:"validation_level"`
	ConfidenceThreshold float64         `json:"confidence_threshold"` // [0,1]

	LearningMode               bool    `json:"learning_mode"`
	ExperimentationWillingness float64 `json:"experimentation_willingness"` // [0,1]
}

// DefaultPreferences returns the documented default preference set.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		RiskTolerance:               0.5,
		SpeedVsQuality:              0.5,
		AIExperienceLevel:           5,
		TechnicalExpertise:          5,
		ProjectManagementExperience: 5,
		TimeConstraints:             ConstraintModerate,
		BudgetConstraints:           ConstraintModerate,
		TeamSize:                    1,
		ValidationLevel:             RigorStandard,
		ConfidenceThreshold:         0.85,
		ExperimentationWillingness:  0.5,
	}
}

// Validate rejects preference values outside their documented ranges.
func (p UserPreferences) Validate() error {
	if p.PreferredMode != "" {
		if err := ValidateMode(p.PreferredMode); err != nil {
			return err
		}
	}
	if err := checkUnit("risk_tolerance", p.RiskTolerance); err != nil {
		return err
	}
	if err := checkUnit("speed_vs_quality", p.SpeedVsQuality); err != nil {
		return err
	}
	if err := checkUnit("confidence_threshold", p.ConfidenceThreshold); err != nil {
		return err
	}
	if err := checkUnit("experimentation_willingness", p.ExperimentationWillingness); err != nil {
		return err
	}
	if err := checkScale("ai_experience_level", p.AIExperienceLevel); err != nil {
		return err
	}
	if err := checkScale("technical_expertise", p.TechnicalExpertise); err != nil {
		return err
	}
	if err := checkScale("project_management_experience", p.ProjectManagementExperience); err != nil {
		return err
	}
	if p.TeamSize < 1 {
		return fmt.Errorf("team_size must be >= 1, got %d", p.TeamSize)
	}
	if !validConstraints[p.TimeConstraints] {
		return fmt.Errorf("invalid time_constraints %q: must be one of: tight, moderate, flexible", p.TimeConstraints)
	}
	if !validConstraints[p.BudgetConstraints] {
		return fmt.Errorf("invalid budget_constraints %q: must be one of: tight, moderate, flexible", p.BudgetConstraints)
	}
	if !validRigors[p.ValidationLevel] {
		return fmt.Errorf("invalid validation_level %q: must be one of: standard, high, enterprise", p.ValidationLevel)
	}
	return nil
}

func checkUnit(name string, v float64) error {
	if v < 0.0 || v > 1.0 {
		return fmt.Errorf("%s must be in [0,1], got %g", name, v)
	}
	return nil
}

func checkScale(name string, v int) error {
	if v < 1 || v > 10 {
		return fmt.Errorf("%s must be in 1-10, got %d", name, v)
	}
	return nil
}

// ProjectContext is the invocation context derived from the snapshot
// plus caller-supplied constraints.
type ProjectContext struct {
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`

	StakeholderCount int      `json:"stakeholder_count"`
	StakeholderTypes []string `json:"stakeholder_types,omitempty"`

	InnovationLevel float64 `json:"innovation_level"` // [0,1]

	TimelineConstraints     string   `json:"timeline_constraints,omitempty"`
	RegulatoryRequirements  []string `json:"regulatory_requirements,omitempty"`
	ScalabilityRequirements string   `json:"scalability_requirements,omitempty"`
}

// Constraints are the optional caller-supplied project constraints.
type Constraints struct {
	Timeline    string
	Regulatory  []string
	Scalability string
}

// BuildContext derives a ProjectContext from a snapshot. innovationLevel
// is the analyzer's 0-10 estimate; the context stores it normalized.
func BuildContext(snap concept.Snapshot, innovationLevel float64, c Constraints) ProjectContext {
	scalability := c.Scalability
	if scalability == "" {
		scalability = "moderate"
	}
	return ProjectContext{
		ProjectName:             snap.Name,
		ProjectDescription:      snap.Description,
		StakeholderCount:        snap.StakeholderCount(),
		StakeholderTypes:        snap.StakeholderTypeNames(),
		InnovationLevel:         innovationLevel / 10.0,
		TimelineConstraints:     c.Timeline,
		RegulatoryRequirements:  c.Regulatory,
		ScalabilityRequirements: scalability,
	}
}
