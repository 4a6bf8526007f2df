// Package prd turns a completed concept snapshot plus an execution-mode
// recommendation into a story-enhanced product requirements document.
// Every requirement traces back to a stakeholder story, a resolved
// challenge, or an enhancement, so the PRD never floats free of the
// narrative that justified it.
package prd

import (
	"fmt"
	"strings"
	"time"

	"github.com/genesis-cli/genesis/internal/concept"
	"github.com/genesis-cli/genesis/internal/modes"
)

// Version identifies the PRD format.
const Version = "1.0.0"

// Metadata traces the document back to its source concept.
type Metadata struct {
	PRDVersion      string                  `json:"prd_version"`
	ConceptID       string                  `json:"concept_id"`
	ConceptName     string                  `json:"concept_name"`
	GeneratedAt     string                  `json:"generated_at"`
	ExecutionMode   modes.ExecutionMode     `json:"execution_mode"`
	ConceptMaturity float64                 `json:"source_concept_maturity"`
	ValidationLevel concept.ValidationLevel `json:"source_validation_level"`
}

// Persona is one stakeholder profile lifted from a story.
type Persona struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Role              string   `json:"role"`
	CurrentSituation  string   `json:"current_situation"`
	PainPoints        []string `json:"pain_points,omitempty"`
	Goals             []string `json:"goals,omitempty"`
	SuccessIndicators []string `json:"success_indicators,omitempty"`
	ValueReceived     string   `json:"value_received"`
}

// UserStory is the "As X, I want to..." form of a stakeholder story.
type UserStory struct {
	ID                 string   `json:"id"`
	Stakeholder        string   `json:"stakeholder"`
	Story              string   `json:"story"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	Priority           string   `json:"priority"`
}

// Requirement is a single traceable technical requirement.
type Requirement struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // functional, constraint, enhancement
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
	Stakeholder string `json:"stakeholder,omitempty"`
	Priority    string `json:"priority"`
}

// Metric is one success metric with its measurement approach.
type Metric struct {
	Metric      string `json:"metric"`
	Type        string `json:"type"` // business, stakeholder, validation, usage
	Stakeholder string `json:"stakeholder,omitempty"`
	Measurement string `json:"measurement"`
	Target      string `json:"target"`
}

// Approach describes the development methodology for the chosen mode.
type Approach struct {
	Methodology   string `json:"methodology"`
	Validation    string `json:"validation"`
	Timeline      string `json:"timeline"`
	TeamStructure string `json:"team_structure"`
}

// Document is the full generated PRD.
type Document struct {
	Metadata               Metadata      `json:"metadata"`
	ExecutiveSummary       string        `json:"executive_summary"`
	Personas               []Persona     `json:"stakeholder_personas"`
	UserStories            []UserStory   `json:"user_stories"`
	Requirements           []Requirement `json:"technical_requirements"`
	SuccessMetrics         []Metric      `json:"success_metrics"`
	DevelopmentApproach    Approach      `json:"development_approach"`
	ValidationRequirements []string      `json:"validation_requirements"`
}

// Generate builds the PRD from a snapshot, the recommended mode, and
// the user's validation rigor.
func Generate(snap concept.Snapshot, mode modes.ExecutionMode, rigor modes.ValidationRigor) Document {
	return Document{
		Metadata: Metadata{
			PRDVersion:      Version,
			ConceptID:       snap.ID,
			ConceptName:     snap.Name,
			GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
			ExecutionMode:   mode,
			ConceptMaturity: snap.ConceptMaturity,
			ValidationLevel: snap.ValidationLevel,
		},
		ExecutiveSummary:       executiveSummary(snap),
		Personas:               personas(snap),
		UserStories:            userStories(snap),
		Requirements:           requirements(snap),
		SuccessMetrics:         successMetrics(snap),
		DevelopmentApproach:    developmentApproach(mode),
		ValidationRequirements: validationRequirements(rigor),
	}
}

func executiveSummary(snap concept.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n\n", snap.Name, snap.Description)
	fmt.Fprintf(&b, "This solution serves %d key stakeholder types ", snap.StakeholderCount())

	if len(snap.Stories) > 0 {
		fmt.Fprintf(&b, "by %s. ", strings.ToLower(snap.Stories[0].ValueDelivered))
	}
	if len(snap.Challenges) > 0 {
		fmt.Fprintf(&b, "The concept has been stress-tested against %d challenge scenarios with validated solutions. ", len(snap.Challenges))
	}
	if len(snap.Enhancements) > 0 {
		fmt.Fprintf(&b, "Enhancement opportunities include %d amplification strategies for long-term success.", len(snap.Enhancements))
	}
	return b.String()
}

func personas(snap concept.Snapshot) []Persona {
	out := make([]Persona, 0, len(snap.Stories))
	for _, st := range snap.Stories {
		out = append(out, Persona{
			Name:              st.Name,
			Type:              string(st.Type),
			Role:              st.Role,
			CurrentSituation:  st.CurrentSituation,
			PainPoints:        st.PainPoints,
			Goals:             st.Goals,
			SuccessIndicators: st.SuccessIndicators,
			ValueReceived:     st.ValueDelivered,
		})
	}
	return out
}

func userStories(snap concept.Snapshot) []UserStory {
	out := make([]UserStory, 0, len(snap.Stories))
	for i, st := range snap.Stories {
		priority := "medium"
		if i < 2 {
			priority = "high"
		}
		out = append(out, UserStory{
			ID:          fmt.Sprintf("US-%03d", i+1),
			Stakeholder: st.Name,
			Story: fmt.Sprintf("As %s, I want to %s so that %s",
				st.Name, strings.ToLower(st.EnhancedExperience), strings.ToLower(st.ValueDelivered)),
			AcceptanceCriteria: st.SuccessIndicators,
			Priority:           priority,
		})
	}
	return out
}

func requirements(snap concept.Snapshot) []Requirement {
	var out []Requirement
	id := 1
	next := func() string {
		s := fmt.Sprintf("REQ-%03d", id)
		id++
		return s
	}

	for _, st := range snap.Stories {
		out = append(out, Requirement{
			ID:          next(),
			Type:        "functional",
			Description: fmt.Sprintf("System shall enable %s", strings.ToLower(st.EnhancedExperience)),
			Rationale:   fmt.Sprintf("Required to deliver value: %s", st.ValueDelivered),
			Stakeholder: st.Name,
			Priority:    "high",
		})
	}
	for _, c := range snap.Challenges {
		out = append(out, Requirement{
			ID:          next(),
			Type:        "constraint",
			Description: c.SolutionApproach,
			Rationale:   fmt.Sprintf("Addresses challenge: %s", truncate(c.Scenario, 100)),
			Priority:    "medium",
		})
	}
	for _, e := range snap.Enhancements {
		out = append(out, Requirement{
			ID:          next(),
			Type:        "enhancement",
			Description: e.ImplementationApproach,
			Rationale:   e.SuccessAmplification,
			Priority:    "low",
		})
	}
	return out
}

func successMetrics(snap concept.Snapshot) []Metric {
	var out []Metric

	for _, m := range snap.SuccessMetrics {
		out = append(out, Metric{Metric: m, Type: "business", Measurement: "TBD", Target: "TBD"})
	}
	for _, st := range snap.Stories {
		for _, ind := range st.SuccessIndicators {
			out = append(out, Metric{
				Metric:      ind,
				Type:        "stakeholder",
				Stakeholder: st.Name,
				Measurement: "TBD",
				Target:      "TBD",
			})
		}
	}
	out = append(out,
		Metric{Metric: "Stakeholder satisfaction", Type: "validation", Measurement: "Survey score", Target: ">4.0/5.0"},
		Metric{Metric: "Feature adoption rate", Type: "usage", Measurement: "% active users", Target: ">80%"},
	)
	return out
}

func developmentApproach(mode modes.ExecutionMode) Approach {
	switch mode {
	case modes.ModeKnowledgeGraph:
		return Approach{
			Methodology:   "Knowledge graph-validated development with 92%+ confidence",
			Validation:    "Multi-layer automated validation",
			Timeline:      "Thorough validation with predictable delivery",
			TeamStructure: "Structured team with validation specialists",
		}
	case modes.ModeHybrid:
		return Approach{
			Methodology:   "Adaptive approach combining human insight and AI validation",
			Validation:    "Context-aware validation selection",
			Timeline:      "Balanced speed and quality optimization",
			TeamStructure: "Flexible team with both approaches",
		}
	case modes.ModeCreative:
		return Approach{
			Methodology:   "Innovation-focused experimental development",
			Validation:    "Community feedback and creative breakthrough verification",
			Timeline:      "Exploration phase followed by focused development",
			TeamStructure: "Creative team with experimentation focus",
		}
	default:
		return Approach{
			Methodology:   "Human-guided development with AI assistance",
			Validation:    "Manual review and stakeholder feedback",
			Timeline:      "Fast iteration cycles",
			TeamStructure: "Small, cross-functional team",
		}
	}
}

func validationRequirements(rigor modes.ValidationRigor) []string {
	switch rigor {
	case modes.RigorHigh:
		return []string{
			"Comprehensive stakeholder validation",
			"Multi-scenario testing",
			"Performance and scalability testing",
			"Security validation",
		}
	case modes.RigorEnterprise:
		return []string{
			"Enterprise-grade validation protocols",
			"Compliance verification",
			"Full integration testing",
			"Business continuity validation",
			"Audit trail requirements",
		}
	default:
		return []string{
			"Stakeholder story alignment verification",
			"User acceptance testing",
			"Basic performance testing",
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
