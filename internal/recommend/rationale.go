package recommend

import (
	"fmt"
	"strings"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/modes"
)

// buildRationale assembles the human-readable justification: a
// mode-specific clause, optional supporting clauses when their
// conditions hold, and a trailing confidence clause. Clauses are joined
// with ". " and the whole string ends with a period.
func buildRationale(mode modes.ExecutionMode, a analysis.Analysis, p modes.UserPreferences, confidence float64) string {
	var parts []string

	switch mode {
	case modes.ModeLightweight:
		parts = append(parts, fmt.Sprintf("Lightweight mode recommended for moderate complexity (%.1f/10)", a.ComplexityScore))
		if p.SpeedVsQuality > 0.6 {
			parts = append(parts, "matches your speed preference")
		}
		if a.UncertaintyLevel < 5.0 {
			parts = append(parts, "low uncertainty allows human-guided approach")
		}
	case modes.ModeKnowledgeGraph:
		parts = append(parts, fmt.Sprintf("Knowledge graph mode recommended for high complexity (%.1f/10)", a.ComplexityScore))
		if p.ConfidenceThreshold >= 0.9 {
			parts = append(parts, "meets your high confidence requirements")
		}
		if a.StakeholderComplexity > 6.0 {
			parts = append(parts, "complex stakeholder ecosystem benefits from validation")
		}
	case modes.ModeHybrid:
		parts = append(parts, fmt.Sprintf("Hybrid mode balances complexity (%.1f/10) with efficiency", a.ComplexityScore))
		parts = append(parts, "provides validation where needed while maintaining development speed")
	case modes.ModeCreative:
		parts = append(parts, "Creative mode enables innovation experimentation")
		if p.ExperimentationWillingness > 0.6 {
			parts = append(parts, "matches your willingness to experiment")
		}
	}

	switch {
	case confidence > 0.8:
		parts = append(parts, fmt.Sprintf("High confidence (%s) in this recommendation", percent(confidence)))
	case confidence > 0.6:
		parts = append(parts, fmt.Sprintf("Moderate confidence (%s) - consider alternatives", percent(confidence)))
	default:
		parts = append(parts, fmt.Sprintf("Lower confidence (%s) - manual selection recommended", percent(confidence)))
	}

	return strings.Join(parts, ". ") + "."
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// validationRequirements returns the fixed per-mode requirement list,
// extended with complexity-triggered entries.
func validationRequirements(mode modes.ExecutionMode, a analysis.Analysis) []string {
	var reqs []string

	switch mode {
	case modes.ModeLightweight:
		reqs = append(reqs,
			"Human review of core features",
			"Stakeholder feedback validation",
			"Basic testing coverage",
		)
	case modes.ModeKnowledgeGraph:
		reqs = append(reqs,
			"Multi-layer validation with 92%+ confidence",
			"API existence verification through knowledge graphs",
			"Hallucination detection on generated code",
			"Cross-project pattern validation",
			"Comprehensive testing suite",
		)
	case modes.ModeHybrid:
		reqs = append(reqs,
			"Adaptive validation based on feature complexity",
			"Knowledge graph validation for critical components",
			"Human review for creative elements",
			"Stakeholder story alignment verification",
		)
	case modes.ModeCreative:
		reqs = append(reqs,
			"Innovation pattern validation",
			"Creative breakthrough verification",
			"Community feedback integration",
			"Experimental approach documentation",
		)
	}

	if a.ComplexityScore > 7.0 {
		reqs = append(reqs, "Enterprise-grade validation protocols")
	}
	if a.StakeholderComplexity > 6.0 {
		reqs = append(reqs, "Multi-stakeholder acceptance testing")
	}

	return reqs
}

// baseTimelineDays is the per-mode baseline before complexity and
// stakeholder adjustments.
var baseTimelineDays = map[modes.ExecutionMode]float64{
	modes.ModeLightweight:    5,
	modes.ModeHybrid:         10,
	modes.ModeKnowledgeGraph: 20,
	modes.ModeCreative:       15,
}

// estimateTimeline converts the adjusted day count to one of four
// coarse buckets. Estimates are monotone in complexity for a fixed mode.
func estimateTimeline(mode modes.ExecutionMode, a analysis.Analysis, ctx modes.ProjectContext) string {
	days := baseTimelineDays[mode] * (1.0 + a.ComplexityScore/10.0)
	if ctx.StakeholderCount > 5 {
		days *= 1.2
	}

	switch {
	case days <= 7:
		return "5-7 days"
	case days <= 14:
		return "1-2 weeks"
	case days <= 30:
		return "2-4 weeks"
	default:
		return "1-2 months"
	}
}

// risksAndMitigations returns parallel slices: mitigations[i] addresses
// risks[i].
func risksAndMitigations(mode modes.ExecutionMode, a analysis.Analysis) (risks, mitigations []string) {
	switch mode {
	case modes.ModeLightweight:
		if a.ComplexityScore > 6.0 {
			risks = append(risks, "May miss complex validation requirements")
			mitigations = append(mitigations, "Regular complexity reassessment with upgrade path")
		}
	case modes.ModeKnowledgeGraph:
		risks = append(risks, "Higher resource requirements")
		mitigations = append(mitigations, "Phased implementation with core features first")
	case modes.ModeCreative:
		risks = append(risks, "Experimental approach may not scale")
		mitigations = append(mitigations, "Proof-of-concept validation before full implementation")
	}

	if a.UncertaintyLevel > 7.0 {
		risks = append(risks, "High uncertainty may impact delivery")
		mitigations = append(mitigations, "Iterative validation with frequent stakeholder feedback")
	}
	if a.StakeholderComplexity > 6.0 {
		risks = append(risks, "Stakeholder coordination challenges")
		mitigations = append(mitigations, "Dedicated stakeholder management and clear communication protocols")
	}

	return risks, mitigations
}

// successFactors returns the universal factors plus mode- and
// context-specific ones.
func successFactors(mode modes.ExecutionMode, a analysis.Analysis, p modes.UserPreferences) []string {
	factors := []string{
		"Clear stakeholder story alignment",
		"Regular progress validation",
		"Adaptive approach based on learning",
	}

	switch mode {
	case modes.ModeLightweight:
		factors = append(factors,
			"Strong human oversight and decision-making",
			"Effective stakeholder communication",
			"Rapid iteration and feedback cycles",
		)
	case modes.ModeKnowledgeGraph:
		factors = append(factors,
			"Comprehensive validation at each step",
			"Knowledge graph accuracy and completeness",
			"Cross-project learning integration",
		)
	case modes.ModeHybrid:
		factors = append(factors,
			"Smart delegation between human and AI",
			"Context-aware validation selection",
			"Balanced speed and quality optimization",
		)
	case modes.ModeCreative:
		factors = append(factors,
			"Community feedback and collaboration",
			"Innovation pattern recognition",
			"Experimental approach documentation",
		)
	}

	if a.ComplexityScore > 7.0 {
		factors = append(factors, "Enterprise-grade project management")
	}
	if p.TeamSize > 3 {
		factors = append(factors, "Effective team coordination and communication")
	}

	return factors
}
