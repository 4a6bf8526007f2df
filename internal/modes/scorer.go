package modes

import "github.com/genesis-cli/genesis/internal/analysis"

// Mode scorers: each maps (analysis, preferences, context) to a [0,1]
// suitability score, built additively from a mode-specific base with
// threshold-gated boosts and penalties. The four scorers are independent:
// none observes another's state, so they may run in any order.

// Scores holds one suitability score per execution mode.
type Scores map[ExecutionMode]float64

// Best returns the top-scoring mode, breaking ties by enumeration order
// (first maximum wins), plus the remaining modes sorted descending.
func (s Scores) Best() (ExecutionMode, []ExecutionMode) {
	best := Order[0]
	for _, m := range Order[1:] {
		if s[m] > s[best] {
			best = m
		}
	}

	var rest []ExecutionMode
	for _, m := range Order {
		if m != best {
			rest = append(rest, m)
		}
	}
	// Insertion sort by score descending; equal scores keep
	// enumeration order.
	for i := 1; i < len(rest); i++ {
		for j := i; j > 0 && s[rest[j]] > s[rest[j-1]]; j-- {
			rest[j], rest[j-1] = rest[j-1], rest[j]
		}
	}
	return best, rest
}

// ScoreAll runs all four scorers.
func ScoreAll(a analysis.Analysis, p UserPreferences, ctx ProjectContext) Scores {
	return Scores{
		ModeLightweight:    ScoreLightweight(a, p, ctx),
		ModeKnowledgeGraph: ScoreKnowledgeGraph(a, p, ctx),
		ModeHybrid:         ScoreHybrid(a, p, ctx),
		ModeCreative:       ScoreCreative(a, p, ctx),
	}
}

// ScoreLightweight favors low-complexity, speed-oriented, small-team
// projects; high uncertainty counts against it.
func ScoreLightweight(a analysis.Analysis, p UserPreferences, _ ProjectContext) float64 {
	score := 0.5

	switch {
	case a.ComplexityScore <= 4.0:
		score += 0.3
	case a.ComplexityScore <= 6.0:
		score += 0.1
	default:
		score -= 0.2
	}

	if p.SpeedVsQuality > 0.6 {
		score += 0.2
	}
	if p.AIExperienceLevel >= 7 {
		score += 0.1
	}
	if p.TeamSize <= 3 {
		score += 0.1
	}
	if a.UncertaintyLevel > 7.0 {
		score -= 0.2
	}

	return clampUnit(score)
}

// ScoreKnowledgeGraph starts low (it is the most resource-intensive
// mode) and climbs with complexity and validation demands.
func ScoreKnowledgeGraph(a analysis.Analysis, p UserPreferences, ctx ProjectContext) float64 {
	score := 0.3

	switch {
	case a.ComplexityScore >= 7.0:
		score += 0.4
	case a.ComplexityScore >= 5.0:
		score += 0.2
	}

	switch p.ValidationLevel {
	case RigorEnterprise:
		score += 0.3
	case RigorHigh:
		score += 0.2
	}

	if p.ConfidenceThreshold >= 0.9 {
		score += 0.2
	}
	if p.SpeedVsQuality < 0.4 {
		score += 0.2
	}
	if ctx.StakeholderCount >= 5 {
		score += 0.2
	}
	if p.TimeConstraints == ConstraintTight {
		score -= 0.2
	}

	return clampUnit(score)
}

// ScoreHybrid carries the highest base, since the balanced approach is
// a reasonable default, and rewards middling everything.
func ScoreHybrid(a analysis.Analysis, p UserPreferences, _ ProjectContext) float64 {
	score := 0.6

	if a.ComplexityScore >= 4.0 && a.ComplexityScore <= 7.0 {
		score += 0.3
	}
	if p.SpeedVsQuality >= 0.3 && p.SpeedVsQuality <= 0.7 {
		score += 0.2
	}
	if p.TeamSize >= 2 && p.TeamSize <= 5 {
		score += 0.1
	}
	if p.ValidationLevel == RigorStandard {
		score += 0.1
	}
	if p.RiskTolerance >= 0.3 && p.RiskTolerance <= 0.7 {
		score += 0.1
	}

	return clampUnit(score)
}

// ScoreCreative rewards novelty and appetite for experimentation; tight
// time or budget counts against it.
func ScoreCreative(_ analysis.Analysis, p UserPreferences, ctx ProjectContext) float64 {
	score := 0.2

	switch {
	case ctx.InnovationLevel >= 0.7:
		score += 0.4
	case ctx.InnovationLevel >= 0.5:
		score += 0.2
	}

	if p.ExperimentationWillingness >= 0.7 {
		score += 0.3
	}
	if p.LearningMode {
		score += 0.2
	}
	if p.RiskTolerance >= 0.7 {
		score += 0.2
	}
	if p.TeamSize == 1 {
		score += 0.1
	}
	if p.TimeConstraints == ConstraintTight || p.BudgetConstraints == ConstraintTight {
		score -= 0.2
	}

	return clampUnit(score)
}

func clampUnit(v float64) float64 {
	return max(min(v, 1.0), 0.0)
}
