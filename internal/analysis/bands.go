package analysis

// Band labels are derived from scores on read and never stored, so a
// persisted record can never carry a label that disagrees with its score.

// Level is the human-readable complexity band.
type Level string

const (
	LevelSimple     Level = "simple"
	LevelModerate   Level = "moderate"
	LevelComplex    Level = "complex"
	LevelEnterprise Level = "enterprise"
)

// LevelFor maps an overall complexity score to its band.
func LevelFor(score float64) Level {
	switch {
	case score <= 3.0:
		return LevelSimple
	case score <= 6.0:
		return LevelModerate
	case score <= 8.0:
		return LevelComplex
	default:
		return LevelEnterprise
	}
}

// ConfidenceBand is the human-readable analysis-confidence band.
type ConfidenceBand string

const (
	ConfidenceLow      ConfidenceBand = "low"
	ConfidenceModerate ConfidenceBand = "moderate"
	ConfidenceHigh     ConfidenceBand = "high"
	ConfidenceVeryHigh ConfidenceBand = "very_high"
)

// ConfidenceBandFor maps an analysis confidence to its band.
func ConfidenceBandFor(confidence float64) ConfidenceBand {
	switch {
	case confidence < 0.70:
		return ConfidenceLow
	case confidence < 0.85:
		return ConfidenceModerate
	case confidence < 0.95:
		return ConfidenceHigh
	default:
		return ConfidenceVeryHigh
	}
}

// Level returns the complexity band for this analysis.
func (a Analysis) Level() Level {
	return LevelFor(a.ComplexityScore)
}

// ConfidenceLevel returns the confidence band for this analysis.
func (a Analysis) ConfidenceLevel() ConfidenceBand {
	return ConfidenceBandFor(a.AnalysisConfidence)
}
