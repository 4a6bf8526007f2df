package concept

// Derived scores are computed on read and never stored on the snapshot,
// so a stale stored value can never disagree with the data it summarizes.

// MaturityScore measures how complete the concept's development is:
// stakeholder coverage weighs 40%, challenge resolution 30%, enhancement
// exploration 20%, and validation level 10%.
func (s Snapshot) MaturityScore() float64 {
	score := 0.0

	switch n := len(s.Stories); {
	case n >= 3:
		score += 0.4
	case n >= 2:
		score += 0.3
	case n >= 1:
		score += 0.2
	}

	switch n := len(s.Challenges); {
	case n >= 3:
		score += 0.3
	case n >= 2:
		score += 0.2
	case n >= 1:
		score += 0.1
	}

	switch n := len(s.Enhancements); {
	case n >= 2:
		score += 0.2
	case n >= 1:
		score += 0.1
	}

	switch s.ValidationLevel {
	case LevelEnhanced:
		score += 0.1
	case LevelStressTested:
		score += 0.07
	case LevelFoundation:
		score += 0.03
	}

	return min(score, 1.0)
}

// PRDReadiness measures whether the concept carries enough validated
// narrative to drive a requirements document.
func (s Snapshot) PRDReadiness() float64 {
	readiness := 0.0

	if len(s.Stories) >= 2 {
		readiness += 0.3
	}
	if len(s.Challenges) >= 2 {
		readiness += 0.3
	}
	if len(s.Enhancements) >= 1 {
		readiness += 0.2
	}
	if s.ValidationLevel == LevelStressTested || s.ValidationLevel == LevelEnhanced {
		readiness += 0.2
	}

	return min(readiness, 1.0)
}
