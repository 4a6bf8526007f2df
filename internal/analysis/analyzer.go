// Package analysis - deterministic concept complexity scoring.
//
// The analyzer is the core of Genesis: it converts a concept snapshot
// into a multi-dimensional complexity analysis that drives execution-mode
// selection. All scoring is fixed arithmetic over counts and keyword
// matches: identical inputs always produce identical output, and
// missing narrative data degrades scores instead of failing.
package analysis

import (
	"strings"
	"time"

	"github.com/genesis-cli/genesis/internal/concept"
)

// Version identifies the analysis algorithm; it is embedded in every
// persisted analysis so old records stay interpretable.
const Version = "1.0.0"

// Dimension weights. The overall complexity score is the weighted sum of
// the five dimensions; the weights sum to 1.0.
const (
	WeightStakeholder = 0.30
	WeightTechnical   = 0.25
	WeightBusiness    = 0.20
	WeightIntegration = 0.15
	WeightUncertainty = 0.10
)

// Analysis is the immutable result of scoring one concept snapshot.
// Every dimensional score lives in [0,10]; AnalysisConfidence in [0,1].
type Analysis struct {
	ComplexityScore float64 `json:"complexity_score"`

	StakeholderComplexity float64 `json:"stakeholder_complexity"`
	TechnicalComplexity   float64 `json:"technical_complexity"`
	BusinessComplexity    float64 `json:"business_complexity"`
	IntegrationComplexity float64 `json:"integration_complexity"`
	UncertaintyLevel      float64 `json:"uncertainty_level"`

	StoryRichness        float64 `json:"story_richness"`
	NarrativeCoherence   float64 `json:"narrative_coherence"`
	StakeholderAlignment float64 `json:"stakeholder_alignment"`

	RiskFactors        []string `json:"risk_factors,omitempty"`
	AnalysisConfidence float64  `json:"analysis_confidence"`

	AnalyzedAt string `json:"analyzed_at,omitempty"` // RFC3339
	Version    string `json:"version,omitempty"`
}

// Analyzer scores concept snapshots against a keyword vocabulary.
type Analyzer struct {
	vocab Vocabulary
}

// New creates an Analyzer with the given vocabulary.
func New(vocab Vocabulary) *Analyzer {
	return &Analyzer{vocab: vocab}
}

// Analyze scores a snapshot across all dimensions. It is pure and never
// fails: empty stories, challenges, or enhancements contribute zero.
func (a *Analyzer) Analyze(snap concept.Snapshot) Analysis {
	stakeholder := clampDim(a.stakeholderComplexity(snap))
	technical := clampDim(a.technicalComplexity(snap))
	business := clampDim(a.businessComplexity(snap))
	integration := clampDim(a.integrationComplexity(snap))
	uncertainty := clampDim(a.uncertaintyLevel(snap))

	richness := clampDim(a.storyRichness(snap))
	coherence := clampDim(a.narrativeCoherence(snap))
	alignment := clampDim(a.stakeholderAlignment(snap))

	overall := stakeholder*WeightStakeholder +
		technical*WeightTechnical +
		business*WeightBusiness +
		integration*WeightIntegration +
		uncertainty*WeightUncertainty

	return Analysis{
		ComplexityScore:       overall,
		StakeholderComplexity: stakeholder,
		TechnicalComplexity:   technical,
		BusinessComplexity:    business,
		IntegrationComplexity: integration,
		UncertaintyLevel:      uncertainty,
		StoryRichness:         richness,
		NarrativeCoherence:    coherence,
		StakeholderAlignment:  alignment,
		RiskFactors:           a.riskFactors(snap, technical),
		AnalysisConfidence:    a.analysisConfidence(snap, richness),
		AnalyzedAt:            time.Now().UTC().Format(time.RFC3339),
		Version:               Version,
	}
}

// stakeholderComplexity scores the stakeholder ecosystem: head count,
// type diversity, resolved challenges, and the inverse of story
// confidence (shaky narratives mean harder coordination).
func (a *Analyzer) stakeholderComplexity(snap concept.Snapshot) float64 {
	countComplexity := min(float64(snap.StakeholderCount())/3.0, 3.0)
	typeComplexity := min(float64(snap.DistinctStakeholderTypes())/2.0, 2.0)
	challengeComplexity := min(float64(len(snap.Challenges))/2.0, 2.0)

	avgConfidence := 0.5 // neutral default with no stories
	if len(snap.Stories) > 0 {
		sum := 0.0
		for _, st := range snap.Stories {
			sum += st.StoryConfidence
		}
		avgConfidence = sum / float64(len(snap.Stories))
	}
	alignmentComplexity := (1.0 - avgConfidence) * 3.0

	return countComplexity + typeComplexity + challengeComplexity + alignmentComplexity
}

// technicalComplexity estimates implementation difficulty from concept
// immaturity, enhancement ambition, and technology mentions in stories.
func (a *Analyzer) technicalComplexity(snap concept.Snapshot) float64 {
	base := (1.0 - snap.ConceptMaturity) * 3.0

	enhancement := 0.0
	for _, e := range snap.Enhancements {
		switch t := strings.ToLower(e.Type); {
		case strings.Contains(t, "network"):
			enhancement += 1.5
		case strings.Contains(t, "integration"):
			enhancement += 1.0
		default:
			enhancement += 0.5
		}
	}
	enhancement = min(enhancement, 4.0)

	techMentions := 0.0
	for _, st := range snap.Stories {
		if countMatches(st.EnhancedExperience, a.vocab.Tech) > 0 {
			techMentions += 0.5
		}
	}
	techMentions = min(techMentions, 3.0)

	return base + enhancement + techMentions
}

// businessComplexity scores value-proposition spread, positioning depth,
// metric coverage, and business-model pressure in challenge solutions.
func (a *Analyzer) businessComplexity(snap concept.Snapshot) float64 {
	distinctValues := map[string]bool{}
	for _, st := range snap.Stories {
		distinctValues[st.ValueDelivered] = true
	}
	valueComplexity := min(float64(len(distinctValues))/2.0, 3.0)

	// More differentiation text means more complex positioning; with no
	// differentiation at all we assume moderate positioning work.
	marketComplexity := 1.0
	if snap.CompetitiveDifferentiation != "" {
		words := len(strings.Fields(snap.CompetitiveDifferentiation))
		marketComplexity = min(float64(words)/20.0, 2.0)
	}

	metricsComplexity := min(float64(len(snap.SuccessMetrics))/3.0, 2.0)

	challengeComplexity := 0.0
	for _, c := range snap.Challenges {
		if countMatches(c.SolutionApproach, a.vocab.Business) > 0 {
			challengeComplexity += 0.5
		}
	}
	challengeComplexity = min(challengeComplexity, 3.0)

	return valueComplexity + marketComplexity + metricsComplexity + challengeComplexity
}

// integrationComplexity scans stories, enhancements, and challenges for
// system-boundary vocabulary, with per-source mention caps.
func (a *Analyzer) integrationComplexity(snap concept.Snapshot) float64 {
	total := 0.0

	for _, st := range snap.Stories {
		mentions := countMatches(st.EnhancedExperience+" "+st.ValueDelivered, a.vocab.Integration)
		total += min(float64(mentions)*0.5, 2.0)
	}
	for _, e := range snap.Enhancements {
		mentions := countMatches(e.Description+" "+e.ImplementationApproach, a.vocab.Integration)
		total += min(float64(mentions)*0.3, 1.5)
	}
	for _, c := range snap.Challenges {
		mentions := countMatches(c.SolutionApproach+" "+c.ConceptEvolution, a.vocab.Integration)
		total += min(float64(mentions)*0.2, 1.0)
	}

	return total
}

// uncertaintyLevel scores what is still unknown: immaturity, missing
// stress-testing, shaky narrative confidence, and novelty.
func (a *Analyzer) uncertaintyLevel(snap concept.Snapshot) float64 {
	uncertainty := (1.0 - snap.ConceptMaturity) * 3.0

	if len(snap.Challenges) < 2 {
		uncertainty += 2.0
	}

	uncertainty += (1.0 - snap.NarrativeConfidence) * 2.0

	innovationMentions := 0
	for _, st := range snap.Stories {
		innovationMentions += countMatches(st.EnhancedExperience+" "+st.ValueDelivered, a.vocab.Innovation)
	}
	uncertainty += min(float64(innovationMentions)*0.5, 3.0)

	return uncertainty
}

// storyRichness averages per-story completeness (presence of the five
// narrative fields) and a text-length detail proxy.
func (a *Analyzer) storyRichness(snap concept.Snapshot) float64 {
	if len(snap.Stories) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, st := range snap.Stories {
		completeness := 0.0
		if st.CurrentSituation != "" {
			completeness += 1.0
		}
		if len(st.PainPoints) > 0 {
			completeness += min(float64(len(st.PainPoints))/3.0, 1.0)
		}
		if st.EnhancedExperience != "" {
			completeness += 1.0
		}
		if st.ValueDelivered != "" {
			completeness += 1.0
		}
		if len(st.SuccessIndicators) > 0 {
			completeness += min(float64(len(st.SuccessIndicators))/2.0, 1.0)
		}

		text := st.CurrentSituation + " " + st.EnhancedExperience + " " + st.ValueDelivered
		detail := min(float64(len(text))/200.0, 2.0)

		sum += (completeness + detail) / 2.0
	}

	return min(sum/float64(len(snap.Stories))*2.0, 10.0)
}

// narrativeCoherence measures lexical overlap between the stories' value
// statements, and between the concept description and story vocabulary.
// A single story gets a neutral score; there is nothing to compare.
func (a *Analyzer) narrativeCoherence(snap concept.Snapshot) float64 {
	if len(snap.Stories) < 2 {
		return 5.0
	}

	var valueWords []string
	for _, st := range snap.Stories {
		valueWords = append(valueWords, strings.Fields(strings.ToLower(st.ValueDelivered))...)
	}
	if len(valueWords) == 0 {
		return 3.0
	}

	unique := map[string]bool{}
	for _, w := range valueWords {
		unique[w] = true
	}
	overlapRatio := float64(len(valueWords)-len(unique)) / float64(len(valueWords))
	coherence := overlapRatio * 10.0

	conceptWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(snap.Description)) {
		conceptWords[w] = true
	}
	storyWords := map[string]bool{}
	for _, st := range snap.Stories {
		for _, w := range strings.Fields(strings.ToLower(st.ValueDelivered)) {
			storyWords[w] = true
		}
	}
	shared := 0
	for w := range conceptWords {
		if storyWords[w] {
			shared++
		}
	}
	alignment := float64(shared) / float64(max(len(conceptWords), 1)) * 10.0

	return (coherence + alignment) / 2.0
}

// stakeholderAlignment uses story confidence as the alignment proxy,
// penalized for conflict vocabulary in challenge scenarios.
func (a *Analyzer) stakeholderAlignment(snap concept.Snapshot) float64 {
	if len(snap.Stories) == 0 {
		return 5.0
	}

	sum := 0.0
	for _, st := range snap.Stories {
		sum += st.StoryConfidence
	}
	avg := sum / float64(len(snap.Stories))

	penalty := 0.0
	for _, c := range snap.Challenges {
		if countMatches(c.Scenario, a.vocab.Conflict) > 0 {
			penalty += 0.1
		}
	}

	return min(max(avg-penalty, 0.0)*10.0, 10.0)
}

// InnovationLevel estimates how novel the concept is on a 0-10 scale,
// scanning the concept description, story experiences, and enhancement
// descriptions for novelty vocabulary.
func (a *Analyzer) InnovationLevel(snap concept.Snapshot) float64 {
	var sb strings.Builder
	sb.WriteString(snap.Description)
	sb.WriteString(" ")
	for _, st := range snap.Stories {
		sb.WriteString(st.EnhancedExperience)
		sb.WriteString(" ")
		sb.WriteString(st.ValueDelivered)
		sb.WriteString(" ")
	}
	for _, e := range snap.Enhancements {
		sb.WriteString(e.Description)
		sb.WriteString(" ")
	}

	mentions := countMatches(sb.String(), a.vocab.innovationAll())
	return min(float64(mentions)/3.0, 1.0) * 10.0
}

// riskFactors lists the qualitative risks visible in the snapshot.
// technical is the already-computed technical dimension; the trigger is
// derived from analysis, never from a stored field.
func (a *Analyzer) riskFactors(snap concept.Snapshot, technical float64) []string {
	var risks []string

	if snap.StakeholderCount() > 5 {
		risks = append(risks, "High stakeholder complexity - coordination challenges")
	}
	if technical > 7 {
		risks = append(risks, "High technical complexity - implementation challenges")
	}
	if snap.CompetitiveDifferentiation == "" {
		risks = append(risks, "Unclear competitive differentiation")
	}
	if len(snap.Challenges) < 2 {
		risks = append(risks, "Insufficient challenge stress-testing")
	}
	if len(snap.SuccessMetrics) == 0 {
		risks = append(risks, "Undefined success metrics")
	}
	if a.InnovationLevel(snap) > 7 {
		risks = append(risks, "High innovation risk - unproven approach")
	}

	return risks
}

// analysisConfidence is the mean of five normalized factors: story
// completeness, concept maturity, validation level, challenge coverage,
// and narrative confidence.
func (a *Analyzer) analysisConfidence(snap concept.Snapshot, richness float64) float64 {
	validationScores := map[concept.ValidationLevel]float64{
		concept.LevelFoundation:   0.6,
		concept.LevelStressTested: 0.8,
		concept.LevelEnhanced:     1.0,
	}
	validationConfidence, ok := validationScores[snap.ValidationLevel]
	if !ok {
		validationConfidence = 0.5
	}

	factors := []float64{
		richness / 10.0,
		snap.ConceptMaturity,
		validationConfidence,
		min(float64(len(snap.Challenges))/3.0, 1.0),
		snap.NarrativeConfidence,
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	return min(sum/float64(len(factors)), 1.0)
}

// countMatches counts how many vocabulary entries occur in text.
// Each entry counts once regardless of repetition, matching on
// lowercase substring containment.
func countMatches(text string, keywords []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// clampDim bounds a dimensional score to [0,10].
func clampDim(v float64) float64 {
	return max(min(v, 10.0), 0.0)
}
