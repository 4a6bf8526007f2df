package analysis

// Vocabulary holds the keyword tables the analyzer scans narrative text
// with. They are plain data passed to New, so scoring logic can be
// tested against a controlled vocabulary and the tables can be swapped
// without touching the formulas.
type Vocabulary struct {
	// Tech are the technology markers scanned in story experiences.
	Tech []string
	// Integration are the system-boundary markers scanned across
	// stories, enhancements, and challenge resolutions.
	Integration []string
	// Business are the business-model markers scanned in challenge
	// solution text.
	Business []string
	// Innovation are the novelty markers used for uncertainty scoring.
	Innovation []string
	// Disruption extends Innovation for the overall innovation-level
	// estimate; uncertainty scoring uses Innovation alone.
	Disruption []string
	// Conflict are the stakeholder-tension markers scanned in challenge
	// scenarios.
	Conflict []string
}

// DefaultVocabulary returns the standard keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Tech: []string{"ai", "machine learning", "real-time", "api", "integration"},
		Integration: []string{
			"api", "integration", "connect", "sync", "import", "export",
			"third-party", "platform", "system", "database", "crm", "erp",
		},
		Business: []string{"business model", "revenue", "pricing", "market", "competition"},
		Innovation: []string{
			"new", "novel", "innovative", "first", "revolutionary", "breakthrough",
		},
		Disruption: []string{"disrupted", "transform", "reinvent", "unprecedented"},
		Conflict:   []string{"conflict", "disagree", "oppose", "resist", "against"},
	}
}

// innovationAll returns the combined novelty table used by the
// innovation-level estimate.
func (v Vocabulary) innovationAll() []string {
	all := make([]string, 0, len(v.Innovation)+len(v.Disruption))
	all = append(all, v.Innovation...)
	return append(all, v.Disruption...)
}
