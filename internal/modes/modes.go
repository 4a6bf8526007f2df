// Package modes defines the four execution modes, the user preferences
// and project context they are scored against, and the per-mode
// suitability scorers.
package modes

import "fmt"

// ExecutionMode is a development strategy, differing in validation rigor
// and speed.
type ExecutionMode string

const (
	ModeLightweight    ExecutionMode = "lightweight"     // human-guided, fast iteration
	ModeKnowledgeGraph ExecutionMode = "knowledge_graph" // full validation rigor
	ModeHybrid         ExecutionMode = "hybrid"          // adaptive combination
	ModeCreative       ExecutionMode = "creative"        // innovation-focused experimentation
)

// Order is the canonical enumeration order. Tie-breaking during mode
// selection follows this order: the first maximum wins.
var Order = []ExecutionMode{ModeLightweight, ModeKnowledgeGraph, ModeHybrid, ModeCreative}

// validModes is the set of allowed execution modes.
var validModes = map[ExecutionMode]bool{
	ModeLightweight:    true,
	ModeKnowledgeGraph: true,
	ModeHybrid:         true,
	ModeCreative:       true,
}

// ValidateMode returns an error if the mode is not recognized.
func ValidateMode(m ExecutionMode) error {
	if !validModes[m] {
		return fmt.Errorf("invalid execution mode %q: must be one of: lightweight, knowledge_graph, hybrid, creative", m)
	}
	return nil
}
