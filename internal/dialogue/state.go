// Package dialogue runs the three-level concept elicitation
// conversation: story foundation, challenge stress-testing, and
// enhancement exploration. It is a thin prompt loop over free-text
// input; all scoring happens downstream in the analyzer.
package dialogue

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/genesis-cli/genesis/internal/concept"
)

// Dialogue levels.
const (
	LevelFoundation    = 1 // gather stakeholder stories
	LevelStressTesting = 2 // surface and resolve challenges
	LevelEnhancement   = 3 // explore amplification opportunities
)

// Advancement gates. A level is complete only when its gate is met;
// the loop stays on the level otherwise.
const (
	minStories      = 2
	minChallenges   = 2
	minEnhancements = 1
)

// State is the resumable conversation state. It serializes to JSON for
// the session store.
type State struct {
	SessionID    string `json:"session_id"`
	CurrentLevel int    `json:"current_level"`

	Snapshot concept.Snapshot `json:"concept_document"`

	FoundationComplete  bool `json:"stakeholder_discovery_complete"`
	StressTestComplete  bool `json:"challenge_stress_testing_complete"`
	EnhancementComplete bool `json:"enhancement_exploration_complete"`

	Turns int `json:"conversation_turns"`
}

// NewState starts a fresh conversation for a named concept.
func NewState(name, description string) *State {
	now := time.Now().UTC().Format(time.RFC3339)
	return &State{
		SessionID:    uuid.NewString(),
		CurrentLevel: LevelFoundation,
		Snapshot: concept.Snapshot{
			ID:              uuid.NewString(),
			Name:            name,
			Description:     description,
			ValidationLevel: concept.LevelFoundation,
			CreatedAt:       now,
			UpdatedAt:       now,
			Version:         "1.0.0",
		},
	}
}

// LevelName returns the persistence label for the current level.
func (s *State) LevelName() string {
	switch s.CurrentLevel {
	case LevelStressTesting:
		return "stress_testing"
	case LevelEnhancement:
		return "enhancement"
	default:
		return "foundation"
	}
}

// CanAdvanceToStressTesting reports whether the foundation gate is met.
func (s *State) CanAdvanceToStressTesting() bool {
	return len(s.Snapshot.Stories) >= minStories
}

// CanAdvanceToEnhancement reports whether the stress-testing gate is met.
func (s *State) CanAdvanceToEnhancement() bool {
	return s.CanAdvanceToStressTesting() && len(s.Snapshot.Challenges) >= minChallenges
}

// Complete reports whether all three gates are met.
func (s *State) Complete() bool {
	return s.CanAdvanceToEnhancement() && len(s.Snapshot.Enhancements) >= minEnhancements
}

// Touch records a conversation turn and refreshes the snapshot
// timestamp. Derived maturity scores update on every turn so a resumed
// session never carries stale values.
func (s *State) Touch() {
	s.Turns++
	s.Snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.Snapshot.ConceptMaturity = s.Snapshot.MaturityScore()
}

// Marshal serializes the state for the session store.
func (s *State) Marshal() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Unmarshal restores a state saved by Marshal.
func Unmarshal(data string) (*State, error) {
	var s State
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
