package dialogue

import (
	"testing"

	"github.com/genesis-cli/genesis/internal/concept"
)

func TestNewState(t *testing.T) {
	s := NewState("TeamSync", "a shared planning board")

	if s.SessionID == "" {
		t.Error("SessionID should be generated")
	}
	if s.CurrentLevel != LevelFoundation {
		t.Errorf("CurrentLevel = %d, want foundation", s.CurrentLevel)
	}
	if s.Snapshot.Name != "TeamSync" || s.Snapshot.Description != "a shared planning board" {
		t.Errorf("snapshot = %+v, want name and description set", s.Snapshot)
	}
	if s.Snapshot.ValidationLevel != concept.LevelFoundation {
		t.Errorf("ValidationLevel = %q, want foundation", s.Snapshot.ValidationLevel)
	}
	if s.Snapshot.ID == "" || s.Snapshot.CreatedAt == "" {
		t.Error("snapshot ID and CreatedAt should be set")
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{LevelFoundation, "foundation"},
		{LevelStressTesting, "stress_testing"},
		{LevelEnhancement, "enhancement"},
		{0, "foundation"},
	}

	for _, tt := range tests {
		s := &State{CurrentLevel: tt.level}
		if got := s.LevelName(); got != tt.want {
			t.Errorf("LevelName(level=%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestAdvancementGates(t *testing.T) {
	s := NewState("x", "y")

	if s.CanAdvanceToStressTesting() {
		t.Error("fresh state should not pass the foundation gate")
	}

	s.Snapshot.Stories = []concept.StakeholderStory{{Name: "a"}, {Name: "b"}}
	if !s.CanAdvanceToStressTesting() {
		t.Error("two stories should pass the foundation gate")
	}
	if s.CanAdvanceToEnhancement() {
		t.Error("no challenges should block the stress-testing gate")
	}

	s.Snapshot.Challenges = []concept.ChallengeResolution{{Scenario: "a"}, {Scenario: "b"}}
	if !s.CanAdvanceToEnhancement() {
		t.Error("two challenges should pass the stress-testing gate")
	}
	if s.Complete() {
		t.Error("no enhancements should block completion")
	}

	s.Snapshot.Enhancements = []concept.Enhancement{{Type: "integration"}}
	if !s.Complete() {
		t.Error("one enhancement should complete the concept")
	}
}

func TestTouchRefreshesDerivedState(t *testing.T) {
	s := NewState("x", "y")
	s.Snapshot.Stories = []concept.StakeholderStory{{Name: "a"}, {Name: "b"}}

	before := s.Snapshot.ConceptMaturity
	s.Touch()

	if s.Turns != 1 {
		t.Errorf("Turns = %d, want 1", s.Turns)
	}
	if s.Snapshot.ConceptMaturity <= before {
		t.Errorf("ConceptMaturity should grow with stories: %v -> %v", before, s.Snapshot.ConceptMaturity)
	}
	if s.Snapshot.ConceptMaturity != s.Snapshot.MaturityScore() {
		t.Error("ConceptMaturity should match the derived score after Touch")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	s := NewState("TeamSync", "board")
	s.Snapshot.Stories = []concept.StakeholderStory{{Name: "Lead", StoryConfidence: 0.8}}
	s.CurrentLevel = LevelStressTesting
	s.Turns = 7

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.SessionID != s.SessionID || got.CurrentLevel != LevelStressTesting || got.Turns != 7 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if len(got.Snapshot.Stories) != 1 || got.Snapshot.Stories[0].Name != "Lead" {
		t.Errorf("round trip lost stories: %+v", got.Snapshot.Stories)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal("{not json"); err == nil {
		t.Error("Unmarshal should reject malformed state")
	}
}
