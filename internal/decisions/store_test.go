package decisions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/genesis-cli/genesis/internal/logging"
	"github.com/genesis-cli/genesis/internal/modes"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), logging.NewDiscard())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func testPattern(id string, successRate float64) Pattern {
	return Pattern{
		ID:              id,
		Name:            "pattern " + id,
		Type:            "success",
		ComplexityRange: [2]float64{3.0, 8.0},
		SuccessRate:     successRate,
		SampleSize:      5,
		ApplicableModes: []modes.ExecutionMode{modes.ModeHybrid},
	}
}

func testDecision(id string) Decision {
	return Decision{
		ID:         id,
		UserChoice: modes.ModeHybrid,
		DecidedAt:  "2026-01-0" + id[len(id)-1:] + "T00:00:00Z",
	}
}

// --- Persistence round-trips ---

func TestStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	s, err := NewStore(root, logging.NewDiscard())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	d := testDecision("d1")
	if err := s.AppendDecision(d); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}
	if err := s.SavePattern(testPattern("p1", 0.8)); err != nil {
		t.Fatalf("SavePattern: %v", err)
	}

	// A fresh store over the same root sees the records after LoadAll.
	reopened, err := NewStore(root, logging.NewDiscard())
	if err != nil {
		t.Fatalf("NewStore (reopen): %v", err)
	}
	if err := reopened.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	got, err := reopened.Decision("d1")
	if err != nil {
		t.Fatalf("Decision: %v", err)
	}
	if got.UserChoice != modes.ModeHybrid {
		t.Errorf("reloaded decision UserChoice = %q, want hybrid", got.UserChoice)
	}
	if len(reopened.Patterns()) != 1 {
		t.Errorf("reloaded patterns = %d, want 1", len(reopened.Patterns()))
	}
}

func TestLoadAllSkipsCorruptRecords(t *testing.T) {
	root := t.TempDir()
	s, err := NewStore(root, logging.NewDiscard())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.AppendDecision(testDecision("d1")); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}

	corrupt := filepath.Join(root, "decisions", "broken.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}
	notJSON := filepath.Join(root, "decisions", "notes.txt")
	if err := os.WriteFile(notJSON, []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("writing stray file: %v", err)
	}

	reopened, err := NewStore(root, logging.NewDiscard())
	if err != nil {
		t.Fatalf("NewStore (reopen): %v", err)
	}
	if err := reopened.LoadAll(); err != nil {
		t.Fatalf("LoadAll should skip corrupt records, got: %v", err)
	}
	if got := len(reopened.Decisions()); got != 1 {
		t.Errorf("loaded %d decisions, want 1 (corrupt record skipped)", got)
	}
}

func TestAppendDecisionRequiresID(t *testing.T) {
	s := newTestStore(t)
	if err := s.AppendDecision(Decision{}); err == nil {
		t.Error("AppendDecision without ID should fail")
	}
}

func TestDecisionsSortedByTimestamp(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"d3", "d1", "d2"} {
		if err := s.AppendDecision(testDecision(id)); err != nil {
			t.Fatalf("AppendDecision(%s): %v", id, err)
		}
	}

	got := s.Decisions()
	if len(got) != 3 {
		t.Fatalf("Decisions() = %d records, want 3", len(got))
	}
	for i, want := range []string{"d1", "d2", "d3"} {
		if got[i].ID != want {
			t.Errorf("Decisions()[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

// --- Outcome tracking ---

func TestUpdateOutcomeWriteOnce(t *testing.T) {
	s := newTestStore(t)
	if err := s.AppendDecision(testDecision("d1")); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}

	d, err := s.UpdateOutcome("d1", Outcome{
		Success:        true,
		SuccessMetrics: map[string]float64{"quality": 0.9},
		LessonsLearned: []string{"start validation earlier"},
	})
	if err != nil {
		t.Fatalf("UpdateOutcome: %v", err)
	}
	if d.ProjectSuccess == nil || !*d.ProjectSuccess {
		t.Error("ProjectSuccess should be true after recording")
	}
	if d.CompletedAt == "" {
		t.Error("CompletedAt should be set after recording")
	}

	_, err = s.UpdateOutcome("d1", Outcome{Success: false})
	if !errors.Is(err, ErrOutcomeRecorded) {
		t.Errorf("second UpdateOutcome error = %v, want ErrOutcomeRecorded", err)
	}
}

func TestUpdateOutcomeUnknownDecision(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateOutcome("missing", Outcome{Success: true})
	if !errors.Is(err, ErrDecisionNotFound) {
		t.Errorf("UpdateOutcome error = %v, want ErrDecisionNotFound", err)
	}
}

// --- Pattern validation and relevance ---

func TestPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pattern)
		wantErr bool
	}{
		{"valid pattern", func(p *Pattern) {}, false},
		{"missing id", func(p *Pattern) { p.ID = "" }, true},
		{"missing name", func(p *Pattern) { p.Name = "" }, true},
		{"success rate above one", func(p *Pattern) { p.SuccessRate = 1.1 }, true},
		{"negative success rate", func(p *Pattern) { p.SuccessRate = -0.1 }, true},
		{"zero sample size", func(p *Pattern) { p.SampleSize = 0 }, true},
		{"inverted complexity range", func(p *Pattern) { p.ComplexityRange = [2]float64{8, 3} }, true},
		{"bad applicable mode", func(p *Pattern) { p.ApplicableModes = []modes.ExecutionMode{"agile"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPattern("p1", 0.8)
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestPatternAppliesTo(t *testing.T) {
	p := testPattern("p1", 0.8)

	tests := []struct {
		name  string
		score float64
		mode  modes.ExecutionMode
		want  bool
	}{
		{"inside range matching mode", 5.0, modes.ModeHybrid, true},
		{"low boundary", 3.0, modes.ModeHybrid, true},
		{"high boundary", 8.0, modes.ModeHybrid, true},
		{"below range", 2.9, modes.ModeHybrid, false},
		{"above range", 8.1, modes.ModeHybrid, false},
		{"wrong mode", 5.0, modes.ModeCreative, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.AppliesTo(tt.score, tt.mode); got != tt.want {
				t.Errorf("AppliesTo(%v, %s) = %v, want %v", tt.score, tt.mode, got, tt.want)
			}
		})
	}
}

func TestRelevantPatternsTopThree(t *testing.T) {
	s := newTestStore(t)
	for i, rate := range []float64{0.5, 0.9, 0.7, 0.8, 0.6} {
		if err := s.SavePattern(testPattern(fmt.Sprintf("p%d", i), rate)); err != nil {
			t.Fatalf("SavePattern: %v", err)
		}
	}
	// One pattern outside the queried mode.
	other := testPattern("px", 0.99)
	other.ApplicableModes = []modes.ExecutionMode{modes.ModeCreative}
	if err := s.SavePattern(other); err != nil {
		t.Fatalf("SavePattern: %v", err)
	}

	got := s.RelevantPatterns(5.0, modes.ModeHybrid)
	if len(got) != 3 {
		t.Fatalf("RelevantPatterns = %d entries, want 3", len(got))
	}
	wantRates := []float64{0.9, 0.8, 0.7}
	for i, p := range got {
		if p.SuccessRate != wantRates[i] {
			t.Errorf("RelevantPatterns[%d].SuccessRate = %v, want %v", i, p.SuccessRate, wantRates[i])
		}
	}

	names := s.RelevantPatternNames(5.0, modes.ModeHybrid)
	if len(names) != 3 || names[0] != "pattern p1" {
		t.Errorf("RelevantPatternNames = %v, want best pattern first", names)
	}
}

func TestSavePatternRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	bad := testPattern("p1", 2.0)
	if err := s.SavePattern(bad); err == nil {
		t.Error("SavePattern should reject an out-of-range success rate")
	}
}
