package decisions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/genesis-cli/genesis/internal/modes"
)

// ErrOutcomeRecorded is returned when an outcome is reported for a
// decision that already has one. Outcomes are write-once.
var ErrOutcomeRecorded = errors.New("decision outcome already recorded")

// ErrDecisionNotFound is returned when the referenced decision does not
// exist in the store.
var ErrDecisionNotFound = errors.New("decision not found")

// Store keeps decisions and patterns as one JSON file per record under
// root/decisions and root/patterns, mirrored in memory for queries.
// All methods are safe for concurrent use.
type Store struct {
	decisionsDir string
	patternsDir  string
	logger       *slog.Logger

	mu        sync.RWMutex
	decisions map[string]Decision
	patterns  map[string]Pattern
}

// NewStore creates the storage directories under root if needed. It
// does not read existing records; call LoadAll for that.
func NewStore(root string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		decisionsDir: filepath.Join(root, "decisions"),
		patternsDir:  filepath.Join(root, "patterns"),
		logger:       logger,
		decisions:    make(map[string]Decision),
		patterns:     make(map[string]Pattern),
	}
	for _, dir := range []string{s.decisionsDir, s.patternsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// LoadAll reads every record from disk into memory. Files that fail to
// parse are skipped with a warning; one corrupt record never blocks the
// rest of the history.
func (s *Store) LoadAll() error {
	decisions, err := loadDir[Decision](s.decisionsDir, s.logger, "decision")
	if err != nil {
		return err
	}
	patterns, err := loadDir[Pattern](s.patternsDir, s.logger, "pattern")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range decisions {
		s.decisions[d.ID] = d
	}
	for _, p := range patterns {
		s.patterns[p.ID] = p
	}
	s.logger.Info("historical data loaded",
		"decisions", len(s.decisions),
		"patterns", len(s.patterns))
	return nil
}

func loadDir[T any](dir string, logger *slog.Logger, kind string) ([]T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s dir: %w", kind, err)
	}
	var out []T
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("failed to read "+kind, "file", path, "error", err)
			continue
		}
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			logger.Warn("skipping corrupt "+kind, "file", path, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// AppendDecision persists a decision and adds it to the in-memory view.
func (s *Store) AppendDecision(d Decision) error {
	if d.ID == "" {
		return fmt.Errorf("decision id is required")
	}
	if err := s.writeRecord(s.decisionsDir, d.ID, d); err != nil {
		return err
	}
	s.mu.Lock()
	s.decisions[d.ID] = d
	s.mu.Unlock()
	s.logger.Info("decision stored", "decision_id", d.ID)
	return nil
}

// SavePattern validates and persists a pattern, replacing any existing
// record with the same ID.
func (s *Store) SavePattern(p Pattern) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	if p.LastUpdated == "" {
		p.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.writeRecord(s.patternsDir, p.ID, p); err != nil {
		return err
	}
	s.mu.Lock()
	s.patterns[p.ID] = p
	s.mu.Unlock()
	return nil
}

func (s *Store) writeRecord(dir, id string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", id, err)
	}
	path := filepath.Join(dir, id+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing record %s: %w", id, err)
	}
	return nil
}

// Decision returns the decision with the given ID.
func (s *Store) Decision(id string) (Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.decisions[id]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrDecisionNotFound, id)
	}
	return d, nil
}

// Decisions returns all decisions sorted by timestamp ascending.
func (s *Store) Decisions() []Decision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Decision, 0, len(s.decisions))
	for _, d := range s.decisions {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DecidedAt < out[j].DecidedAt })
	return out
}

// Patterns returns all patterns sorted by success rate descending.
func (s *Store) Patterns() []Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Pattern, 0, len(s.patterns))
	for _, p := range s.patterns {
		out = append(out, p)
	}
	sortPatterns(out)
	return out
}

// UpdateOutcome records the result of a decision. The outcome is
// write-once: a second report returns ErrOutcomeRecorded.
func (s *Store) UpdateOutcome(id string, o Outcome) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.decisions[id]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrDecisionNotFound, id)
	}
	if d.OutcomeRecorded() {
		return Decision{}, fmt.Errorf("%w: %s", ErrOutcomeRecorded, id)
	}

	success := o.Success
	d.ProjectSuccess = &success
	d.SuccessMetrics = o.SuccessMetrics
	d.LessonsLearned = o.LessonsLearned
	d.CompletedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.writeRecord(s.decisionsDir, d.ID, d); err != nil {
		return Decision{}, err
	}
	s.decisions[d.ID] = d
	s.logger.Info("decision outcome recorded", "decision_id", d.ID, "success", o.Success)
	return d, nil
}

// RelevantPatterns returns the patterns covering the given complexity
// score and mode, best success rate first, at most three.
func (s *Store) RelevantPatterns(complexityScore float64, mode modes.ExecutionMode) []Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var relevant []Pattern
	for _, p := range s.patterns {
		if p.AppliesTo(complexityScore, mode) {
			relevant = append(relevant, p)
		}
	}
	sortPatterns(relevant)
	if len(relevant) > 3 {
		relevant = relevant[:3]
	}
	return relevant
}

// RelevantPatternNames implements recommend.PatternSource.
func (s *Store) RelevantPatternNames(complexityScore float64, mode modes.ExecutionMode) []string {
	patterns := s.RelevantPatterns(complexityScore, mode)
	names := make([]string, 0, len(patterns))
	for _, p := range patterns {
		names = append(names, p.Name)
	}
	return names
}

// sortPatterns orders by success rate descending, then ID for a stable
// result across runs.
func sortPatterns(ps []Pattern) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].SuccessRate != ps[j].SuccessRate {
			return ps[i].SuccessRate > ps[j].SuccessRate
		}
		return ps[i].ID < ps[j].ID
	})
}
