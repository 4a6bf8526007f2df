// Package learning declares the capability contracts for validation and
// cross-project learning subsystems that are not built yet. The core
// engine depends only on these interfaces; callers can substitute fakes
// in tests and real implementations later without touching the engine.
package learning

import (
	"context"
	"errors"

	"github.com/genesis-cli/genesis/internal/concept"
)

// ErrNotImplemented marks a capability that is declared but not built.
// Callers must treat it as "feature absent", not as a failure.
var ErrNotImplemented = errors.New("learning subsystem not implemented")

// ValidationReport is the result of validating a concept against an
// external knowledge source.
type ValidationReport struct {
	Confidence float64  `json:"confidence"` // [0,1]
	Findings   []string `json:"findings,omitempty"`
}

// Validator checks a concept snapshot against an external knowledge
// source (knowledge graph, historical corpus).
type Validator interface {
	Validate(ctx context.Context, snap concept.Snapshot) (ValidationReport, error)
}

// Unimplemented satisfies Validator while the real subsystem is absent.
// Every method returns ErrNotImplemented.
type Unimplemented struct{}

var _ Validator = Unimplemented{}

// Validate always returns ErrNotImplemented.
func (Unimplemented) Validate(context.Context, concept.Snapshot) (ValidationReport, error) {
	return ValidationReport{}, ErrNotImplemented
}

// Status describes subsystem availability for health reporting.
func (Unimplemented) Status() string { return "stub" }
