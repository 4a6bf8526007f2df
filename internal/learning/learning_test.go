package learning

import (
	"context"
	"errors"
	"testing"

	"github.com/genesis-cli/genesis/internal/concept"
)

func TestUnimplementedValidator(t *testing.T) {
	var v Validator = Unimplemented{}

	_, err := v.Validate(context.Background(), concept.Snapshot{Name: "x"})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Validate error = %v, want ErrNotImplemented", err)
	}
}

func TestUnimplementedStatus(t *testing.T) {
	if got := (Unimplemented{}).Status(); got != "stub" {
		t.Errorf("Status() = %q, want stub", got)
	}
}
