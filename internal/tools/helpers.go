// Package tools implements the MCP tool handlers for Genesis.
//
// Each tool is a struct that receives its dependencies (the engine) and
// exposes Definition/Handle, one file per tool. Handlers return
// mcp.NewToolResultError for caller mistakes and a Go error only for
// infrastructure failures.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/genesis-cli/genesis/internal/concept"
	"github.com/genesis-cli/genesis/internal/modes"
)

// parseSnapshot decodes the concept JSON argument.
func parseSnapshot(raw string) (concept.Snapshot, error) {
	var snap concept.Snapshot
	if raw == "" {
		return snap, fmt.Errorf("concept is required")
	}
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return snap, fmt.Errorf("parsing concept: %w", err)
	}
	if snap.Name == "" {
		return snap, fmt.Errorf("concept name is required")
	}
	return snap, nil
}

// parsePreferences decodes the preferences JSON argument, falling back
// to defaults when absent. Values are overlaid on the default set so a
// partial preferences object never zeroes the rest.
func parsePreferences(raw string) (modes.UserPreferences, error) {
	prefs := modes.DefaultPreferences()
	if raw == "" {
		return prefs, nil
	}
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}
	return prefs, nil
}

// toJSON renders a tool result payload.
func toJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data), nil
}
