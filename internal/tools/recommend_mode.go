package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/genesis-cli/genesis/internal/engine"
	"github.com/genesis-cli/genesis/internal/modes"
)

// RecommendModeTool handles the recommend_mode MCP tool: the full
// pipeline from concept to execution-mode recommendation, recording a
// decision when history persistence is available.
type RecommendModeTool struct {
	engine *engine.Engine
}

// NewRecommendModeTool creates a RecommendModeTool.
func NewRecommendModeTool(eng *engine.Engine) *RecommendModeTool {
	return &RecommendModeTool{engine: eng}
}

// Definition returns the MCP tool definition for registration.
func (t *RecommendModeTool) Definition() mcp.Tool {
	return mcp.NewTool("recommend_mode",
		mcp.WithDescription(
			"Recommend a development execution mode (lightweight, knowledge_graph, "+
				"hybrid, creative) for a concept. Runs complexity analysis, scores all "+
				"four modes against the user's preferences, and returns the winner with "+
				"rationale, alternatives, validation requirements, timeline estimate, "+
				"risks, mitigations, and success factors. The decision is recorded for "+
				"cross-project learning when storage is available.",
		),
		mcp.WithString("concept",
			mcp.Required(),
			mcp.Description("The concept document as JSON."),
		),
		mcp.WithString("preferences",
			mcp.Description(
				"User preferences as JSON (risk_tolerance, speed_vs_quality, team_size, "+
					"validation_level, etc). Omitted fields keep their defaults.",
			),
		),
		mcp.WithString("constraints",
			mcp.Description(
				"Optional project constraints as JSON: timeline, regulatory (list), "+
					"scalability.",
			),
		),
	)
}

// Handle processes the recommend_mode tool call.
func (t *RecommendModeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := parseSnapshot(req.GetString("concept", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	prefs, err := parsePreferences(req.GetString("preferences", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var constraints struct {
		Timeline    string   `json:"timeline"`
		Regulatory  []string `json:"regulatory"`
		Scalability string   `json:"scalability"`
	}
	if raw := req.GetString("constraints", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &constraints); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("parsing constraints: %v", err)), nil
		}
	}

	result, err := t.engine.Recommend(ctx, engine.Request{
		Snapshot:    snap,
		Preferences: prefs,
		Constraints: modes.Constraints{
			Timeline:    constraints.Timeline,
			Regulatory:  constraints.Regulatory,
			Scalability: constraints.Scalability,
		},
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := toJSON(result)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}
