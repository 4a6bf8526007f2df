package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/genesis-cli/genesis/internal/engine"
	"github.com/genesis-cli/genesis/internal/modes"
)

// FindPatternsTool handles the find_patterns MCP tool: querying
// historical cross-project patterns by complexity score and mode.
type FindPatternsTool struct {
	engine *engine.Engine
}

// NewFindPatternsTool creates a FindPatternsTool.
func NewFindPatternsTool(eng *engine.Engine) *FindPatternsTool {
	return &FindPatternsTool{engine: eng}
}

// Definition returns the MCP tool definition for registration.
func (t *FindPatternsTool) Definition() mcp.Tool {
	return mcp.NewTool("find_patterns",
		mcp.WithDescription(
			"Find historical cross-project patterns relevant to a complexity score "+
				"and execution mode. Returns at most three patterns, best success rate "+
				"first. An empty result means no recorded history covers this case.",
		),
		mcp.WithNumber("complexity_score",
			mcp.Required(),
			mcp.Description("Overall complexity score (0-10)."),
		),
		mcp.WithString("mode",
			mcp.Required(),
			mcp.Description("Execution mode: lightweight, knowledge_graph, hybrid, or creative."),
		),
	)
}

// Handle processes the find_patterns tool call.
func (t *FindPatternsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	score := req.GetFloat("complexity_score", -1)
	if score < 0 || score > 10 {
		return mcp.NewToolResultError(fmt.Sprintf("complexity_score must be in [0,10], got %g", score)), nil
	}

	mode := modes.ExecutionMode(req.GetString("mode", ""))
	if err := modes.ValidateMode(mode); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	patterns := t.engine.FindPatterns(score, mode)

	out, err := toJSON(struct {
		Patterns any `json:"patterns"`
		Count    int `json:"count"`
	}{Patterns: patterns, Count: len(patterns)})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}
