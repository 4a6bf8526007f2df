package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/genesis-cli/genesis/internal/decisions"
	"github.com/genesis-cli/genesis/internal/engine"
)

// RecordOutcomeTool handles the record_outcome MCP tool: reporting how
// a recommended project actually turned out. Outcomes feed the
// cross-project pattern history.
type RecordOutcomeTool struct {
	engine *engine.Engine
}

// NewRecordOutcomeTool creates a RecordOutcomeTool.
func NewRecordOutcomeTool(eng *engine.Engine) *RecordOutcomeTool {
	return &RecordOutcomeTool{engine: eng}
}

// Definition returns the MCP tool definition for registration.
func (t *RecordOutcomeTool) Definition() mcp.Tool {
	return mcp.NewTool("record_outcome",
		mcp.WithDescription(
			"Record the outcome of a past recommendation decision. Write-once: a "+
				"decision's outcome can be reported exactly one time. Requires the "+
				"decision_id returned by recommend_mode.",
		),
		mcp.WithString("decision_id",
			mcp.Required(),
			mcp.Description("The decision ID returned by recommend_mode."),
		),
		mcp.WithBoolean("success",
			mcp.Required(),
			mcp.Description("Whether the project succeeded."),
		),
		mcp.WithString("metrics",
			mcp.Description(`Measured success metrics as a JSON object of name to number, e.g. {"adoption_rate": 0.85}.`),
		),
		mcp.WithString("lessons",
			mcp.Description("Lessons learned as a JSON array of strings."),
		),
	)
}

// Handle processes the record_outcome tool call.
func (t *RecordOutcomeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	decisionID := req.GetString("decision_id", "")
	if decisionID == "" {
		return mcp.NewToolResultError("decision_id is required"), nil
	}
	success := req.GetBool("success", false)

	var metrics map[string]float64
	if raw := req.GetString("metrics", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metrics); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("parsing metrics: %v", err)), nil
		}
	}
	var lessons []string
	if raw := req.GetString("lessons", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &lessons); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("parsing lessons: %v", err)), nil
		}
	}

	decision, err := t.engine.RecordOutcome(ctx, decisionID, decisions.Outcome{
		Success:        success,
		SuccessMetrics: metrics,
		LessonsLearned: lessons,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := toJSON(decision)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}
