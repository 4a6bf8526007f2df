package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/genesis-cli/genesis/internal/modes"
	"github.com/genesis-cli/genesis/internal/prd"
)

// GeneratePRDTool handles the generate_prd MCP tool: turning a
// completed concept into a story-enhanced requirements document.
type GeneratePRDTool struct{}

// NewGeneratePRDTool creates a GeneratePRDTool.
func NewGeneratePRDTool() *GeneratePRDTool {
	return &GeneratePRDTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *GeneratePRDTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_prd",
		mcp.WithDescription(
			"Generate a story-enhanced PRD from a concept document. Every requirement "+
				"traces back to a stakeholder story (functional), resolved challenge "+
				"(constraint), or enhancement. Returns markdown by default; set "+
				"format=json for the structured document.",
		),
		mcp.WithString("concept",
			mcp.Required(),
			mcp.Description("The concept document as JSON."),
		),
		mcp.WithString("mode",
			mcp.Description("Execution mode for the development approach section (default hybrid)."),
		),
		mcp.WithString("validation_level",
			mcp.Description("Validation rigor: standard, high, or enterprise (default standard)."),
		),
		mcp.WithString("format",
			mcp.Description("Output format: markdown (default) or json."),
		),
	)
}

// Handle processes the generate_prd tool call.
func (t *GeneratePRDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := parseSnapshot(req.GetString("concept", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode := modes.ExecutionMode(req.GetString("mode", string(modes.ModeHybrid)))
	if err := modes.ValidateMode(mode); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rigor := modes.ValidationRigor(req.GetString("validation_level", string(modes.RigorStandard)))
	switch rigor {
	case modes.RigorStandard, modes.RigorHigh, modes.RigorEnterprise:
	default:
		return mcp.NewToolResultError("validation_level must be one of: standard, high, enterprise"), nil
	}

	doc := prd.Generate(snap, mode, rigor)

	if req.GetString("format", "markdown") == "json" {
		out, err := toJSON(doc)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(out), nil
	}

	md, err := prd.RenderMarkdown(doc)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(md), nil
}
