package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/genesis-cli/genesis/internal/analysis"
)

// ConceptAnalyzeTool handles the concept_analyze MCP tool: it scores a
// concept snapshot across the five complexity dimensions without making
// a mode recommendation.
type ConceptAnalyzeTool struct {
	analyzer *analysis.Analyzer
}

// NewConceptAnalyzeTool creates a ConceptAnalyzeTool.
func NewConceptAnalyzeTool(analyzer *analysis.Analyzer) *ConceptAnalyzeTool {
	return &ConceptAnalyzeTool{analyzer: analyzer}
}

// Definition returns the MCP tool definition for registration.
func (t *ConceptAnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("concept_analyze",
		mcp.WithDescription(
			"Analyze a concept document for development complexity. "+
				"Scores five dimensions (stakeholder, technical, business, integration, "+
				"uncertainty) on 0-10 scales plus narrative quality metrics, and lists "+
				"qualitative risk factors. The analysis is deterministic: the same "+
				"concept always produces the same scores.",
		),
		mcp.WithString("concept",
			mcp.Required(),
			mcp.Description(
				"The concept document as JSON: name, description, stakeholder stories, "+
					"resolved challenges, enhancements, success metrics, and validation level.",
			),
		),
	)
}

// Handle processes the concept_analyze tool call.
func (t *ConceptAnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := parseSnapshot(req.GetString("concept", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a := t.analyzer.Analyze(snap)

	payload := struct {
		analysis.Analysis
		ComplexityLevel analysis.Level          `json:"complexity_level"`
		ConfidenceLevel analysis.ConfidenceBand `json:"confidence_level"`
	}{
		Analysis:        a,
		ComplexityLevel: a.Level(),
		ConfidenceLevel: a.ConfidenceLevel(),
	}

	out, err := toJSON(payload)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}
