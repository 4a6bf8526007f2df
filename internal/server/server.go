// Package server wires all MCP components and creates the server
// instance. This is the composition root: it creates concrete
// implementations and injects them into the tools that depend on them.
// No business logic lives here, only wiring.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/decisions"
	"github.com/genesis-cli/genesis/internal/engine"
	"github.com/genesis-cli/genesis/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Options configures server construction.
type Options struct {
	// StorageRoot holds the decision/pattern history. Empty disables
	// persistence.
	StorageRoot string
	Logger      *slog.Logger
}

// New creates and configures the MCP server with all tools, the start
// prompt, and the health resource registered.
//
// Storage initialization failure degrades the server rather than
// killing it: the engine runs without history and the condition shows
// up in the health resource.
func New(ctx context.Context, opts Options) (*server.MCPServer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// --- Create shared dependencies ---

	analyzer := analysis.New(analysis.DefaultVocabulary())

	var store *decisions.Store
	if opts.StorageRoot != "" {
		var err error
		store, err = decisions.NewStore(opts.StorageRoot, logger)
		if err != nil {
			logger.Warn("decision storage disabled", "error", err)
			store = nil
		}
	}

	eng := engine.New(analyzer, store, logger)
	eng.Start(ctx)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"genesis",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	analyzeTool := tools.NewConceptAnalyzeTool(analyzer)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	recommendTool := tools.NewRecommendModeTool(eng)
	s.AddTool(recommendTool.Definition(), recommendTool.Handle)

	outcomeTool := tools.NewRecordOutcomeTool(eng)
	s.AddTool(outcomeTool.Definition(), outcomeTool.Handle)

	patternsTool := tools.NewFindPatternsTool(eng)
	s.AddTool(patternsTool.Definition(), patternsTool.Handle)

	prdTool := tools.NewGeneratePRDTool()
	s.AddTool(prdTool.Definition(), prdTool.Handle)

	// --- Register prompts ---

	startPrompt := NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	// --- Register resources ---

	s.AddResource(healthResource(), healthHandler(eng))

	return s, nil
}

func healthResource() mcp.Resource {
	return mcp.NewResource(
		"genesis://engine/health",
		"Genesis Engine Health",
		mcp.WithResourceDescription("Engine status, storage availability, and loaded history counts"),
		mcp.WithMIMEType("application/json"),
	)
}

func healthHandler(eng *engine.Engine) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(eng.CheckHealth(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling health: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// serverInstructions tells the AI host how to use Genesis.
func serverInstructions() string {
	return `You have access to Genesis, a concept development and execution-mode recommendation MCP server.

## WHEN TO ACTIVATE Genesis

Suggest using Genesis when the user:
- Has a product or project idea and wants to know how to approach building it
- Asks which development approach fits their project
- Wants their concept analyzed for complexity or risk
- Needs a requirements document grounded in stakeholder stories

## WORKFLOW

1. Develop the concept with the user: collect at least 2 stakeholder stories,
   stress-test with at least 2 challenge scenarios, and explore at least 1
   enhancement. Assemble the concept document as JSON.
2. Call concept_analyze to score complexity.
3. Call recommend_mode with the concept and the user's preferences to get an
   execution mode recommendation with rationale and timeline.
4. Call generate_prd to turn the completed concept into a requirements document.
5. When the project concludes, call record_outcome with the decision_id so
   future recommendations learn from it.

Use find_patterns to surface what worked on similar past projects.`
}
