package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the genesis-start MCP prompt: a user-triggered
// workflow that walks the AI through concept development from idea to
// mode recommendation.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("genesis-start",
		mcp.WithPromptDescription(
			"Develop a project concept from an idea to an execution-mode "+
				"recommendation: stakeholder stories, challenge stress-testing, "+
				"enhancements, complexity analysis, and mode selection.",
		),
		mcp.WithArgument("concept_name",
			mcp.ArgumentDescription("Name of the concept or project"),
		),
	)
}

// Handle processes the genesis-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := "my-concept"
	if args := req.Params.Arguments; args != nil {
		if n, ok := args["concept_name"]; ok && n != "" {
			name = n
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Develop concept: %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to develop a concept called '%s' and find the right way to build it.\n\n"+
						"Please:\n"+
						"1. Ask me who the stakeholders are and help me write at least 2 stakeholder stories "+
						"(current situation, pain points, enhanced experience, value delivered, success indicators)\n"+
						"2. Stress-test the concept: propose at least 2 failure scenarios and help me resolve them\n"+
						"3. Explore at least 1 enhancement that would amplify stakeholder success\n"+
						"4. Assemble the concept document as JSON and call concept_analyze\n"+
						"5. Ask about my preferences (risk tolerance, speed vs quality, team size, validation needs) "+
						"and call recommend_mode\n"+
						"6. Walk me through the recommendation and, if I'm happy, call generate_prd",
					name,
				)),
			},
		},
	}, nil
}
