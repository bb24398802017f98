package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the lodestar-status MCP prompt.
// It instructs the AI to read and present the current discovery progress.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("lodestar-status",
		mcp.WithPromptDescription(
			"Check discovery progress: which sections are complete, "+
				"the completion percentage, and whether insights are ready.",
		),
	)
}

// Handle processes the lodestar-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Discovery Progress",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `insights_status` to check my discovery progress.\n\n" +
						"Then:\n" +
						"1. Show me which sections are complete and which are missing\n" +
						"2. Tell me the completion percentage in plain terms\n" +
						"3. If insights are ready, offer to run `insights_report`\n" +
						"4. If not, tell me exactly what we should talk about next",
				),
			},
		},
	}, nil
}
