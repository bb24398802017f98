// Package prompts implements MCP prompt handlers for the discovery workflow.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the lodestar-start MCP prompt.
// It guides the AI through the four-section discovery interview.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("lodestar-start",
		mcp.WithPromptDescription(
			"Start or resume a financial discovery interview. "+
				"Walks through the four sections — basic context, values, "+
				"goals, and purpose — and generates planning insights when "+
				"enough of the picture is in place.",
		),
		mcp.WithArgument("profile_name",
			mcp.ArgumentDescription("Profile to work on (defaults to 'default')"),
		),
	)
}

// Handle processes the lodestar-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	profileName := "default"
	if args := req.Params.Arguments; args != nil {
		if name, ok := args["profile_name"]; ok && name != "" {
			profileName = name
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Discovery interview: %s", profileName),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I'd like to work on my financial discovery profile '%s'.\n\n"+
						"Please:\n"+
						"1. Run `intake_get` with profile='%s' to see where we left off\n"+
						"2. If sections are missing, interview me conversationally — one section at a time,\n"+
						"   in whatever order feels natural — and save each with the matching intake tool\n"+
						"   (intake_set_basics, intake_set_values, intake_set_goals, intake_set_purpose)\n"+
						"3. After each section, run `insights_status` and tell me how complete the picture is\n"+
						"4. Once insights are ready, run `insights_report` and walk me through the results\n\n"+
						"Keep the interview warm and plain-spoken — no jargon unless I use it first.",
					profileName, profileName,
				)),
			},
		},
	}, nil
}
