package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/insights"
	"github.com/lodestar-planning/lodestar/internal/intake"
)

// GetTool handles the intake_get MCP tool: the current intake record plus
// its completion state, as JSON.
type GetTool struct {
	store ProfileStore
}

// NewGetTool creates a GetTool with its dependencies.
func NewGetTool(store ProfileStore) *GetTool {
	return &GetTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTool) Definition() mcp.Tool {
	return mcp.NewTool("intake_get",
		mcp.WithDescription(
			"Read the current intake record for a profile, including which sections are "+
				"present and the discovery completion percentage. Use this to recover context "+
				"before continuing an interview.",
		),
		profileParam(),
	)
}

// profileView is the intake_get response shape.
type profileView struct {
	Profile       *intake.Profile       `json:"profile"`
	Completion    insights.InputSummary `json:"completion"`
	Status        string                `json:"status"`
	Missing       []string              `json:"missing,omitempty"`
	InsightsReady bool                  `json:"insights_ready"`
}

// Handle processes the intake_get tool call.
func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	return jsonResult(profileView{
		Profile: profile,
		Completion: insights.InputSummary{
			HasBasicContext:      insights.HasBasicContext(profile),
			HasValues:            insights.HasValues(profile),
			HasGoals:             insights.HasGoals(profile),
			HasPurpose:           insights.HasPurpose(profile),
			CompletionPercentage: insights.CompletionPercentage(profile),
		},
		Status:        insights.StatusMessage(profile),
		Missing:       insights.MissingDataSuggestions(profile),
		InsightsReady: insights.HasEnoughData(profile),
	})
}
