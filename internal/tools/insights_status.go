package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/insights"
)

// StatusTool handles the insights_status MCP tool. Unlike insights_generate
// it always returns a useful answer, whatever the gate outcome.
type StatusTool struct {
	store ProfileStore
}

// NewStatusTool creates a StatusTool with its dependencies.
func NewStatusTool(store ProfileStore) *StatusTool {
	return &StatusTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("insights_status",
		mcp.WithDescription(
			"Check discovery progress for a profile: completion percentage, per-section "+
				"presence, a status message, and suggestions for the missing sections. "+
				"Always returns — use it to decide what to ask the client next.",
		),
		profileParam(),
	)
}

// statusView is the insights_status response shape.
type statusView struct {
	Status     string                `json:"status"`
	Completion insights.InputSummary `json:"completion"`
	Missing    []string              `json:"missing"`
	Ready      bool                  `json:"ready"`
}

// Handle processes the insights_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	missing := insights.MissingDataSuggestions(profile)
	if missing == nil {
		missing = []string{}
	}

	return jsonResult(statusView{
		Status: insights.StatusMessage(profile),
		Completion: insights.InputSummary{
			HasBasicContext:      insights.HasBasicContext(profile),
			HasValues:            insights.HasValues(profile),
			HasGoals:             insights.HasGoals(profile),
			HasPurpose:           insights.HasPurpose(profile),
			CompletionPercentage: insights.CompletionPercentage(profile),
		},
		Missing: missing,
		Ready:   insights.HasEnoughData(profile),
	})
}
