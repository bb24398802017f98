package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/insights"
	"github.com/lodestar-planning/lodestar/internal/report"
)

// ReportTool handles the insights_report MCP tool: the insights result
// rendered as a markdown document suitable for showing the client.
type ReportTool struct {
	store    ProfileStore
	engine   *insights.Engine
	renderer *report.Renderer
}

// NewReportTool creates a ReportTool with its dependencies.
func NewReportTool(store ProfileStore, engine *insights.Engine, renderer *report.Renderer) *ReportTool {
	return &ReportTool{store: store, engine: engine, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *ReportTool) Definition() mcp.Tool {
	return mcp.NewTool("insights_report",
		mcp.WithDescription(
			"Generate discovery insights and render them as a markdown report: strategy "+
				"profile summary, ranked planning focus, and recommended actions. Present this "+
				"to the client verbatim. Falls back to the completion status when the record "+
				"doesn't have enough data yet.",
		),
		profileParam(),
	)
}

// Handle processes the insights_report tool call.
func (t *ReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	result, ok := t.engine.Generate(profile)
	if !ok {
		return mcp.NewToolResultText(notReadyMessage(profile)), nil
	}

	markdown, err := t.renderer.Render(report.Insights, report.InsightsData{
		ProfileName: profile.Name,
		Result:      result,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	return mcp.NewToolResultText(markdown), nil
}
