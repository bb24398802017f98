package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/insights"
	"github.com/lodestar-planning/lodestar/internal/intake"
)

// GenerateTool handles the insights_generate MCP tool. It runs the
// discovery insights engine over the stored intake record.
type GenerateTool struct {
	store  ProfileStore
	engine *insights.Engine
}

// NewGenerateTool creates a GenerateTool with its dependencies.
func NewGenerateTool(store ProfileStore, engine *insights.Engine) *GenerateTool {
	return &GenerateTool{store: store, engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateTool) Definition() mcp.Tool {
	return mcp.NewTool("insights_generate",
		mcp.WithDescription(
			"Generate discovery insights from the stored intake record: the five-dimension "+
				"strategy profile, the ranked nine-domain planning focus, and up to seven action "+
				"recommendations. When the record doesn't yet have enough data this returns the "+
				"completion status and what's missing — that is 'not ready yet', not an error. "+
				"Results are recomputed from the current record on every call.",
		),
		profileParam(),
	)
}

// Handle processes the insights_generate tool call.
func (t *GenerateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	result, ok := t.engine.Generate(profile)
	if !ok {
		return mcp.NewToolResultText(notReadyMessage(profile)), nil
	}

	return jsonResult(result)
}

// notReadyMessage explains a failed completion gate: status plus the
// missing-data suggestions, so the AI knows exactly what to collect next.
func notReadyMessage(p *intake.Profile) string {
	var sb strings.Builder
	sb.WriteString("Insights are not ready yet.\n\n")
	sb.WriteString(insights.StatusMessage(p))
	sb.WriteString("\n")
	if suggestions := insights.MissingDataSuggestions(p); len(suggestions) > 0 {
		sb.WriteString("\nTo unlock insights:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
	}
	return sb.String()
}
