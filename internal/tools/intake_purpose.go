package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// PurposeTool handles the intake_set_purpose MCP tool. It replaces the
// financial-purpose section: drivers, tradeoff leanings, and the final
// purpose statement.
type PurposeTool struct {
	store ProfileStore
}

// NewPurposeTool creates a PurposeTool with its dependencies.
func NewPurposeTool(store ProfileStore) *PurposeTool {
	return &PurposeTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *PurposeTool) Definition() mcp.Tool {
	return mcp.NewTool("intake_set_purpose",
		mcp.WithDescription(
			"Save the client's financial purpose: primary/secondary drivers, tradeoff-axis "+
				"leanings, and the purpose statement. Replaces the whole section. Insights count "+
				"this section as present once the statement is non-empty.",
		),
		profileParam(),
		mcp.WithString("primary_driver", mcp.Description("What money is ultimately for, in the client's words")),
		mcp.WithString("secondary_driver", mcp.Description("Secondary driver, if any")),
		mcp.WithString("tradeoffs",
			mcp.Description(`Tradeoff leanings as JSON: [{"axis": "guarantees_vs_growth", "toward": "guarantees", `+
				`"strength": 4}]. Axes: guarantees_vs_growth (toward guarantees|growth), `+
				`simplicity_vs_optimization (toward simplicity|optimization), `+
				`spend_vs_preserve (toward spend|preserve), delegate_vs_control (toward delegate|control). `+
				`Strength runs 1 (slight) to 5 (strong).`),
		),
		mcp.WithString("statement", mcp.Description("The final purpose statement")),
	)
}

// Handle processes the intake_set_purpose tool call.
func (t *PurposeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	purpose := &intake.FinancialPurpose{
		PrimaryDriver:   strings.TrimSpace(req.GetString("primary_driver", "")),
		SecondaryDriver: strings.TrimSpace(req.GetString("secondary_driver", "")),
		Statement:       strings.TrimSpace(req.GetString("statement", "")),
	}

	if _, err := parseJSONParam(req.GetString("tradeoffs", ""), &purpose.Tradeoffs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'tradeoffs': %v", err)), nil
	}
	for i, l := range purpose.Tradeoffs {
		if err := intake.ValidateAxis(l.Axis); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("tradeoff %d: %v", i+1, err)), nil
		}
		if l.Strength < 1 || l.Strength > 5 {
			return mcp.NewToolResultError(fmt.Sprintf("tradeoff %d: strength %d out of range 1-5", i+1, l.Strength)), nil
		}
	}

	if err := t.store.SavePurpose(profile.ID, purpose); err != nil {
		return nil, fmt.Errorf("saving purpose: %w", err)
	}

	updated, err := t.store.GetProfile(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading profile: %w", err)
	}

	return mcp.NewToolResultText(sectionSavedMessage("Financial purpose", updated)), nil
}
