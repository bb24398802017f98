package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// GoalsTool handles the intake_set_goals MCP tool. It replaces the
// financial-goals section with an ordered goal list.
type GoalsTool struct {
	store ProfileStore
}

// NewGoalsTool creates a GoalsTool with its dependencies.
func NewGoalsTool(store ProfileStore) *GoalsTool {
	return &GoalsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GoalsTool) Definition() mcp.Tool {
	return mcp.NewTool("intake_set_goals",
		mcp.WithDescription(
			"Save the client's prioritized financial goals. Replaces the whole section — "+
				"pass the complete ordered list. Insights need at least one goal.",
		),
		profileParam(),
		mcp.WithString("goals",
			mcp.Required(),
			mcp.Description(`Ordered goal list as JSON: [{"label": "Retire at 62", "category": "retirement", `+
				`"priority": "high", "horizon": "short", "flexibility": "fixed", "core_plan": true}]. `+
				`Categories: retirement, major_purchase, debt_freedom, family_support, travel_lifestyle, `+
				`healthcare, legacy_giving, career_business. Priorities: high, medium, low, na. `+
				`Horizons: short, mid, long, ongoing. Flexibility: fixed, flexible, deferrable. `+
				`Omit "id" for new goals; keep it to preserve identity across updates.`),
		),
	)
}

// Handle processes the intake_set_goals tool call.
func (t *GoalsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	var goals []intake.Goal
	ok, err := parseJSONParam(req.GetString("goals", ""), &goals)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'goals': %v", err)), nil
	}
	if !ok {
		return mcp.NewToolResultError("'goals' is required — pass the complete goal list as JSON"), nil
	}

	for i := range goals {
		g := &goals[i]
		if err := intake.ValidateGoalCategory(g.Category); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("goal %d: %v", i+1, err)), nil
		}
		if err := intake.ValidateGoalPriority(g.Priority); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("goal %d: %v", i+1, err)), nil
		}
		if err := intake.ValidateHorizon(g.Horizon); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("goal %d: %v", i+1, err)), nil
		}
		if err := intake.ValidateFlexibility(g.Flexibility); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("goal %d: %v", i+1, err)), nil
		}
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
	}

	if err := t.store.SaveGoals(profile.ID, &intake.FinancialGoals{Goals: goals}); err != nil {
		return nil, fmt.Errorf("saving goals: %w", err)
	}

	updated, err := t.store.GetProfile(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading profile: %w", err)
	}

	return mcp.NewToolResultText(sectionSavedMessage("Financial goals", updated)), nil
}
