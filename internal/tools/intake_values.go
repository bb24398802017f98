package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// ValuesTool handles the intake_set_values MCP tool. It replaces the
// values-discovery section: the card-sort piles plus the top-10, top-5,
// and non-negotiables subsets.
type ValuesTool struct {
	store ProfileStore
}

// NewValuesTool creates a ValuesTool with its dependencies.
func NewValuesTool(store ProfileStore) *ValuesTool {
	return &ValuesTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ValuesTool) Definition() mcp.Tool {
	return mcp.NewTool("intake_set_values",
		mcp.WithDescription(
			"Save the client's values card sort. Card ids come from the fixed deck "+
				"(e.g. financial_security, family_wellbeing, independence). Replaces the whole "+
				"section. Insights need a non-empty top_5.",
		),
		profileParam(),
		mcp.WithString("piles",
			mcp.Description(`Card-sort piles as JSON, card id to pile: `+
				`{"financial_security": "important", "adventure": "unsure", "civic_duty": "not_important"}. `+
				`Piles: important, unsure, not_important.`),
		),
		mcp.WithString("top_10",
			mcp.Description(`Ordered top-10 card ids as a JSON array: ["financial_security", "family_wellbeing", ...]`),
		),
		mcp.WithString("top_5",
			mcp.Description(`Ordered top-5 card ids as a JSON array. This is the strongest ranking signal.`),
		),
		mcp.WithString("non_negotiables",
			mcp.Description(`Up to 3 untouchable value card ids as a JSON array.`),
		),
	)
}

// Handle processes the intake_set_values tool call.
func (t *ValuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	values := &intake.ValuesDiscovery{}

	if _, err := parseJSONParam(req.GetString("piles", ""), &values.Piles); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'piles': %v", err)), nil
	}
	for id, pile := range values.Piles {
		if err := intake.ValidatePile(pile); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("'piles' entry %q: %v", id, err)), nil
		}
	}

	if _, err := parseJSONParam(req.GetString("top_10", ""), &values.Top10); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'top_10': %v", err)), nil
	}
	if _, err := parseJSONParam(req.GetString("top_5", ""), &values.Top5); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'top_5': %v", err)), nil
	}
	if _, err := parseJSONParam(req.GetString("non_negotiables", ""), &values.NonNegotiables); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'non_negotiables': %v", err)), nil
	}

	if len(values.Top5) > 5 {
		return mcp.NewToolResultError(fmt.Sprintf("'top_5' has %d entries, max 5", len(values.Top5))), nil
	}
	if len(values.Top10) > 10 {
		return mcp.NewToolResultError(fmt.Sprintf("'top_10' has %d entries, max 10", len(values.Top10))), nil
	}
	if len(values.NonNegotiables) > intake.MaxNonNegotiables {
		return mcp.NewToolResultError(fmt.Sprintf("'non_negotiables' has %d entries, max %d",
			len(values.NonNegotiables), intake.MaxNonNegotiables)), nil
	}

	// Unknown card ids are allowed — the engine skips them — but flag them
	// so the AI can correct typos instead of silently losing signal.
	var unknown []string
	for _, id := range values.Top5 {
		if _, ok := intake.LookupCard(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf(
			"'top_5' contains card ids not in the deck: %v — check the catalog and retry", unknown)), nil
	}

	if err := t.store.SaveValues(profile.ID, values); err != nil {
		return nil, fmt.Errorf("saving values: %w", err)
	}

	updated, err := t.store.GetProfile(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading profile: %w", err)
	}

	return mcp.NewToolResultText(sectionSavedMessage("Values discovery", updated)), nil
}
