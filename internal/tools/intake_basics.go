package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/insights"
	"github.com/lodestar-planning/lodestar/internal/intake"
)

// BasicsTool handles the intake_set_basics MCP tool. It replaces the
// basic-context section of a profile; every field is optional, so the
// wizard can capture what it has and come back for the rest.
type BasicsTool struct {
	store ProfileStore
}

// NewBasicsTool creates a BasicsTool with its dependencies.
func NewBasicsTool(store ProfileStore) *BasicsTool {
	return &BasicsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *BasicsTool) Definition() mcp.Tool {
	return mcp.NewTool("intake_set_basics",
		mcp.WithDescription(
			"Save the client's basic context: name, birth date, marital status, occupation, "+
				"optional federal-employment record, and dependents. Replaces the whole section — "+
				"include every field you know, not just the changed ones. All fields are optional; "+
				"insights need at least first_name and birth_date.",
		),
		profileParam(),
		mcp.WithString("first_name", mcp.Description("Client's first name")),
		mcp.WithString("last_name", mcp.Description("Client's last name")),
		mcp.WithString("birth_date", mcp.Description("Birth date as YYYY-MM-DD")),
		mcp.WithString("marital_status", mcp.Description("e.g. single, married, divorced, widowed")),
		mcp.WithString("occupation", mcp.Description("Current occupation")),
		mcp.WithString("federal_employment",
			mcp.Description(`Optional federal-employment record as JSON: `+
				`{"agency": "...", "years_of_service": 22, "retirement_system": "FERS", "pay_grade": "GS-13"}`),
		),
		mcp.WithString("dependents",
			mcp.Description(`Optional dependents list as JSON: `+
				`[{"relationship": "daughter", "birth_date": "2010-04-01T00:00:00Z", "financially_dependent": true}]`),
		),
	)
}

// Handle processes the intake_set_basics tool call.
func (t *BasicsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := resolveProfile(t.store, req)
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	birthDate, err := parseDate(req.GetString("birth_date", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'birth_date': %v", err)), nil
	}

	basics := &intake.BasicContext{
		FirstName:     strings.TrimSpace(req.GetString("first_name", "")),
		LastName:      strings.TrimSpace(req.GetString("last_name", "")),
		BirthDate:     birthDate,
		MaritalStatus: strings.TrimSpace(req.GetString("marital_status", "")),
		Occupation:    strings.TrimSpace(req.GetString("occupation", "")),
	}

	var fed intake.FederalEmployment
	if ok, err := parseJSONParam(req.GetString("federal_employment", ""), &fed); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'federal_employment': %v", err)), nil
	} else if ok {
		basics.FederalEmployment = &fed
	}

	var deps []intake.Dependent
	if ok, err := parseJSONParam(req.GetString("dependents", ""), &deps); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'dependents': %v", err)), nil
	} else if ok {
		basics.Dependents = deps
	}

	if err := t.store.SaveBasics(profile.ID, basics); err != nil {
		return nil, fmt.Errorf("saving basics: %w", err)
	}

	// Reload so the completion summary reflects what was just saved.
	updated, err := t.store.GetProfile(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading profile: %w", err)
	}

	return mcp.NewToolResultText(sectionSavedMessage("Basic context", updated)), nil
}

// sectionSavedMessage is the shared confirmation for section-saving tools.
func sectionSavedMessage(section string, p *intake.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s saved for profile %q.\n\n", section, p.Name)
	fmt.Fprintf(&sb, "Discovery completion: %d%%\n", insights.CompletionPercentage(p))
	if suggestions := insights.MissingDataSuggestions(p); len(suggestions) > 0 {
		sb.WriteString("Still missing:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
	} else {
		sb.WriteString("All discovery sections are complete.\n")
	}
	if insights.HasEnoughData(p) {
		sb.WriteString("\nInsights are ready — call insights_generate.")
	}
	return sb.String()
}
