// Package tools implements the MCP tool handlers for the discovery wizard.
//
// Each tool is a struct that receives its dependencies at construction and
// exposes a Definition for registration plus a Handle compatible with
// mcp-go's CallToolRequest signature.
//
// Design principles:
// - SRP: each file = one tool
// - DIP: tools depend on the ProfileStore interface, not the sqlite store
// - input problems are tool-result errors (the AI can fix and retry),
//   never Go errors (those are reserved for infrastructure failures)
package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// ProfileStore is the persistence surface the tools need. *intake.Store
// satisfies it; tests substitute an in-memory fake.
type ProfileStore interface {
	DefaultProfile() (*intake.Profile, error)
	FindProfileByName(name string) (*intake.Profile, error)
	CreateProfile(name string) (*intake.Profile, error)
	GetProfile(id string) (*intake.Profile, error)
	ListProfiles(limit int) ([]intake.Profile, error)
	SaveBasics(id string, b *intake.BasicContext) error
	SaveValues(id string, v *intake.ValuesDiscovery) error
	SaveGoals(id string, g *intake.FinancialGoals) error
	SavePurpose(id string, p *intake.FinancialPurpose) error
}

// birthDateLayout is the accepted date format for tool parameters.
const birthDateLayout = "2006-01-02"

// resolveProfile finds the profile a tool call targets. An empty name means
// the default profile; a new name creates the profile on first use, so the
// wizard never needs a separate "create" step.
func resolveProfile(store ProfileStore, req mcp.CallToolRequest) (*intake.Profile, error) {
	name := strings.TrimSpace(req.GetString("profile", ""))
	if name == "" {
		return store.DefaultProfile()
	}
	p, err := store.FindProfileByName(name)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	return store.CreateProfile(name)
}

// profileParam is the shared definition of the optional profile selector.
func profileParam() mcp.ToolOption {
	return mcp.WithString("profile",
		mcp.Description("Profile name to operate on. Omit to use the default profile; "+
			"a new name creates the profile on first use."),
	)
}

// parseDate parses a YYYY-MM-DD tool parameter. Empty input returns nil
// (the field is simply absent).
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return &t, nil
}

// parseJSONParam unmarshals a JSON string parameter into dst. Empty input
// leaves dst untouched and returns false.
func parseJSONParam(raw string, dst any) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("invalid JSON: %v", err)
	}
	return true, nil
}

// jsonResult formats a value as an indented-JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
