// Package resources implements MCP resource handlers for discovery data.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (lodestar://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/insights"
	"github.com/lodestar-planning/lodestar/internal/intake"
)

// ProfileReader is the subset of the intake store that resource
// handlers need. Resources never mutate the record.
type ProfileReader interface {
	DefaultProfile() (*intake.Profile, error)
}

// Handler manages discovery resource endpoints.
type Handler struct {
	store ProfileReader
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store ProfileReader) *Handler {
	return &Handler{store: store}
}

// StatusResource returns the MCP resource definition for discovery status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"lodestar://discovery/status",
		"Discovery Status",
		mcp.WithResourceDescription("Completion state of the default discovery profile"),
		mcp.WithMIMEType("application/json"),
	)
}

// discoveryStatus is the JSON shape of the status resource.
type discoveryStatus struct {
	ProfileName string                `json:"profile_name"`
	Status      string                `json:"status"`
	Completion  insights.InputSummary `json:"completion"`
	Missing     []string              `json:"missing"`
	Ready       bool                  `json:"ready"`
}

// HandleStatus returns the default profile's completion state as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	profile, err := h.store.DefaultProfile()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	missing := insights.MissingDataSuggestions(profile)
	if missing == nil {
		missing = []string{}
	}

	status := discoveryStatus{
		ProfileName: profile.Name,
		Status:      insights.StatusMessage(profile),
		Completion: insights.InputSummary{
			HasBasicContext:      insights.HasBasicContext(profile),
			HasValues:            insights.HasValues(profile),
			HasGoals:             insights.HasGoals(profile),
			HasPurpose:           insights.HasPurpose(profile),
			CompletionPercentage: insights.CompletionPercentage(profile),
		},
		Missing: missing,
		Ready:   insights.HasEnoughData(profile),
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// CatalogResource returns the MCP resource definition for the value-card deck.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		"lodestar://values/catalog",
		"Value Card Catalog",
		mcp.WithResourceDescription("The full deck of value cards used in the values sorting exercise"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCatalog returns the value-card deck as JSON.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(intake.Catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
