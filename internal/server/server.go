// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools/prompts/resources that depend on abstractions.
// No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lodestar-planning/lodestar/internal/config"
	"github.com/lodestar-planning/lodestar/internal/insights"
	"github.com/lodestar-planning/lodestar/internal/intake"
	"github.com/lodestar-planning/lodestar/internal/prompts"
	"github.com/lodestar-planning/lodestar/internal/report"
	"github.com/lodestar-planning/lodestar/internal/resources"
	"github.com/lodestar-planning/lodestar/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the intake store's database
// connection and must be called on shutdown (typically via defer).
func New(logger *log.Logger) (*server.MCPServer, func(), error) {
	// --- Load settings and create shared dependencies ---

	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, noop, fmt.Errorf("loading settings: %w", err)
	}

	store, err := intake.NewStore(intake.StoreConfig{DataDir: settings.DataDir})
	if err != nil {
		return nil, noop, fmt.Errorf("opening intake store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("intake store close", "err", err)
		}
	}

	engine := insights.NewEngine(settings.Weights, nil)

	renderer, err := report.NewRenderer()
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("creating report renderer: %w", err)
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"lodestar",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register intake tools ---

	basicsTool := tools.NewBasicsTool(store)
	s.AddTool(basicsTool.Definition(), basicsTool.Handle)

	valuesTool := tools.NewValuesTool(store)
	s.AddTool(valuesTool.Definition(), valuesTool.Handle)

	goalsTool := tools.NewGoalsTool(store)
	s.AddTool(goalsTool.Definition(), goalsTool.Handle)

	purposeTool := tools.NewPurposeTool(store)
	s.AddTool(purposeTool.Definition(), purposeTool.Handle)

	getTool := tools.NewGetTool(store)
	s.AddTool(getTool.Definition(), getTool.Handle)

	// --- Register insights tools ---

	statusTool := tools.NewStatusTool(store)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	generateTool := tools.NewGenerateTool(store, engine)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	reportTool := tools.NewReportTool(store, engine, renderer)
	s.AddTool(reportTool.Definition(), reportTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(store)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)

	logger.Debug("server wired", "data_dir", settings.DataDir)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when initialization fails
// before the store is opened.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to run the discovery process.
func serverInstructions() string {
	return `You have access to Lodestar, a financial discovery MCP server.

## What Lodestar Does
Lodestar turns a conversational discovery interview into structured planning
insights. You interview the client, save what you learn with the intake tools,
and once enough of the picture is in place the insights tools derive:
- A strategy profile (five dimensions, each with a confidence level and rationale)
- A ranked planning focus across nine planning domains
- Up to seven concrete recommended actions

## CRITICAL: How Tools Work
Intake tools are STORAGE tools — they save what YOU learned from the client.
Insights tools are COMPUTATION tools — they derive results from the saved record.
The engine is deterministic: the same record always produces the same insights.

NEVER invent data the client didn't give you. NEVER call an intake tool with
placeholder values. If you don't know something, leave it out — partial
sections are fine and the status tools will tell you what's missing.

## The Four Discovery Sections
Sections can be collected in any order, one conversation at a time:

1. BASIC CONTEXT (intake_set_basics) — name, birth date, household,
   occupation, federal employment details, dependents. The birth date
   matters: age drives retirement-window logic in the insights.
2. VALUES (intake_set_values) — the card-sorting exercise. The client sorts
   value cards into important / unsure / not important piles, then narrows
   to a top 10, a top 5, and up to 3 non-negotiables. Card IDs must come
   from the catalog (read lodestar://values/catalog).
3. GOALS (intake_set_goals) — concrete financial goals, each with a
   category, priority, time horizon, and flexibility.
4. PURPOSE (intake_set_purpose) — what money is for: drivers, tradeoff
   leanings, and a purpose statement in the client's own words.

## Interview Workflow
1. Start with intake_get to recover any existing record
2. Interview conversationally — ask open questions, reflect back what you hear
3. Save each section as soon as it's reasonably complete (sections replace
   wholesale, so re-saving with more detail is safe)
4. After each save, the response tells you the completion percentage and
   what's still missing — use it to steer the conversation
5. Check readiness any time with insights_status

## Generating Insights
Insights unlock once basic context is saved plus at least one other section.
More sections mean higher-confidence results — aim for all four.

- insights_generate returns the full structured result as JSON
- insights_report returns the same result as a markdown report for the client
- When the record isn't ready, both return the completion status and what to
  collect next — that is guidance, not an error

Results are recomputed from the current record on every call, so re-run them
after any intake change. Present confidence levels honestly: a low-confidence
dimension means the interview hasn't covered that ground yet.

## Important Rules
- One profile per client; omit the profile parameter to use the default profile
- Never coach the client toward particular answers in the values exercise
- Report the insights as produced — do not add, reorder, or drop actions
- If the client revises something, re-save the section and regenerate`
}
