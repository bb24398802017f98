// Lodestar: Financial Discovery MCP Server
//
// An MCP server that any AI assistant can use to run a structured
// financial discovery interview — values, goals, and purpose — and
// turn the answers into a strategy profile, a ranked planning focus,
// and concrete recommended actions.
//
// Usage:
//
//	lodestar serve    # Start MCP server (stdio transport)
//	lodestar update   # Update to the latest version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	lodestar "github.com/lodestar-planning/lodestar/internal/server"
	"github.com/lodestar-planning/lodestar/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Logs go to stderr so they never interfere with MCP's stdio
	// transport on stdout.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lodestar",
	})

	switch os.Args[1] {
	case "serve":
		if err := run(logger); err != nil {
			logger.Error("server exited", "err", err)
			os.Exit(1)
		}
	case "update":
		runUpdate(logger)
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("lodestar v%s\n", lodestar.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	s, cleanup, err := lodestar.New(logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Background version check — best-effort, stderr only.
	go checkForUpdates(logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down")
		cleanup()
		os.Exit(0)
	}()

	logger.Info("serving", "version", lodestar.Version)
	return server.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and logs a notice
// if an update is available. Network failures are silently ignored.
func checkForUpdates(logger *log.Logger) {
	result := updater.CheckVersion(lodestar.Version)
	if result.UpdateAvailable {
		logger.Info("update available",
			"current", result.CurrentVersion,
			"latest", result.LatestVersion,
			"release", result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate(logger *log.Logger) {
	logger.Info("checking for updates")

	result := updater.CheckVersion(lodestar.Version)
	if !result.UpdateAvailable {
		logger.Info("already at the latest version", "version", result.CurrentVersion)
		return
	}

	logger.Info("downloading", "current", result.CurrentVersion, "latest", result.LatestVersion)

	if err := updater.SelfUpdate(lodestar.Version); err != nil {
		logger.Error("update failed", "err", err, "release", result.ReleaseURL)
		os.Exit(1)
	}

	logger.Info("updated — restart lodestar to use the new version", "version", result.LatestVersion)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Lodestar v%s — Financial Discovery MCP Server

Usage:
  lodestar serve    Start the MCP server (stdio transport)
  lodestar update   Update to the latest version

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "lodestar": {
        "command": "lodestar",
        "args": ["serve"]
      }
    }
  }

Settings live at ~/.lodestar/config.yaml (optional).

Learn more: https://github.com/lodestar-planning/lodestar
`, lodestar.Version)
}
