// Package config loads the optional Lodestar settings file.
//
// Settings live at ~/.lodestar/config.yaml. A missing file is not an error
// — everything has a shipped default — but a file that exists and fails to
// parse surfaces loudly, because silently ignoring a user's tuning would be
// worse than refusing to start.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lodestar-planning/lodestar/internal/insights"
)

// Settings is the full configuration surface.
type Settings struct {
	// DataDir is where the intake database lives.
	DataDir string `yaml:"data_dir"`
	// Weights tunes the insights engine. Every field has a shipped
	// default; the file only needs to name what it overrides.
	Weights insights.Weights `yaml:"weights"`
}

// Default returns the shipped settings.
func Default() Settings {
	home, _ := os.UserHomeDir()
	return Settings{
		DataDir: filepath.Join(home, ".lodestar"),
		Weights: insights.DefaultWeights(),
	}
}

// DefaultPath returns the conventional settings file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lodestar", "config.yaml")
}

// Load reads settings from path, layered over the defaults: fields the file
// doesn't set keep their shipped values. A missing file returns the
// defaults unchanged.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Unmarshal over the populated defaults so absent keys are untouched.
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	return settings, nil
}
