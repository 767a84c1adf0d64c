// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-engine/internal/batch"
	"github.com/jonathan/ats-engine/internal/types"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// SkillTable points at a custom skill dictionary and alias table JSON
	// file. Empty means the embedded default table.
	SkillTable string `json:"skill_table,omitempty"`

	// Weights overrides the default 50/30/20 scoring weights.
	Weights *types.Weights `json:"weights,omitempty"`

	// Batch behavior
	Concurrency    int `json:"concurrency,omitempty"`     // Concurrent extractions (1..8)
	TimeoutSeconds int `json:"timeout_seconds,omitempty"` // Per-resume extraction timeout

	// Output behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
	LogJSON bool `json:"log_json,omitempty"` // Emit machine-readable logs
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Concurrency < 0 || c.Concurrency > batch.MaxConcurrency {
		return fmt.Errorf("config error: 'concurrency' must be between 1 and %d", batch.MaxConcurrency)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.SkillTable != "" {
		if _, err := os.Stat(c.SkillTable); os.IsNotExist(err) {
			return fmt.Errorf("config error: skill table file not found: %s", c.SkillTable)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SkillTable == "" {
		result.SkillTable = defaults.SkillTable
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
