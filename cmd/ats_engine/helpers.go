package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/logger"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/skills"
	"github.com/jonathan/ats-engine/internal/types"
)

// runtime bundles the pieces every command needs: merged configuration, the
// skill alias index, and a logger.
type runtime struct {
	cfg   config.Config
	index *skills.Index
	log   *zap.Logger
}

// buildRuntime loads the optional config file, merges it with defaults, and
// materializes the alias index and logger from it.
func buildRuntime(configPath string) (*runtime, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	index := skills.DefaultIndex()
	if cfg.SkillTable != "" {
		loaded, err := skills.LoadIndex(cfg.SkillTable)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill table: %w", err)
		}
		index = loaded
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &runtime{cfg: cfg, index: index, log: log}, nil
}

// loadRequirement reads a job requirement JSON file, validates it against the
// bundled schema, and decodes it. Schema-load problems degrade to a warning;
// actual validation failures are fatal.
func loadRequirement(path string) (*types.JobRequirement, error) {
	if err := schemas.ValidateRequirementFile(path); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("job requirement does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate job requirement against schema: %v\n", err)
		} else {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job requirement: %w", err)
	}

	var req types.JobRequirement
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse job requirement JSON: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job requirement: %w", err)
	}

	return &req, nil
}

// applyWeights copies configured weight overrides onto a requirement that does
// not declare its own. A requirement's inline weights always win.
func applyWeights(req *types.JobRequirement, cfg config.Config) {
	if req.Weights == nil && cfg.Weights != nil {
		req.Weights = cfg.Weights
	}
}

// writeJSON pretty-prints v to the given path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
