package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a profile file, applies environment overrides and validates the result.
// Fields missing from the file keep their defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided profile path is expected
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	if err := cfg.ApplyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills in empty optional values.
func Validate(cfg *Config) error {
	if cfg.Anchor == "" {
		return errors.New("anchor: must not be empty")
	}

	if cfg.Fields < 1 {
		return fmt.Errorf("fields: must be >= 1, got %d", cfg.Fields)
	}

	switch cfg.Output {
	case "":
		cfg.Output = DefaultOutput
	case OutputText, OutputJSON:
		// Valid
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}

	switch cfg.Color {
	case "":
		cfg.Color = DefaultColor
	case ColorAuto, ColorAlways, ColorNever:
		// Valid
	default:
		return fmt.Errorf("color: invalid mode %q (must be auto, always, or never)", cfg.Color)
	}

	return nil
}
