package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ccollicutt/tracediff/pkg/differ"
)

// Default values for configuration.
const (
	DefaultAnchor = differ.DefaultAnchor
	DefaultFields = differ.DefaultFields
	DefaultOutput = OutputText
	DefaultColor  = ColorAuto
)

// Environment variable names.
const (
	EnvAnchor = "TRACEDIFF_ANCHOR"
	EnvFields = "TRACEDIFF_FIELDS"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Anchor: DefaultAnchor,
		Fields: DefaultFields,
		Output: DefaultOutput,
		Color:  DefaultColor,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvironmentOverrides() error {
	if anchor := os.Getenv(EnvAnchor); anchor != "" {
		c.Anchor = anchor
	}

	if fields := os.Getenv(EnvFields); fields != "" {
		n, err := strconv.Atoi(fields)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFields, err)
		}
		c.Fields = n
	}
	return nil
}

// DifferOptions converts the profile into differ options.
func (c *Config) DifferOptions() []differ.Option {
	return []differ.Option{
		differ.WithAnchor(c.Anchor),
		differ.WithFields(c.Fields),
		differ.WithStrict(c.Strict),
	}
}
