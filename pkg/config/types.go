// Package config provides comparison profile loading and validation for tracediff.
package config

// Config is the comparison profile loaded from YAML.
type Config struct {
	// Anchor is the prefix of the first trace record in each file.
	// Lines before it, and the anchor line itself, are preamble.
	Anchor string `yaml:"anchor"`

	// Fields is the number of leading whitespace-separated fields compared per record.
	Fields int `yaml:"fields"`

	// Strict reports unequal trace lengths and missing anchors as errors.
	Strict bool `yaml:"strict,omitempty"`

	// Output is the report format (text or json).
	Output OutputFormat `yaml:"output,omitempty"`

	// Color controls ANSI highlighting in text reports (auto, always, never).
	Color ColorMode `yaml:"color,omitempty"`
}

// OutputFormat selects a report formatter.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ColorMode determines when text reports are highlighted.
type ColorMode string

const (
	// ColorAuto highlights only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways highlights unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables highlighting.
	ColorNever ColorMode = "never"
)
