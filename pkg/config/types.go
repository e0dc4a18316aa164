// Package config provides settings loading and validation for the log
// scanner and the pattern counter.
package config

// Config holds the settings shared by both commands. Every field can also be
// set from the command line; explicitly set flags win.
type Config struct {
	// LogLevel is a zerolog level name (trace, debug, info, warn, error, disabled).
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Color enables the styled text report.
	Color bool `yaml:"color" toml:"color"`

	// Output is the log report format (text, json, yaml).
	Output string `yaml:"output" toml:"output"`

	// Engine is the regex engine used for counting patterns (re2, backtrack).
	Engine string `yaml:"engine" toml:"engine"`

	// SkipInvalid reports invalid patterns and carries on instead of aborting.
	SkipInvalid bool `yaml:"skip_invalid" toml:"skip_invalid"`
}

// Environment variables that override file settings.
const (
	EnvLogLevel = "RXTOOLS_LOG_LEVEL"
	EnvEngine   = "RXTOOLS_ENGINE"
	EnvOutput   = "RXTOOLS_OUTPUT"
)
