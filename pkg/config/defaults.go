package config

import (
	"os"

	"github.com/Jranae/RegularExpressions-JRB/pkg/counter"
	"github.com/Jranae/RegularExpressions-JRB/pkg/output"
)

// Default values for settings.
const (
	DefaultLogLevel = "warn"
	DefaultOutput   = output.FormatText
	DefaultEngine   = counter.EngineRE2
)

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
		Engine:   DefaultEngine,
	}
}

// applyEnvironmentOverrides replaces settings with non-empty RXTOOLS_*
// environment variables.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvEngine); v != "" {
		c.Engine = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
}
