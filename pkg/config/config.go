package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Jranae/RegularExpressions-JRB/pkg/counter"
	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
	"github.com/Jranae/RegularExpressions-JRB/pkg/output"
)

// Load builds the effective configuration: defaults, then the settings file
// at path (skipped when path is empty), then environment overrides.
// Files ending in .toml are decoded as TOML, anything else as YAML.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return failure.IO("opening config file", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return c.readTOML(f)
	}
	return c.readYAML(f)
}

func (c *Config) readTOML(r io.Reader) error {
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		var terr toml.ParseError
		if errors.As(err, &terr) {
			return fmt.Errorf("parsing config file: %s", terr.ErrorWithUsage())
		}
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) readYAML(r io.Reader) error {
	// An empty file decodes to io.EOF and leaves the defaults in place.
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate checks a configuration for unknown values.
func Validate(cfg *Config) error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil || cfg.LogLevel == "" {
		return fmt.Errorf("log_level: unknown level %q", cfg.LogLevel)
	}

	formats := []string{output.FormatText, output.FormatJSON, output.FormatYAML}
	if !slices.Contains(formats, cfg.Output) {
		return fmt.Errorf("output: unknown format %q (must be %s)", cfg.Output, strings.Join(formats, ", "))
	}

	if _, err := counter.EngineByName(cfg.Engine); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	return nil
}
