// Package commands implements the logscan and patterncount commands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jranae/RegularExpressions-JRB/internal/logging"
	"github.com/Jranae/RegularExpressions-JRB/pkg/config"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// UsageError reports a command line with the wrong shape. It is printed
// together with the command's usage line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// exactArgs is cobra.ExactArgs returning a *UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Msg: fmt.Sprintf("accepts %d arg(s), received %d", n, len(args))}
		}
		return nil
	}
}

// CommonOptions holds the flags shared by both commands.
type CommonOptions struct {
	ConfigPath string
	LogLevel   string
}

func addCommonFlags(cmd *cobra.Command, opts *CommonOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Settings file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Diagnostic log level (trace|debug|info|warn|error|disabled)")
}

// loadSettings resolves the effective configuration. Flags the user set
// explicitly override the settings file and the environment; apply copies
// them onto the loaded config.
func loadSettings(cmd *cobra.Command, opts *CommonOptions, apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(commandContext(cmd), opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if apply != nil {
		apply(cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	if err := logging.Setup(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}

	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
