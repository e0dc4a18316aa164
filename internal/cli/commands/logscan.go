package commands

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jranae/RegularExpressions-JRB/pkg/analyzer"
	"github.com/Jranae/RegularExpressions-JRB/pkg/config"
	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
	"github.com/Jranae/RegularExpressions-JRB/pkg/output"
	"github.com/Jranae/RegularExpressions-JRB/pkg/parser"
)

// LogScanOptions holds command-line options for the logscan command.
type LogScanOptions struct {
	CommonOptions

	Output  string
	Color   bool
	Verbose bool
}

// NewLogScanCommand creates the logscan command.
func NewLogScanCommand() *cobra.Command {
	opts := &LogScanOptions{}

	cmd := &cobra.Command{
		Use:   "logscan <log-file-path> <mode-flag>",
		Short: "Count IP addresses and users in a log file",
		Long: `Scan a log file for IPv4 addresses and user=<name> tokens and report
how often each one occurs. A token is counted at most once per line.

Modes:
  1     - one "<ip>: <count>" line per IP address
  2     - one "<user>: <count>" line per username
  other - the number of unique IP addresses and users

The log path may be a glob; all matching files are read in sorted order.
Flags go before the positional arguments, so a negative mode flag such as
-1 is read as the mode.

Exit codes:
  0 - Report written
  2 - Argument, configuration or read error`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogScan(cmd, args, opts)
		},
	}
	setVersion(cmd)

	// Everything after the log path is positional.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json|yaml)")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "Colorize text output on terminals")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Append run statistics to text output")
	addCommonFlags(cmd, &opts.CommonOptions)

	return cmd
}

func runLogScan(cmd *cobra.Command, args []string, opts *LogScanOptions) error {
	logPath, modeArg := args[0], args[1]

	mode, err := strconv.Atoi(modeArg)
	if err != nil {
		return failure.ArgumentFormat("mode flag", modeArg, err)
	}

	cfg, err := loadSettings(cmd, &opts.CommonOptions, func(cfg *config.Config) {
		if cmd.Flags().Changed("output") {
			cfg.Output = opts.Output
		}
		if cmd.Flags().Changed("color") {
			cfg.Color = opts.Color
		}
	})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	source := parser.NewFileSource(parser.ExpandGlobs([]string{logPath}))
	defer source.Close()

	result, err := analyzer.NewAnalyzer().Analyze(ctx, source)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := output.NewReport(result, output.ModeFromFlag(mode))

	formatter, err := output.NewFormatter(cfg.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Color:   cfg.Color,
	})
	if err != nil {
		return err
	}

	log.Debug().Str("format", formatter.Name()).Str("mode", report.Mode.String()).Msg("writing report")

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}
