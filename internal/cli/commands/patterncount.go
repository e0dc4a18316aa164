package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jranae/RegularExpressions-JRB/pkg/config"
	"github.com/Jranae/RegularExpressions-JRB/pkg/counter"
	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
	"github.com/Jranae/RegularExpressions-JRB/pkg/output"
)

// PatternCountOptions holds command-line options for the patterncount command.
type PatternCountOptions struct {
	CommonOptions

	Engine      string
	SkipInvalid bool
	Summary     bool
}

// NewPatternCountCommand creates the patterncount command.
func NewPatternCountCommand() *cobra.Command {
	opts := &PatternCountOptions{}

	cmd := &cobra.Command{
		Use:   "patterncount <document-path> <patterns-path>",
		Short: "Count regular expression matches in a document",
		Long: `Count the non-overlapping matches of every pattern in the patterns file
(one regular expression per line, surrounding whitespace trimmed) against the
whole document, and write "<pattern>|<count>" lines to a file next to the
document whose name replaces ".txt" with "_wc.txt".

An invalid pattern aborts the run before the output file is written, unless
--skip-invalid is set.

Exit codes:
  0 - Counts written
  1 - Counts written, invalid patterns skipped
  2 - Argument, configuration, pattern or file error`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatternCount(cmd, args, opts)
		},
	}
	setVersion(cmd)

	cmd.Flags().StringVar(&opts.Engine, "engine", config.DefaultEngine, "Regex engine (re2|backtrack)")
	cmd.Flags().BoolVar(&opts.SkipInvalid, "skip-invalid", false, "Report invalid patterns and leave them out instead of aborting")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Print a table of the counts to stdout")
	addCommonFlags(cmd, &opts.CommonOptions)

	return cmd
}

func runPatternCount(cmd *cobra.Command, args []string, opts *PatternCountOptions) error {
	documentPath, patternsPath := args[0], args[1]

	cfg, err := loadSettings(cmd, &opts.CommonOptions, func(cfg *config.Config) {
		if cmd.Flags().Changed("engine") {
			cfg.Engine = opts.Engine
		}
		if cmd.Flags().Changed("skip-invalid") {
			cfg.SkipInvalid = opts.SkipInvalid
		}
	})
	if err != nil {
		return err
	}

	engine, err := counter.EngineByName(cfg.Engine)
	if err != nil {
		return err
	}

	c := counter.New(
		counter.WithEngine(engine),
		counter.WithSkipInvalid(cfg.SkipInvalid),
	)

	log.Debug().
		Str("engine", c.Engine().Name()).
		Bool("skip_invalid", cfg.SkipInvalid).
		Msg("counting patterns")

	result, err := c.Run(commandContext(cmd), documentPath, patternsPath)
	if err != nil {
		return err
	}

	for _, skipped := range result.Skipped {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Skipped [%s]: %v\n", failure.KindPatternCompile, skipped)
	}

	if opts.Summary {
		if err := output.RenderPatternSummary(result, cmd.OutOrStdout(), output.DefaultMarkdownOptions()); err != nil {
			return fmt.Errorf("rendering summary: %w", err)
		}
	}

	if result.HasSkipped() {
		ExitCode = 1
	}

	return nil
}
