// Package cli provides the entry points of the logscan and patterncount tools.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jranae/RegularExpressions-JRB/internal/cli/commands"
	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
)

// ExecuteLogScan runs the logscan command and returns the exit code.
func ExecuteLogScan() int {
	return execute(context.Background(), commands.NewLogScanCommand(), os.Args[1:], os.Stdout, os.Stderr)
}

// ExecutePatternCount runs the patterncount command and returns the exit code.
func ExecutePatternCount() int {
	return execute(context.Background(), commands.NewPatternCountCommand(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	commands.ExitCode = 0

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(cmd, err, stderr)
		return 2 // Argument, configuration or runtime error
	}
	return commands.ExitCode
}

// reportError prints err to stderr (SilenceErrors prevents Cobra from doing this).
func reportError(cmd *cobra.Command, err error, stderr io.Writer) {
	var usageErr *commands.UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\nUsage: %s\n", err, cmd.UseLine())
		return
	}

	if kind := failure.Kind(err); kind != "" {
		_, _ = fmt.Fprintf(stderr, "Error [%s]: %v\n", kind, err)
		return
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
}
