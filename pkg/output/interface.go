package output

import (
	"context"
	"io"
)

// Formatter renders a log report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json, yaml).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose appends run statistics to the report.
	Verbose bool

	// Color styles keys and counts when the writer is a terminal.
	Color bool
}
