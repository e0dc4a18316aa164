package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// TextFormatter formats reports as plain lines:
// "<key>: <count>" per entry, or the two summary lines.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	theme := PlainTheme()
	if f.opts.Color {
		theme = NewTheme(w)
	}

	var err error
	if report.Mode == ModeSummary {
		err = f.formatSummary(report, theme, w)
	} else {
		err = f.formatEntries(report, theme, w)
	}
	if err != nil {
		return err
	}

	if f.opts.Verbose && report.Metadata != nil {
		return f.formatStats(report, theme, w)
	}
	return nil
}

func (f *TextFormatter) formatEntries(report *Report, theme Theme, w io.Writer) error {
	for _, e := range report.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %s\n",
			theme.paint(theme.Key, e.Key),
			theme.paint(theme.Count, strconv.Itoa(e.Count))); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatSummary(report *Report, theme Theme, w io.Writer) error {
	lines := []string{
		fmt.Sprintf("%d unique IP addresses in the log.", report.Summary.UniqueIPs),
		fmt.Sprintf("%d unique users in the log.", report.Summary.UniqueUsers),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, theme.paint(theme.Summary, line)); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatStats(report *Report, theme Theme, w io.Writer) error {
	stats := []string{
		fmt.Sprintf("Lines processed: %d", report.Summary.LinesProcessed),
		fmt.Sprintf("Sources: %s", strings.Join(report.Metadata.Sources, ", ")),
		fmt.Sprintf("Duration: %s", report.Metadata.Duration.Round(time.Millisecond)),
	}
	for _, line := range stats {
		if _, err := fmt.Fprintln(w, theme.paint(theme.Dim, line)); err != nil {
			return err
		}
	}
	return nil
}
