package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Jranae/RegularExpressions-JRB/pkg/counter"
)

// MarkdownOptions controls terminal rendering of markdown summaries.
type MarkdownOptions struct {
	// Style is a glamour standard style name ("notty", "dark", "light", "auto").
	Style string

	// Width is the word-wrap width.
	Width int
}

// DefaultMarkdownOptions renders without ANSI styling at 100 columns.
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{Style: "notty", Width: 100}
}

// PatternSummaryMarkdown builds a markdown table of pattern counts.
func PatternSummaryMarkdown(result *counter.Result) string {
	var sb strings.Builder

	sb.WriteString("# Pattern counts\n\n")
	sb.WriteString(fmt.Sprintf("**Document:** %s  **Output:** %s  **Engine:** %s\n\n",
		escapeMarkdown(result.Metadata.DocumentPath),
		escapeMarkdown(result.OutputPath),
		escapeMarkdown(result.Metadata.Engine)))

	if len(result.Records) == 0 {
		sb.WriteString("No patterns counted.\n\n")
	} else {
		sb.WriteString("| Line | Pattern | Matches |\n")
		sb.WriteString("|---:|---|---:|\n")
		for _, r := range result.Records {
			sb.WriteString(fmt.Sprintf("| %d | %s | %d |\n", r.Line, patternCell(r.Pattern), r.Count))
		}
		sb.WriteString("\n")
	}

	if len(result.Skipped) > 0 {
		sb.WriteString("## Skipped patterns\n\n")
		for _, s := range result.Skipped {
			sb.WriteString(fmt.Sprintf("- line %d: %s: %s\n",
				s.Line, patternCell(s.Pattern), escapeMarkdown(s.Err.Error())))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderPatternSummary renders the pattern count table for the terminal.
func RenderPatternSummary(result *counter.Result, w io.Writer, opts MarkdownOptions) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.Style),
		glamour.WithWordWrap(opts.Width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(PatternSummaryMarkdown(result))
	if err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func patternCell(p string) string {
	if p == "" {
		return "*(empty)*"
	}
	return escapeMarkdown(p)
}

// escapeMarkdown backslash-escapes ASCII punctuation so patterns render
// literally, including inside table cells.
func escapeMarkdown(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune("\\`*_{}[]()<>#+-.!|~\"'$%&,/:;=?@^", r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
