package parser

import (
	"context"
	"os"
	"strings"

	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
)

// ReadPatterns reads a pattern file, one pattern per line.
// Each line is trimmed of leading and trailing control characters and spaces.
// Empty lines are kept as empty patterns.
func ReadPatterns(ctx context.Context, path string) ([]PatternLine, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, failure.IO("opening pattern file", path, err)
	}
	defer f.Close()

	var patterns []PatternLine
	sc := newScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		patterns = append(patterns, PatternLine{
			Source:  TrimPattern(sc.Text()),
			LineNum: len(patterns) + 1,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, failure.IO("reading pattern file", path, err)
	}

	return patterns, nil
}

// TrimPattern removes leading and trailing characters at or below U+0020.
func TrimPattern(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
