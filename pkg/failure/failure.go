// Package failure defines the error kinds reported by the command-line tools.
package failure

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the tools wraps exactly one of these.
var (
	// ErrIO indicates a file that is missing, unreadable, or unwritable.
	ErrIO = errors.New("io failure")

	// ErrArgumentFormat indicates a malformed command-line argument.
	ErrArgumentFormat = errors.New("argument format failure")

	// ErrPatternCompile indicates a pattern that is not a valid regular expression.
	ErrPatternCompile = errors.New("pattern compile failure")
)

// Kind names used when reporting errors to the user.
const (
	KindIO             = "IOFailure"
	KindArgumentFormat = "ArgumentFormatFailure"
	KindPatternCompile = "PatternCompileFailure"
)

// IO wraps err as an ErrIO for the given operation on path.
func IO(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

// ArgumentFormat wraps err as an ErrArgumentFormat for the named argument.
func ArgumentFormat(name, value string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: invalid %s %q", ErrArgumentFormat, name, value)
	}
	return fmt.Errorf("%w: invalid %s %q: %w", ErrArgumentFormat, name, value, err)
}

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	// Line is the 1-based line number of the pattern in its file.
	Line int

	// Pattern is the trimmed pattern source.
	Pattern string

	// Err is the error returned by the regex engine.
	Err error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s: line %d: pattern %q: %v", ErrPatternCompile, e.Line, e.Pattern, e.Err)
}

// Unwrap exposes both the kind sentinel and the engine error.
func (e *PatternError) Unwrap() []error {
	return []error{ErrPatternCompile, e.Err}
}

// Kind returns the kind name of err, or "" if err is not one of the known kinds.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPatternCompile):
		return KindPatternCompile
	case errors.Is(err, ErrArgumentFormat):
		return KindArgumentFormat
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return ""
	}
}
