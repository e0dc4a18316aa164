// Package parser provides line-oriented reading of log, pattern, and document files.
package parser

// LogLine is a single line read from a source file, without its terminator.
type LogLine struct {
	// Content is the raw line text.
	Content string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// PatternLine is one entry of a pattern file.
type PatternLine struct {
	// Source is the trimmed pattern text. Empty lines yield an empty Source.
	Source string

	// LineNum is the 1-based line number in the pattern file.
	LineNum int
}

// MaxLineSize is the longest line a FileSource or pattern file may hold.
// Documents are read whole and have no line limit.
const MaxLineSize = 16 * 1024 * 1024
