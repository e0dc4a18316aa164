// Package counter counts regular-expression matches in a document and writes
// the pattern|count report.
package counter

import (
	"time"

	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
)

// Record is the match count of one pattern.
type Record struct {
	// Line is the 1-based line of the pattern in the pattern file.
	Line int `json:"line" yaml:"line"`

	// Pattern is the trimmed pattern source.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Count is the number of non-overlapping matches in the document.
	Count int `json:"count" yaml:"count"`
}

// Result is the outcome of a counting run.
type Result struct {
	// Records holds one entry per counted pattern, in pattern-file order.
	Records []Record

	// Skipped lists patterns that failed to compile when invalid patterns
	// are skipped rather than aborting the run.
	Skipped []*failure.PatternError

	// OutputPath is the file the records were written to.
	OutputPath string

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about a counting run.
type Metadata struct {
	DocumentPath string
	PatternsPath string
	Engine       string

	// DocumentBytes is the size of the line-normalised document text.
	DocumentBytes int

	StartTime time.Time
	EndTime   time.Time
}

// HasSkipped returns true if any pattern was skipped.
func (r *Result) HasSkipped() bool {
	return len(r.Skipped) > 0
}
