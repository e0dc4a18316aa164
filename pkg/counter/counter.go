package counter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
	"github.com/Jranae/RegularExpressions-JRB/pkg/parser"
)

// Counter evaluates a list of patterns against a document.
type Counter struct {
	engine      Engine
	skipInvalid bool
}

// Option configures counter behavior.
type Option func(*Counter)

// WithEngine selects the regex engine. The default is RE2Engine.
func WithEngine(e Engine) Option {
	return func(c *Counter) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithSkipInvalid makes invalid patterns get reported and left out of the
// output instead of aborting the run.
func WithSkipInvalid(skip bool) Option {
	return func(c *Counter) {
		c.skipInvalid = skip
	}
}

// New creates a Counter.
func New(opts ...Option) *Counter {
	c := &Counter{engine: RE2Engine{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the engine in use.
func (c *Counter) Engine() Engine {
	return c.engine
}

type compiled struct {
	pattern parser.PatternLine
	matcher Matcher
}

// compile compiles every pattern in order. Unless invalid patterns are
// skipped, the first one that fails aborts compilation with a
// *failure.PatternError.
func (c *Counter) compile(patterns []parser.PatternLine) ([]compiled, []*failure.PatternError, error) {
	out := make([]compiled, 0, len(patterns))
	var skipped []*failure.PatternError

	for _, p := range patterns {
		m, err := c.engine.Compile(p.Source)
		if err != nil {
			perr := &failure.PatternError{Line: p.LineNum, Pattern: p.Source, Err: err}
			if !c.skipInvalid {
				return nil, nil, perr
			}
			log.Warn().Err(err).Int("line", p.LineNum).Str("pattern", p.Source).Msg("skipping invalid pattern")
			skipped = append(skipped, perr)
			continue
		}
		log.Debug().Int("line", p.LineNum).Str("pattern", p.Source).Str("engine", c.engine.Name()).Msg("compiled pattern")
		out = append(out, compiled{pattern: p, matcher: m})
	}

	return out, skipped, nil
}

// Count returns the number of non-overlapping matches of each pattern in text.
func (c *Counter) Count(ctx context.Context, text string, patterns []parser.PatternLine) ([]Record, []*failure.PatternError, error) {
	matchers, skipped, err := c.compile(patterns)
	if err != nil {
		return nil, nil, err
	}

	records := make([]Record, 0, len(matchers))
	for _, cm := range matchers {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		n, err := cm.matcher.Count(text)
		if err != nil {
			return nil, nil, fmt.Errorf("counting pattern %q (line %d): %w", cm.pattern.Source, cm.pattern.LineNum, err)
		}
		log.Debug().Str("pattern", cm.pattern.Source).Int("count", n).Msg("counted pattern")

		records = append(records, Record{
			Line:    cm.pattern.LineNum,
			Pattern: cm.pattern.Source,
			Count:   n,
		})
	}

	return records, skipped, nil
}

// ErrOutputIsInput is returned when the derived output path would overwrite
// the document.
var ErrOutputIsInput = errors.New("output path equals document path (document name has no .txt)")

// Run counts every pattern of patternsPath in documentPath and writes the
// report next to the document, at OutputPath(documentPath).
func (c *Counter) Run(ctx context.Context, documentPath, patternsPath string) (*Result, error) {
	result := &Result{
		OutputPath: OutputPath(documentPath),
		Metadata: Metadata{
			DocumentPath: documentPath,
			PatternsPath: patternsPath,
			Engine:       c.engine.Name(),
			StartTime:    time.Now(),
		},
	}

	if result.OutputPath == documentPath {
		return nil, failure.IO("deriving output file for", documentPath, ErrOutputIsInput)
	}

	text, err := parser.ReadDocument(ctx, documentPath)
	if err != nil {
		return nil, err
	}
	result.Metadata.DocumentBytes = len(text)

	patterns, err := parser.ReadPatterns(ctx, patternsPath)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("document", documentPath).
		Int("bytes", len(text)).
		Int("patterns", len(patterns)).
		Msg("loaded inputs")

	result.Records, result.Skipped, err = c.Count(ctx, text, patterns)
	if err != nil {
		return nil, err
	}

	if err := WriteRecords(result.OutputPath, result.Records); err != nil {
		return nil, err
	}

	result.Metadata.EndTime = time.Now()

	log.Info().
		Str("output", result.OutputPath).
		Int("patterns", len(result.Records)).
		Int("skipped", len(result.Skipped)).
		Dur("duration", result.Metadata.EndTime.Sub(result.Metadata.StartTime)).
		Msg("pattern count complete")

	return result, nil
}
