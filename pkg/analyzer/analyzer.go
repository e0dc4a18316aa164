package analyzer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Jranae/RegularExpressions-JRB/pkg/parser"
)

// Analyzer reads log lines and builds the IP and username frequency tables.
type Analyzer struct {
	ips   Extractor
	users Extractor
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithIPExtractor replaces the extractor feeding the IP table.
func WithIPExtractor(e Extractor) AnalyzerOption {
	return func(a *Analyzer) {
		a.ips = e
	}
}

// WithUserExtractor replaces the extractor feeding the username table.
func WithUserExtractor(e Extractor) AnalyzerOption {
	return func(a *Analyzer) {
		a.users = e
	}
}

// NewAnalyzer creates an analyzer using the standard IP and username extractors
// unless overridden by options.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		ips:   NewIPExtractor(),
		users: NewUsernameExtractor(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze reads every line from source and returns the resulting tables.
// Any read error aborts the run; no partial result is returned.
func (a *Analyzer) Analyze(ctx context.Context, source parser.LineSource) (*Result, error) {
	result := NewResult()
	result.Metadata.StartTime = time.Now()

	log.Debug().
		Str("ip_extractor", a.ips.Name()).
		Str("user_extractor", a.users.Name()).
		Msg("starting log analysis")

	sourcesMap := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log source: %w", err)
		}

		if !sourcesMap[line.Source] {
			sourcesMap[line.Source] = true
			result.Metadata.Sources = append(result.Metadata.Sources, line.Source)
		}

		a.ProcessLine(result, line.Content)
	}

	result.Metadata.EndTime = time.Now()

	log.Info().
		Int("lines", result.Metadata.LinesProcessed).
		Int("ips", result.IPCount()).
		Int("users", result.UserCount()).
		Dur("duration", result.Metadata.EndTime.Sub(result.Metadata.StartTime)).
		Msg("log analysis complete")

	return result, nil
}

// ProcessLine folds the tokens of a single line into result. Each distinct
// token on the line increments its count by exactly one.
func (a *Analyzer) ProcessLine(result *Result, line string) {
	result.Metadata.LinesProcessed++
	result.IPs.AddAll(a.ips.Extract(line))
	result.Users.AddAll(a.users.Extract(line))
}
