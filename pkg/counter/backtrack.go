package counter

import (
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single match attempt of the backtracking engine.
const DefaultMatchTimeout = 30 * time.Second

// BacktrackEngine compiles patterns with a backtracking engine that supports
// lookaround, backreferences and atomic groups. "$" also matches
// before a final newline.
type BacktrackEngine struct {
	// MatchTimeout bounds each match attempt; zero disables the limit.
	MatchTimeout time.Duration
}

// NewBacktrackEngine returns a BacktrackEngine with DefaultMatchTimeout.
func NewBacktrackEngine() *BacktrackEngine {
	return &BacktrackEngine{MatchTimeout: DefaultMatchTimeout}
}

// Name returns "backtrack".
func (e *BacktrackEngine) Name() string {
	return EngineBacktrack
}

// Compile parses pattern.
func (e *BacktrackEngine) Compile(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	if e.MatchTimeout > 0 {
		re.MatchTimeout = e.MatchTimeout
	}
	return findMatcher{re: re}, nil
}

// findMatcher counts by repeated search. After an empty match the next
// search starts one character further on.
type findMatcher struct {
	re *regexp2.Regexp
}

func (m findMatcher) Count(text string) (int, error) {
	count := 0
	match, err := m.re.FindStringMatch(text)
	for match != nil && err == nil {
		count++
		match, err = m.re.FindNextMatch(match)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
