package counter

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// RE2Engine accepts patterns in RE2 syntax. Patterns are checked by the
// standard library parser, so lookaround and backreferences are rejected,
// and matched in regexp2's RE2 mode: "$" matches only at the end of the
// text and \d \s \w are ASCII classes.
//
// Matches are found one after another, each search starting where the
// previous match ended. An empty match right after a non-empty one is
// counted, unlike regexp.FindAll which drops it.
type RE2Engine struct{}

// Name returns "re2".
func (RE2Engine) Name() string {
	return EngineRE2
}

// Compile parses pattern as RE2 syntax.
func (RE2Engine) Compile(pattern string) (Matcher, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = DefaultMatchTimeout
	return findMatcher{re: re}, nil
}
