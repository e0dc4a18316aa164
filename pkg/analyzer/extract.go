package analyzer

import (
	"regexp"
)

// Token patterns. The IP pattern is lexical only: each group is 1-3 digits,
// so 999.999.999.999 is accepted.
const (
	IPPattern       = `\b(?:\d{1,3}\.){3}\d{1,3}\b`
	UsernamePattern = `user=([\w-]+)`
)

// RegexpExtractor extracts the text of one capture group (0 for the whole
// match) from every match of a regular expression.
type RegexpExtractor struct {
	name  string
	re    *regexp.Regexp
	group int
}

// NewRegexpExtractor creates an extractor returning the given capture group.
func NewRegexpExtractor(name string, re *regexp.Regexp, group int) *RegexpExtractor {
	return &RegexpExtractor{name: name, re: re, group: group}
}

// NewIPExtractor returns an extractor for IPv4-shaped tokens.
func NewIPExtractor() *RegexpExtractor {
	return NewRegexpExtractor("ip", regexp.MustCompile(IPPattern), 0)
}

// NewUsernameExtractor returns an extractor for the name in user=<name> tokens.
func NewUsernameExtractor() *RegexpExtractor {
	return NewRegexpExtractor("user", regexp.MustCompile(UsernamePattern), 1)
}

// Name returns the extractor name.
func (e *RegexpExtractor) Name() string {
	return e.name
}

// Extract returns the distinct tokens on the line.
func (e *RegexpExtractor) Extract(line string) []string {
	matches := e.re.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tok := m[e.group]
		if seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}
