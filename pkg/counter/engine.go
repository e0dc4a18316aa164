package counter

import (
	"fmt"
	"sort"
)

// Engine compiles pattern sources into matchers.
type Engine interface {
	// Name returns the engine name used on the command line.
	Name() string

	// Compile parses a pattern. The returned error is the engine's own
	// syntax error.
	Compile(pattern string) (Matcher, error)
}

// Matcher counts matches of a compiled pattern.
type Matcher interface {
	// Count returns the number of non-overlapping matches in text, scanning
	// left to right and resuming after the end of each match.
	Count(text string) (int, error)
}

// Engine names.
const (
	EngineRE2       = "re2"
	EngineBacktrack = "backtrack"
)

var engines = map[string]func() Engine{
	EngineRE2:       func() Engine { return RE2Engine{} },
	EngineBacktrack: func() Engine { return NewBacktrackEngine() },
}

// EngineByName returns the engine registered under name.
func EngineByName(name string) (Engine, error) {
	newEngine, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown regex engine %q (must be one of %v)", name, EngineNames())
	}
	return newEngine(), nil
}

// EngineNames returns the registered engine names, sorted.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
