package analyzer

// Extractor finds tokens in a single log line.
type Extractor interface {
	// Name identifies the extractor in logs.
	Name() string

	// Extract returns the distinct tokens on the line in order of first
	// appearance. A token occurring several times is returned once.
	Extract(line string) []string
}
