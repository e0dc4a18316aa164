// Package analyzer tallies IP addresses and usernames found in log lines.
package analyzer

import (
	"sort"
	"time"
)

// FrequencyTable maps a token to the number of lines it appeared on.
// Counts only ever grow.
type FrequencyTable map[string]int

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() FrequencyTable {
	return make(FrequencyTable)
}

// Add increments the count for key by one.
func (t FrequencyTable) Add(key string) {
	t[key]++
}

// AddAll increments every key once.
func (t FrequencyTable) AddAll(keys []string) {
	for _, k := range keys {
		t.Add(k)
	}
}

// Count returns the count for key, or 0 if it was never seen.
func (t FrequencyTable) Count(key string) int {
	return t[key]
}

// Len returns the number of distinct keys.
func (t FrequencyTable) Len() int {
	return len(t)
}

// Entry is a single key and its count.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Entries returns the table sorted by count descending, then key ascending.
func (t FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for k, v := range t {
		entries = append(entries, Entry{Key: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Result holds the tables built from one analysis run.
type Result struct {
	// IPs counts IP-address-shaped tokens.
	IPs FrequencyTable

	// Users counts names captured from user=<name> tokens.
	Users FrequencyTable

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about an analysis run.
type Metadata struct {
	// Sources lists the files that were read, in order.
	Sources []string

	// LinesProcessed is the total number of lines read.
	LinesProcessed int

	// StartTime is when analysis began.
	StartTime time.Time

	// EndTime is when analysis completed.
	EndTime time.Time
}

// NewResult returns a Result with empty tables.
func NewResult() *Result {
	return &Result{
		IPs:   NewFrequencyTable(),
		Users: NewFrequencyTable(),
	}
}

// IPCount returns the number of distinct IP addresses.
func (r *Result) IPCount() int {
	return r.IPs.Len()
}

// UserCount returns the number of distinct usernames.
func (r *Result) UserCount() int {
	return r.Users.Len()
}
