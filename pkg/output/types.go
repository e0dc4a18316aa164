// Package output provides formatting for analysis results.
package output

import (
	"fmt"
	"time"

	"github.com/Jranae/RegularExpressions-JRB/pkg/analyzer"
)

// Mode selects which part of a log analysis is reported.
type Mode int

// Report modes, numbered as the command-line mode flag.
const (
	ModeSummary Mode = 0
	ModeIPs     Mode = 1
	ModeUsers   Mode = 2
)

// ModeFromFlag maps the integer mode flag to a Mode. Any value other than
// 1 or 2 selects the summary.
func ModeFromFlag(flag int) Mode {
	switch Mode(flag) {
	case ModeIPs:
		return ModeIPs
	case ModeUsers:
		return ModeUsers
	default:
		return ModeSummary
	}
}

func (m Mode) String() string {
	switch m {
	case ModeIPs:
		return "ips"
	case ModeUsers:
		return "users"
	default:
		return "summary"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ips":
		*m = ModeIPs
	case "users":
		*m = ModeUsers
	case "summary":
		*m = ModeSummary
	default:
		return fmt.Errorf("unknown report mode %q", text)
	}
	return nil
}

// Report is the complete log analysis output.
type Report struct {
	// Mode is the part of the analysis being reported.
	Mode Mode `json:"mode" yaml:"mode"`

	// Summary holds the distinct-key counts.
	Summary Summary `json:"summary" yaml:"summary"`

	// IPs is set in ModeIPs.
	IPs []analyzer.Entry `json:"ips,omitempty" yaml:"ips,omitempty"`

	// Users is set in ModeUsers.
	Users []analyzer.Entry `json:"users,omitempty" yaml:"users,omitempty"`

	// Metadata provides context about the analysis. Structured formats
	// include it only in verbose mode.
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// UniqueIPs is the number of distinct IP addresses.
	UniqueIPs int `json:"unique_ips" yaml:"unique_ips"`

	// UniqueUsers is the number of distinct usernames.
	UniqueUsers int `json:"unique_users" yaml:"unique_users"`

	// LinesProcessed is the total number of log lines analyzed.
	LinesProcessed int `json:"lines_processed" yaml:"lines_processed"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Sources lists the log files that were analyzed.
	Sources []string `json:"sources" yaml:"sources"`

	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates a Report from analysis results.
func NewReport(result *analyzer.Result, mode Mode) *Report {
	report := &Report{
		Mode: mode,
		Summary: Summary{
			UniqueIPs:      result.IPCount(),
			UniqueUsers:    result.UserCount(),
			LinesProcessed: result.Metadata.LinesProcessed,
		},
		Metadata: &Metadata{
			Sources:    result.Metadata.Sources,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
	}

	switch mode {
	case ModeIPs:
		report.IPs = result.IPs.Entries()
	case ModeUsers:
		report.Users = result.Users.Entries()
	}

	return report
}

// withoutMetadata returns a shallow copy of the report with Metadata unset.
func (r *Report) withoutMetadata() *Report {
	c := *r
	c.Metadata = nil
	return &c
}

// Entries returns the entries selected by the report mode.
func (r *Report) Entries() []analyzer.Entry {
	switch r.Mode {
	case ModeIPs:
		return r.IPs
	case ModeUsers:
		return r.Users
	default:
		return nil
	}
}
