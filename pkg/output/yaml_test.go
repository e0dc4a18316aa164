package output

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewYAMLFormatter(t *testing.T) {
	f := NewYAMLFormatter(FormatOptions{})
	if f.Name() != "yaml" {
		t.Errorf("Name() = %q, want %q", f.Name(), "yaml")
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	output := format(t, NewYAMLFormatter(FormatOptions{}), NewReport(createTestResult(), ModeUsers))

	if !strings.HasPrefix(output, "mode: users\n") {
		t.Errorf("output does not start with mode line:\n%s", output)
	}

	var parsed Report
	if err := yaml.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if parsed.Mode != ModeUsers {
		t.Errorf("Mode = %v, want %v", parsed.Mode, ModeUsers)
	}
	if len(parsed.Users) != 2 || parsed.Users[0].Key != "alice" {
		t.Errorf("Users = %v, want alice first", parsed.Users)
	}
	if parsed.Summary.LinesProcessed != 3 {
		t.Errorf("LinesProcessed = %d, want 3", parsed.Summary.LinesProcessed)
	}
	if strings.Contains(output, "metadata:") {
		t.Errorf("metadata present without Verbose:\n%s", output)
	}
}

func TestYAMLFormatter_Verbose(t *testing.T) {
	output := format(t, NewYAMLFormatter(FormatOptions{Verbose: true}), NewReport(createTestResult(), ModeSummary))

	var parsed Report
	if err := yaml.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if parsed.Metadata == nil || len(parsed.Metadata.Sources) != 1 || parsed.Metadata.Sources[0] != "access.log" {
		t.Errorf("Metadata = %+v, want sources [access.log]", parsed.Metadata)
	}
}
