package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jranae/RegularExpressions-JRB/internal/cli/commands"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestExecute_LogScan(t *testing.T) {
	logPath := writeTempFile(t, t.TempDir(), "access.log", "1.2.3.4 user=ann\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "ips",
			args:       []string{logPath, "1"},
			wantCode:   0,
			wantStdout: "1.2.3.4: 1\n",
		},
		{
			name:       "missing arg",
			args:       []string{logPath},
			wantCode:   2,
			wantStderr: "Usage: logscan <log-file-path> <mode-flag>",
		},
		{
			name:       "negative mode",
			args:       []string{logPath, "-1"},
			wantCode:   0,
			wantStdout: "1 unique IP addresses in the log.\n1 unique users in the log.\n",
		},
		{
			name:       "bad mode",
			args:       []string{logPath, "x"},
			wantCode:   2,
			wantStderr: "Error [ArgumentFormatFailure]:",
		},
		{
			name:       "missing file",
			args:       []string{filepath.Join(filepath.Dir(logPath), "nope.log"), "1"},
			wantCode:   2,
			wantStderr: "Error [IOFailure]:",
		},
		{
			name:       "missing config",
			args:       []string{"--config", filepath.Join(filepath.Dir(logPath), "nope.yaml"), logPath, "1"},
			wantCode:   2,
			wantStderr: "Error [IOFailure]:",
		},
		{
			name:       "unknown flag",
			args:       []string{"--bogus", logPath, "1"},
			wantCode:   2,
			wantStderr: "Error: unknown flag: --bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := execute(context.Background(), commands.NewLogScanCommand(), tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("execute() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestExecute_PatternCount(t *testing.T) {
	dir := t.TempDir()
	doc := writeTempFile(t, dir, "doc.txt", "abc abc\n")
	good := writeTempFile(t, dir, "good.txt", "abc\n")
	mixed := writeTempFile(t, dir, "mixed.txt", "abc\n(\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"success", []string{doc, good}, 0, ""},
		{"invalid pattern", []string{doc, mixed}, 2, "Error [PatternCompileFailure]:"},
		{"skipped pattern", []string{"--skip-invalid", doc, mixed}, 1, "Skipped [PatternCompileFailure]:"},
		{"too many args", []string{doc, good, good}, 2, "Usage: patterncount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := execute(context.Background(), commands.NewPatternCountCommand(), tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("execute() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestExecute_ResetsExitCode(t *testing.T) {
	commands.ExitCode = 1
	logPath := writeTempFile(t, t.TempDir(), "access.log", "")

	var stdout, stderr bytes.Buffer
	if code := execute(context.Background(), commands.NewLogScanCommand(), []string{logPath, "0"}, &stdout, &stderr); code != 0 {
		t.Errorf("execute() = %d, want 0", code)
	}
	if stdout.String() != "0 unique IP addresses in the log.\n0 unique users in the log.\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}
