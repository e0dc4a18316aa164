package analyzer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
	"github.com/Jranae/RegularExpressions-JRB/pkg/parser"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// mockSource is a test LineSource that returns predefined lines.
type mockSource struct {
	lines []*parser.LogLine
	index int
	err   error // returned once lines are exhausted, instead of io.EOF
}

func newMockSource(contents ...string) *mockSource {
	m := &mockSource{}
	for i, c := range contents {
		m.lines = append(m.lines, &parser.LogLine{Content: c, Source: "test.log", LineNum: i + 1})
	}
	return m
}

func (m *mockSource) Next(ctx context.Context) (*parser.LogLine, error) {
	if m.index >= len(m.lines) {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	line := m.lines[m.index]
	m.index++
	return line, nil
}

func (m *mockSource) Close() error {
	return nil
}

func analyze(t *testing.T, lines ...string) *Result {
	t.Helper()
	result, err := NewAnalyzer().Analyze(context.Background(), newMockSource(lines...))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return result
}

func TestAnalyzer_Analyze(t *testing.T) {
	result := analyze(t, "1.2.3.4 user=alice", "1.2.3.4 user=bob")

	wantIPs := FrequencyTable{"1.2.3.4": 2}
	wantUsers := FrequencyTable{"alice": 1, "bob": 1}

	if !reflect.DeepEqual(result.IPs, wantIPs) {
		t.Errorf("IPs = %v, want %v", result.IPs, wantIPs)
	}
	if !reflect.DeepEqual(result.Users, wantUsers) {
		t.Errorf("Users = %v, want %v", result.Users, wantUsers)
	}
	if result.IPCount() != 1 {
		t.Errorf("IPCount() = %d, want 1", result.IPCount())
	}
	if result.UserCount() != 2 {
		t.Errorf("UserCount() = %d, want 2", result.UserCount())
	}
	if result.Metadata.LinesProcessed != 2 {
		t.Errorf("LinesProcessed = %d, want 2", result.Metadata.LinesProcessed)
	}
	if !reflect.DeepEqual(result.Metadata.Sources, []string{"test.log"}) {
		t.Errorf("Sources = %v, want [test.log]", result.Metadata.Sources)
	}
}

func TestAnalyzer_LinesWithoutTokens(t *testing.T) {
	a := NewAnalyzer()
	result := NewResult()
	a.ProcessLine(result, "10.0.0.1 user=carol")

	for _, line := range []string{
		"",
		"GET /index.html 200",
		"user= nobody",
		"1.2.3 partial address",
		"build 1234.5.6",
	} {
		a.ProcessLine(result, line)
	}

	if !reflect.DeepEqual(result.IPs, FrequencyTable{"10.0.0.1": 1}) {
		t.Errorf("IPs = %v, want unchanged", result.IPs)
	}
	if !reflect.DeepEqual(result.Users, FrequencyTable{"carol": 1}) {
		t.Errorf("Users = %v, want unchanged", result.Users)
	}
}

func TestAnalyzer_IntraLineDedup(t *testing.T) {
	result := analyze(t,
		"1.1.1.1 1.1.1.1",
		"user=eve user=eve 1.1.1.1",
	)

	if got := result.IPs.Count("1.1.1.1"); got != 2 {
		t.Errorf("IPs[1.1.1.1] = %d, want 2 (once per line)", got)
	}
	if got := result.Users.Count("eve"); got != 1 {
		t.Errorf("Users[eve] = %d, want 1", got)
	}
}

func TestAnalyzer_OutOfRangeOctets(t *testing.T) {
	result := analyze(t, "from 999.999.999.999 and 256.0.0.1")

	for _, ip := range []string{"999.999.999.999", "256.0.0.1"} {
		if result.IPs.Count(ip) != 1 {
			t.Errorf("IPs[%s] = %d, want 1", ip, result.IPs.Count(ip))
		}
	}
}

func TestAnalyzer_EmptySource(t *testing.T) {
	result := analyze(t)

	if result.IPCount() != 0 || result.UserCount() != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", result.IPCount(), result.UserCount())
	}
}

func TestAnalyzer_ReadErrorFailsFast(t *testing.T) {
	source := newMockSource("1.2.3.4 user=alice")
	source.err = failure.IO("reading", "test.log", errors.New("disk gone"))

	result, err := NewAnalyzer().Analyze(context.Background(), source)
	if !errors.Is(err, failure.ErrIO) {
		t.Errorf("Analyze() error = %v, want ErrIO", err)
	}
	if result != nil {
		t.Errorf("Analyze() result = %+v, want nil on failure", result)
	}
}

func TestAnalyzer_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyzer().Analyze(ctx, newMockSource("1.2.3.4"))
	if err != context.Canceled {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
}

type fixedExtractor struct {
	tokens []string
}

func (f fixedExtractor) Name() string { return "fixed" }
func (f fixedExtractor) Extract(string) []string { return f.tokens }

func TestAnalyzer_WithExtractors(t *testing.T) {
	a := NewAnalyzer(
		WithIPExtractor(fixedExtractor{tokens: []string{"x"}}),
		WithUserExtractor(fixedExtractor{}),
	)

	result, err := a.Analyze(context.Background(), newMockSource("anything", "else"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.IPs.Count("x") != 2 {
		t.Errorf("IPs[x] = %d, want 2", result.IPs.Count("x"))
	}
	if result.UserCount() != 0 {
		t.Errorf("UserCount() = %d, want 0", result.UserCount())
	}
}

func TestAnalyzer_LogsExtractorNames(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = saved
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}()

	a := NewAnalyzer(WithUserExtractor(fixedExtractor{}))
	if _, err := a.Analyze(context.Background(), newMockSource("1.2.3.4")); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"ip_extractor":"ip"`, `"user_extractor":"fixed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestAnalyzer_FileSource(t *testing.T) {
	path := t.TempDir() + "/access.log"
	content := "192.168.0.1 - user=alice GET /\n" +
		"192.168.0.1 - user=bob GET /\n" +
		"10.0.0.7 - user=alice POST /login\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	source := parser.NewFileSource([]string{path})
	defer source.Close()

	result, err := NewAnalyzer().Analyze(context.Background(), source)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	wantIPs := []Entry{{"192.168.0.1", 2}, {"10.0.0.7", 1}}
	if got := result.IPs.Entries(); !reflect.DeepEqual(got, wantIPs) {
		t.Errorf("IPs.Entries() = %v, want %v", got, wantIPs)
	}
	wantUsers := []Entry{{"alice", 2}, {"bob", 1}}
	if got := result.Users.Entries(); !reflect.DeepEqual(got, wantUsers) {
		t.Errorf("Users.Entries() = %v, want %v", got, wantUsers)
	}
}
