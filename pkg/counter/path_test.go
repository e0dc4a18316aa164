package counter

import "testing"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"novel.txt", "novel_wc.txt"},
		{"archive.v2.txt", "archive.v2_wc.txt"},
		{"/books/moby.txt", "/books/moby_wc.txt"},
		{"a.txt.txt", "a_wc.txt.txt"},
		{"notes.txt.bak", "notes_wc.txt.bak"},
		{"novel.md", "novel.md"},
		{"novel", "novel"},
		{"NOVEL.TXT", "NOVEL.TXT"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
