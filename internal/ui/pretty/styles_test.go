package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yaklabco/gospell/pkg/runner"
	"github.com/yaklabco/gospell/pkg/token"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "always", mode: "always", want: true},
		{name: "never", mode: "never", want: false},
		{name: "auto with non-tty writer", mode: "auto", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsColorEnabled(tt.mode, &buf); got != tt.want {
				t.Errorf("IsColorEnabled(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatFinding(t *testing.T) {
	s := NewStyles(false)

	f := runner.Finding{
		Word:   "wrold",
		Range:  token.TextRange{StartByte: 6, EndByte: 11},
		Line:   1,
		Column: 7,
	}

	out := s.FormatFinding("docs/readme.txt", f, []string{"world", "word"})

	for _, want := range []string{"docs/readme.txt:1:7", "unknown word", "wrold", "Did you mean: world, word"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatFinding() = %q, missing %q", out, want)
		}
	}
}

func TestFormatFindingNoSuggestions(t *testing.T) {
	s := NewStyles(false)

	out := s.FormatFinding("a.txt", runner.Finding{Word: "zzq", Line: 1, Column: 1}, nil)
	if strings.Contains(out, "Did you mean") {
		t.Errorf("FormatFinding() = %q, should omit suggestion line", out)
	}
}

func TestFormatSourceContext(t *testing.T) {
	s := NewStyles(false)

	out := s.FormatSourceContext("hello wrold", 7)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("FormatSourceContext() = %q, want 2 lines", out)
	}
	caretCol := strings.Index(lines[1], "^")
	wordCol := strings.Index(lines[0], "wrold")
	if caretCol != wordCol {
		t.Errorf("caret at column %d, word at column %d", caretCol, wordCol)
	}
}

func TestFormatFileHeader(t *testing.T) {
	s := NewStyles(false)

	if out := s.FormatFileHeader("a.txt", 1); !strings.Contains(out, "(1 unknown word)") {
		t.Errorf("FormatFileHeader() = %q, want singular count", out)
	}
	if out := s.FormatFileHeader("a.txt", 3); !strings.Contains(out, "(3 unknown words)") {
		t.Errorf("FormatFileHeader() = %q, want plural count", out)
	}
}
