package tokenizer_test

import (
	"context"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/yaklabco/gospell/pkg/lang"
	"github.com/yaklabco/gospell/pkg/token"
	"github.com/yaklabco/gospell/pkg/tokenizer"
)

// knownWords builds an isKnown predicate over a fixed vocabulary. Words
// shorter than three runes are always known, matching how the checker wires
// the predicate.
func knownWords(words ...string) func(string) bool {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return func(word string) bool {
		if utf8.RuneCountInString(word) < 3 {
			return true
		}
		_, ok := set[strings.ToLower(word)]
		return ok
	}
}

func findText(t *testing.T, text string, isKnown func(string) bool) []token.WordLocation {
	t.Helper()
	return tokenizer.FindLocations(context.Background(), text, lang.Text, isKnown, nil)
}

func TestFindLocationsTextMode(t *testing.T) {
	t.Parallel()

	got := findText(t, "helo world\nwrld again\n", knownWords("world", "again"))

	want := []token.WordLocation{
		{Word: "helo", Locations: []token.TextRange{{StartByte: 0, EndByte: 4}}},
		{Word: "wrld", Locations: []token.TextRange{{StartByte: 11, EndByte: 15}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLocations() = %+v, want %+v", got, want)
	}
}

func TestFindLocationsEmptyText(t *testing.T) {
	t.Parallel()

	if got := findText(t, "", knownWords()); got != nil {
		t.Errorf("FindLocations(\"\") = %+v, want nil", got)
	}
}

func TestFindLocationsSplitsIdentifiers(t *testing.T) {
	t.Parallel()

	got := findText(t, "doSomethingWierd", knownWords("do", "something"))

	want := []token.WordLocation{
		{Word: "Wierd", Locations: []token.TextRange{{StartByte: 11, EndByte: 16}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLocations() = %+v, want %+v", got, want)
	}
}

func TestFindLocationsRepeatedWord(t *testing.T) {
	t.Parallel()

	got := findText(t, "wrld and wrld", knownWords("and"))

	want := []token.WordLocation{
		{Word: "wrld", Locations: []token.TextRange{
			{StartByte: 0, EndByte: 4},
			{StartByte: 9, EndByte: 13},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLocations() = %+v, want %+v", got, want)
	}
}

func TestFindLocationsDefaultSkipPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"url", "visit https://example.com/wierd now"},
		{"hex color", "color #abcdefwierd here"},
		{"email", "mail wierd@example.com today"},
		{"unix path", "open /usr/share/wierd today"},
		{"uuid", "id 123e4567-e89b-12d3-a456-426614174000 today"},
		{"commit hash", "deploy 0123abc4567 today"},
		{"markdown link", "see [wierd](https://example.com) today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := findText(t, tt.text,
				knownWords("visit", "now", "color", "here", "mail", "open", "today", "deploy", "see"))
			if len(got) != 0 {
				t.Errorf("FindLocations(%q) = %+v, want no findings", tt.text, got)
			}
		})
	}
}

func TestFindLocationsUserSkipPatterns(t *testing.T) {
	t.Parallel()

	userPatterns := []*regexp.Regexp{regexp.MustCompile(`TODO[^\n]*`)}

	got := tokenizer.FindLocations(context.Background(),
		"TODO wierd\nhelo\n", lang.Text, knownWords(), userPatterns)

	want := []token.WordLocation{
		{Word: "helo", Locations: []token.TextRange{{StartByte: 11, EndByte: 15}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLocations() = %+v, want %+v", got, want)
	}
}

func TestDefaultSkipPatternsIsStable(t *testing.T) {
	t.Parallel()

	first := tokenizer.DefaultSkipPatterns()
	second := tokenizer.DefaultSkipPatterns()

	if len(first) == 0 {
		t.Fatal("DefaultSkipPatterns() returned no patterns")
	}
	if len(first) != len(second) {
		t.Errorf("pattern count changed between calls: %d vs %d", len(first), len(second))
	}
}

func TestGrammarModeGoComment(t *testing.T) {
	t.Parallel()

	src := "package main\n\n// wrld comment\n"

	got := tokenizer.FindLocations(context.Background(), src, lang.Go,
		knownWords("main", "comment"), nil)

	want := []token.WordLocation{
		{Word: "wrld", Locations: []token.TextRange{{StartByte: 17, EndByte: 21}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLocations() = %+v, want %+v", got, want)
	}
}

func TestGrammarModeGoString(t *testing.T) {
	t.Parallel()

	src := "package main\n\nvar s = \"helo wrld\"\n"

	got := tokenizer.FindLocations(context.Background(), src, lang.Go,
		knownWords("main"), nil)

	want := []token.WordLocation{
		{Word: "helo", Locations: []token.TextRange{{StartByte: 23, EndByte: 27}}},
		{Word: "wrld", Locations: []token.TextRange{{StartByte: 28, EndByte: 32}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLocations() = %+v, want %+v", got, want)
	}
}

func TestGrammarModeIgnoresKeywordsAndImports(t *testing.T) {
	t.Parallel()

	// Keywords, selector expressions and import paths are never captured,
	// so intentionally odd spellings there must not surface.
	src := "package main\n\nimport \"github.com/wierd/pkgg\"\n"

	got := tokenizer.FindLocations(context.Background(), src, lang.Go,
		knownWords("main"), nil)

	if len(got) != 0 {
		t.Errorf("FindLocations() = %+v, want no findings", got)
	}
}

func TestGrammarModeDefaultPatternsInsideNodes(t *testing.T) {
	t.Parallel()

	src := "package main\n\nvar s = \"https://example.com/wierd\"\n"

	got := tokenizer.FindLocations(context.Background(), src, lang.Go,
		knownWords("main"), nil)

	if len(got) != 0 {
		t.Errorf("FindLocations() = %+v, want no findings", got)
	}
}

func TestGrammarModeUserPatternDropsWholeNode(t *testing.T) {
	t.Parallel()

	src := "package main\n\n// nolint: wierd\n"
	userPatterns := []*regexp.Regexp{regexp.MustCompile(`nolint`)}

	got := tokenizer.FindLocations(context.Background(), src, lang.Go,
		knownWords("main"), userPatterns)

	if len(got) != 0 {
		t.Errorf("FindLocations() = %+v, want no findings", got)
	}
}
