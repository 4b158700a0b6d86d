package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestWordlistCheck(t *testing.T) {
	w := NewWordlist([]string{"Hello", "world", "naïve", "# comment", "", "  padded  "})

	tests := []struct {
		word string
		want bool
	}{
		{"hello", true},
		{"Hello", true},
		{"HELLO", true},
		{"world", true},
		{"naïve", true},
		{"padded", true},
		{"comment", false},
		{"missing", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := w.Check(tt.word); got != tt.want {
			t.Errorf("Check(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWordlistSuggest(t *testing.T) {
	w := NewWordlist([]string{"hello", "help", "world", "word", "work", "unrelated"})

	tests := []struct {
		name string
		word string
		want []string
	}{
		{name: "close matches", word: "wrld", want: []string{"world", "word"}},
		{name: "exact match excluded", word: "hello", want: []string{"help"}},
		{name: "nothing close", word: "zzzzzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Suggest(tt.word)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestWordlistSuggestCap(t *testing.T) {
	words := make([]string, 0, 30)
	for r := 'a'; r < 'a'+30; r++ {
		words = append(words, "wor"+string(r))
	}
	w := NewWordlist(words)

	got := w.Suggest("worz")
	if len(got) > maxSuggestions {
		t.Errorf("Suggest returned %d suggestions, want at most %d", len(got), maxSuggestions)
	}
}

func TestReadWordlist(t *testing.T) {
	input := "alpha\n# a comment\n\nbeta\n  gamma  \n"
	w, err := ReadWordlist(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadWordlist() error = %v", err)
	}
	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", w.Len())
	}
	for _, word := range []string{"alpha", "beta", "gamma"} {
		if !w.Check(word) {
			t.Errorf("Check(%q) = false, want true", word)
		}
	}
}

func TestLoadBuiltin(t *testing.T) {
	for _, id := range BuiltinIDs {
		t.Run(id, func(t *testing.T) {
			w, err := loadBuiltin(id)
			if err != nil {
				t.Fatalf("loadBuiltin(%q) error = %v", id, err)
			}
			if w.Len() == 0 {
				t.Errorf("builtin %q is empty", id)
			}
		})
	}

	if !IsBuiltin("software_terms") {
		t.Error("IsBuiltin(software_terms) = false, want true")
	}
	if IsBuiltin("en_us") {
		t.Error("IsBuiltin(en_us) = true, want false")
	}
}

func TestManagerBuiltin(t *testing.T) {
	m := NewManager(t.TempDir())

	d, err := m.Get(context.Background(), "computing_acronyms")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !d.Check("http") {
		t.Error("builtin acronym list should accept http")
	}

	// Second lookup must hit the in-memory cache and return the same value.
	again, err := m.Get(context.Background(), "computing_acronyms")
	if err != nil {
		t.Fatalf("Get() second call error = %v", err)
	}
	if d != again {
		t.Error("Get() returned a different instance on cache hit")
	}
}

func TestManagerLocalSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.txt")
	if err := os.WriteFile(path, []byte("frobnicate\nquux\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	m.RegisterSource(Source{ID: "custom", Path: path})

	d, err := m.Get(context.Background(), "custom")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !d.Check("frobnicate") {
		t.Error("custom dictionary should accept frobnicate")
	}
}

func TestManagerFilePathID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("zorblat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	d, err := m.Get(context.Background(), path)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !d.Check("zorblat") {
		t.Error("file-path dictionary should accept zorblat")
	}
}

func TestManagerUnknown(t *testing.T) {
	m := NewManager(t.TempDir())

	if _, err := m.Get(context.Background(), "no_such_dictionary"); err == nil {
		t.Fatal("Get() error = nil, want ErrUnknownDictionary")
	}
}

func TestManagerGetAllSkipsFailures(t *testing.T) {
	m := NewManager(t.TempDir())

	dicts := m.GetAll(context.Background(), []string{"gospell", "no_such_dictionary", "software_terms"})
	if len(dicts) != 2 {
		t.Fatalf("GetAll() returned %d dictionaries, want 2", len(dicts))
	}
}

func TestManagerRemoteSource(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("remoteword\nanotherword\n"))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	m := NewManager(cacheDir)
	m.RegisterSource(Source{ID: "remote", URL: srv.URL + "/remote.txt"})

	d, err := m.Get(context.Background(), "remote")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !d.Check("remoteword") {
		t.Error("remote dictionary should accept remoteword")
	}
	if requests != 1 {
		t.Fatalf("server saw %d requests, want 1", requests)
	}

	// A fresh manager over the same cache directory must serve the cached
	// file without another request.
	m2 := NewManager(cacheDir)
	m2.RegisterSource(Source{ID: "remote", URL: srv.URL + "/remote.txt"})
	if _, err := m2.Get(context.Background(), "remote"); err != nil {
		t.Fatalf("Get() from cache error = %v", err)
	}
	if requests != 1 {
		t.Fatalf("server saw %d requests after cache hit, want 1", requests)
	}
}

func TestManagerAvailable(t *testing.T) {
	m := NewManager(t.TempDir())
	m.RegisterSource(Source{ID: "zcustom", URL: "https://example.com/z.txt"})

	ids := m.Available()
	if !slices.IsSorted(ids) {
		t.Error("Available() is not sorted")
	}
	for _, want := range []string{"gospell", "en_us", "zcustom"} {
		if !slices.Contains(ids, want) {
			t.Errorf("Available() missing %q", want)
		}
	}
}
