package runner

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/gospell/pkg/checker"
	"github.com/yaklabco/gospell/pkg/config"
	"github.com/yaklabco/gospell/pkg/dictionary"
)

func newTestChecker(t *testing.T, settings config.Settings) *checker.Checker {
	t.Helper()

	dir := t.TempDir()
	dictPath := filepath.Join(dir, "en_test.txt")
	words := "hello\nworld\npackage\nmain\nexample\nnotes\n"
	if err := os.WriteFile(dictPath, []byte(words), 0o644); err != nil {
		t.Fatal(err)
	}

	manager := dictionary.NewManager(dir)
	manager.RegisterSource(dictionary.Source{ID: "en_test", Path: dictPath})
	// Fixtures contain Go sources; shadow the remote Go term dictionary
	// so lookups never leave the filesystem.
	manager.RegisterSource(dictionary.Source{ID: "go", Path: dictPath})

	settings.Dictionaries = append(settings.Dictionaries, "en_test")
	if settings.MinWordLength == 0 {
		settings.MinWordLength = config.DefaultMinWordLength
	}

	return checker.New(config.New(settings, ""), manager)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	root := writeTree(t, map[string]string{
		"readme.txt":           "hello",
		"src/app.go":           "package main",
		"src/deep/inner.txt":   "hello",
		".hidden/secret.txt":   "hello",
		".hiddenfile":          "hello",
		"vendor/lib/dep.go":    "package dep",
		"node_modules/x/y.js":  "hello",
	})

	files, err := Discover(context.Background(), Options{WorkingDir: root})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"readme.txt", "src/app.go", "src/deep/inner.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverExtensionsFilter(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go":  "package a",
		"b.txt": "hello",
		"c.md":  "hello",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Extensions: []string{".go", ".md"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"a.go", "c.md"}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.txt":          "hello",
		"skip.txt":          "hello",
		"docs/api/spec.txt": "hello",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:   root,
		ExcludeGlobs: []string{"skip.txt", "docs/**"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"keep.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverIncludeVendored(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.txt":       "hello",
		"vendor/dep.txt": "hello",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:      root,
		IncludeVendored: true,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"main.txt", "vendor/dep.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverExplicitFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"notes.txt": "hello",
		"other.txt": "hello",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Paths:      []string{"notes.txt", "notes.txt"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"notes.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want deduplicated %v", got, want)
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	root := t.TempDir()

	_, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Paths:      []string{"nope.txt"},
	})
	if err == nil {
		t.Fatal("Discover() error = nil, want stat error")
	}
}

func TestRun(t *testing.T) {
	root := writeTree(t, map[string]string{
		"clean.txt":  "hello world\n",
		"dirty.txt":  "hello wrold\nmistke here\n",
		"schema.bin": "hello \x00\x01\x02 world",
	})

	r := New(newTestChecker(t, config.Settings{}))
	result, err := r.Run(context.Background(), Options{WorkingDir: root, Jobs: 2})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 3 {
		t.Errorf("FilesDiscovered = %d, want 3", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1 (binary)", result.Stats.FilesSkipped)
	}
	if result.Stats.FilesWithIssues != 1 {
		t.Errorf("FilesWithIssues = %d, want 1", result.Stats.FilesWithIssues)
	}
	if result.Stats.WordsFlagged != 3 {
		t.Errorf("WordsFlagged = %d, want 3", result.Stats.WordsFlagged)
	}
	if !result.HasFindings() {
		t.Error("HasFindings() = false, want true")
	}
	if result.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}

	// Outcomes are ordered by path regardless of worker completion order.
	got := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		got = append(got, filepath.Base(f.Path))
	}
	want := []string{"clean.txt", "dirty.txt", "schema.bin"}
	if !slices.Equal(got, want) {
		t.Errorf("outcome order = %v, want %v", got, want)
	}
}

func TestRunFindingPositions(t *testing.T) {
	root := writeTree(t, map[string]string{
		"doc.txt": "hello wrold\nmistke\n",
	})

	r := New(newTestChecker(t, config.Settings{}))
	result, err := r.Run(context.Background(), Options{WorkingDir: root})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(result.Files))
	}

	findings := result.Files[0].Findings
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2: %v", len(findings), findings)
	}

	first, second := findings[0], findings[1]
	if first.Word != "wrold" || first.Line != 1 || first.Column != 7 {
		t.Errorf("finding[0] = %+v, want wrold at 1:7", first)
	}
	if second.Word != "mistke" || second.Line != 2 || second.Column != 1 {
		t.Errorf("finding[1] = %+v, want mistke at 2:1", second)
	}
	if first.Range.StartByte != 6 || first.Range.EndByte != 11 {
		t.Errorf("finding[0] range = %v, want bytes 6..11", first.Range)
	}
}

func TestRunDeterministicAcrossJobs(t *testing.T) {
	files := make(map[string]string, 20)
	for i := range 20 {
		files[filepath.Join("d", string(rune('a'+i))+".txt")] = "zzmistake hello\n"
	}
	root := writeTree(t, files)

	r := New(newTestChecker(t, config.Settings{}))

	var wantPaths []string
	for _, jobs := range []int{1, 4, 16} {
		result, err := r.Run(context.Background(), Options{WorkingDir: root, Jobs: jobs})
		if err != nil {
			t.Fatalf("Run(jobs=%d) error = %v", jobs, err)
		}
		paths := make([]string, 0, len(result.Files))
		for _, f := range result.Files {
			paths = append(paths, f.Path)
		}
		if wantPaths == nil {
			wantPaths = paths
			continue
		}
		if !slices.Equal(paths, wantPaths) {
			t.Errorf("Run(jobs=%d) order differs: %v vs %v", jobs, paths, wantPaths)
		}
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	r := New(newTestChecker(t, config.Settings{}))

	result, err := r.Run(context.Background(), Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Errorf("Run() on empty dir = %+v, want empty result", result.Stats)
	}
}

func TestRunCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": strings.Repeat("hello ", 100)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(newTestChecker(t, config.Settings{}))
	if _, err := r.Run(ctx, Options{WorkingDir: root}); err == nil {
		t.Fatal("Run() error = nil, want cancellation error")
	}
}
