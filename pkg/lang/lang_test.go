package lang_test

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/gospell/pkg/dictionary"
	"github.com/yaklabco/gospell/pkg/lang"
)

func TestLanguageDictionaries(t *testing.T) {
	t.Parallel()

	// Programming languages carry a term dictionary; markup and config
	// formats do not.
	withTerms := []lang.Type{lang.Go, lang.Rust, lang.Python, lang.JavaScript, lang.Bash}
	for _, typ := range withTerms {
		spec, ok := lang.Lookup(typ)
		if !ok {
			t.Fatalf("Lookup(%s) not found", typ)
		}
		if len(spec.Dictionaries) == 0 {
			t.Errorf("%s has no language dictionary", typ)
		}
	}

	// Every declared ID must resolve against the default source table,
	// or the manager would skip it on each check.
	for _, spec := range lang.All() {
		for _, id := range spec.Dictionaries {
			if !dictionary.KnownSource(id) {
				t.Errorf("%s declares unknown dictionary %q", spec.Type, id)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	spec, ok := lang.Lookup(lang.Go)
	if !ok {
		t.Fatal("Lookup(Go) not found")
	}
	if spec.Name != "Go" {
		t.Errorf("Name = %q, want %q", spec.Name, "Go")
	}
	if !spec.HasGrammar() {
		t.Error("Go should have a grammar")
	}

	if _, ok := lang.Lookup(lang.Type("cobol")); ok {
		t.Error("Lookup of unregistered type should fail")
	}
}

func TestTextHasNoGrammar(t *testing.T) {
	t.Parallel()

	spec, ok := lang.Lookup(lang.Text)
	if !ok {
		t.Fatal("Lookup(Text) not found")
	}
	if spec.HasGrammar() {
		t.Error("Text must not have a grammar")
	}
	if _, err := spec.Query(); err == nil {
		t.Error("Query() on Text should error")
	}
}

// Every grammar language must carry a loadable query that compiles against
// its own grammar. A typo in a query file would otherwise only surface as a
// runtime fallback.
func TestAllQueriesCompile(t *testing.T) {
	t.Parallel()

	for _, spec := range lang.All() {
		if !spec.HasGrammar() {
			continue
		}

		t.Run(string(spec.Type), func(t *testing.T) {
			t.Parallel()

			source, err := spec.Query()
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if len(source) == 0 {
				t.Fatal("Query() returned empty source")
			}

			query, err := sitter.NewQuery(source, spec.Grammar())
			if err != nil {
				t.Fatalf("query does not compile: %v", err)
			}
			query.Close()
		})
	}
}

func TestFromHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hint    string
		want    lang.Type
		matched bool
	}{
		{"go", lang.Go, true},
		{"golang", lang.Go, true},
		{"Go", lang.Go, true},
		{"  typescript  ", lang.TypeScript, true},
		{"ts", lang.TypeScript, true},
		{"shellscript", lang.Bash, true},
		{"plaintext", lang.Text, true},
		{"c++", lang.Cpp, true},
		{"", lang.Text, false},
		{"klingon", lang.Text, false},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			t.Parallel()

			got, matched := lang.FromHint(tt.hint)
			if got != tt.want || matched != tt.matched {
				t.Errorf("FromHint(%q) = (%v, %v), want (%v, %v)",
					tt.hint, got, matched, tt.want, tt.matched)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want lang.Type
	}{
		{"main.go", lang.Go},
		{"src/lib.rs", lang.Rust},
		{"component.tsx", lang.Text}, // tsx is not registered
		{"script.PY", lang.Python},
		{"notes.txt", lang.Text},
		{"README", lang.Text},
		{"Rakefile", lang.Ruby},
		{"deploy.yaml", lang.YAML},
		{"no-extension", lang.Text},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := lang.FromPath(tt.path); got != tt.want {
				t.Errorf("FromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestAllIncludesTextFirst(t *testing.T) {
	t.Parallel()

	all := lang.All()
	if len(all) == 0 {
		t.Fatal("All() returned nothing")
	}
	if all[0].Type != lang.Text {
		t.Errorf("All()[0] = %v, want Text", all[0].Type)
	}
}
