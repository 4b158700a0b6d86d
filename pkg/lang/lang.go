// Package lang defines the closed set of languages the spell checker
// understands and maps each one to its tree-sitter grammar and capture query.
// Languages without a grammar entry are tokenized in plain-text mode.
package lang

import (
	"embed"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/elixir"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
)

// Type identifies a supported language. The zero value is not valid; use
// Text for content with no grammar.
type Type string

// Supported language types. The set is closed: resolution never produces a
// value outside this list.
const (
	Text       Type = "text"
	Bash       Type = "bash"
	C          Type = "c"
	Cpp        Type = "cpp"
	CSharp     Type = "csharp"
	CSS        Type = "css"
	Elixir     Type = "elixir"
	Go         Type = "go"
	HTML       Type = "html"
	JavaScript Type = "javascript"
	Lua        Type = "lua"
	PHP        Type = "php"
	Python     Type = "python"
	Ruby       Type = "ruby"
	Rust       Type = "rust"
	TOML       Type = "toml"
	TypeScript Type = "typescript"
	YAML       Type = "yaml"
)

//go:embed queries/*.scm
var queryFS embed.FS

// Spec describes one language: its grammar handle, the capture query that
// selects spell-checkable nodes, and resolution metadata.
type Spec struct {
	// Type is the canonical identifier.
	Type Type

	// Name is the human-readable language name.
	Name string

	// Extensions are file extensions (lowercase, leading dot) that resolve
	// to this language.
	Extensions []string

	// IDs are additional identifiers accepted as explicit hints (e.g.
	// editor language IDs).
	IDs []string

	// Dictionaries are extra dictionary IDs activated for this language.
	Dictionaries []string

	grammar   *sitter.Language
	queryFile string
}

// Grammar returns the tree-sitter grammar for this language, or nil for
// text-mode languages.
func (s *Spec) Grammar() *sitter.Language {
	return s.grammar
}

// Query returns the capture query source for this language.
func (s *Spec) Query() ([]byte, error) {
	if s.queryFile == "" {
		return nil, fmt.Errorf("language %s has no capture query", s.Type)
	}
	data, err := queryFS.ReadFile("queries/" + s.queryFile)
	if err != nil {
		return nil, fmt.Errorf("read capture query for %s: %w", s.Type, err)
	}
	return data, nil
}

// HasGrammar reports whether this language can be tokenized in grammar mode.
func (s *Spec) HasGrammar() bool {
	return s.grammar != nil && s.queryFile != ""
}

//nolint:gochecknoglobals // Read-only language table, built once.
var registry = []*Spec{
	{Type: Text, Name: "Plain Text", Extensions: []string{".txt", ".text"}, IDs: []string{"plaintext", "markdown"}},
	{Type: Bash, Name: "Bash", Extensions: []string{".sh", ".bash", ".zsh"}, IDs: []string{"shellscript", "sh", "shell"},
		grammar: bash.GetLanguage(), queryFile: "bash.scm",
		Dictionaries: []string{"bash"}},
	{Type: C, Name: "C", Extensions: []string{".c", ".h"},
		grammar: c.GetLanguage(), queryFile: "c.scm",
		Dictionaries: []string{"c"}},
	{Type: Cpp, Name: "C++", Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}, IDs: []string{"c++"},
		grammar: cpp.GetLanguage(), queryFile: "cpp.scm",
		Dictionaries: []string{"cpp"}},
	{Type: CSharp, Name: "C#", Extensions: []string{".cs"}, IDs: []string{"c#", "cs"},
		grammar: csharp.GetLanguage(), queryFile: "csharp.scm",
		Dictionaries: []string{"csharp"}},
	{Type: CSS, Name: "CSS", Extensions: []string{".css"},
		grammar: css.GetLanguage(), queryFile: "css.scm"},
	{Type: Elixir, Name: "Elixir", Extensions: []string{".ex", ".exs"},
		grammar: elixir.GetLanguage(), queryFile: "elixir.scm",
		Dictionaries: []string{"elixir"}},
	{Type: Go, Name: "Go", Extensions: []string{".go"}, IDs: []string{"golang"},
		grammar: golang.GetLanguage(), queryFile: "go.scm",
		Dictionaries: []string{"go"}},
	{Type: HTML, Name: "HTML", Extensions: []string{".html", ".htm"},
		grammar: html.GetLanguage(), queryFile: "html.scm"},
	{Type: JavaScript, Name: "JavaScript", Extensions: []string{".js", ".mjs", ".cjs", ".jsx"}, IDs: []string{"js", "javascriptreact"},
		grammar: javascript.GetLanguage(), queryFile: "javascript.scm",
		Dictionaries: []string{"javascript"}},
	{Type: Lua, Name: "Lua", Extensions: []string{".lua"},
		grammar: lua.GetLanguage(), queryFile: "lua.scm",
		Dictionaries: []string{"lua"}},
	{Type: PHP, Name: "PHP", Extensions: []string{".php"},
		grammar: php.GetLanguage(), queryFile: "php.scm",
		Dictionaries: []string{"php"}},
	{Type: Python, Name: "Python", Extensions: []string{".py", ".pyw"}, IDs: []string{"python3"},
		grammar: python.GetLanguage(), queryFile: "python.scm",
		Dictionaries: []string{"python"}},
	{Type: Ruby, Name: "Ruby", Extensions: []string{".rb", ".rake"},
		grammar: ruby.GetLanguage(), queryFile: "ruby.scm",
		Dictionaries: []string{"ruby"}},
	{Type: Rust, Name: "Rust", Extensions: []string{".rs"},
		grammar: rust.GetLanguage(), queryFile: "rust.scm",
		Dictionaries: []string{"rust"}},
	{Type: TOML, Name: "TOML", Extensions: []string{".toml"},
		grammar: toml.GetLanguage(), queryFile: "toml.scm"},
	{Type: TypeScript, Name: "TypeScript", Extensions: []string{".ts", ".mts", ".cts"}, IDs: []string{"ts", "typescriptreact"},
		grammar: typescript.GetLanguage(), queryFile: "typescript.scm",
		Dictionaries: []string{"typescript"}},
	{Type: YAML, Name: "YAML", Extensions: []string{".yaml", ".yml"},
		grammar: yaml.GetLanguage(), queryFile: "yaml.scm"},
}

// Lookup returns the Spec for a language type.
func Lookup(t Type) (*Spec, bool) {
	for _, s := range registry {
		if s.Type == t {
			return s, true
		}
	}
	return nil, false
}

// All returns every registered language spec, Text first.
func All() []*Spec {
	out := make([]*Spec, len(registry))
	copy(out, registry)
	return out
}
