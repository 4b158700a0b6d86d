package configloader

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/gospell/pkg/config"
)

func baseOptions(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if got := result.Config.MinWordLength(); got != config.DefaultMinWordLength {
		t.Errorf("MinWordLength() = %d, want %d", got, config.DefaultMinWordLength)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("LoadedFrom = %v, want empty", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configContent := `
dictionaries: [en_us]
words: [gospell, frobnicate]
flag_words: [todo]
min_word_length: 4
`
	configPath := filepath.Join(tmpDir, ".gospell.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if !slices.Contains(cfg.DictionaryIDs(), "en_us") {
		t.Errorf("DictionaryIDs() = %v, want to contain en_us", cfg.DictionaryIDs())
	}
	if !cfg.IsAllowedWord("Frobnicate") {
		t.Error("IsAllowedWord(Frobnicate) = false, want case-insensitive true")
	}
	if !cfg.ShouldFlagWord("TODO") {
		t.Error("ShouldFlagWord(TODO) = false, want true")
	}
	if cfg.MinWordLength() != 4 {
		t.Errorf("MinWordLength() = %d, want 4", cfg.MinWordLength())
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if !slices.Equal(result.LoadedFrom, []string{configPath}) {
		t.Errorf("LoadedFrom = %v, want [%s]", result.LoadedFrom, configPath)
	}
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gospell.yaml")
	if err := os.WriteFile(configPath, []byte("words: [deepword]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	nested := filepath.Join(tmpDir, "src", "internal", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), baseOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !result.Config.IsAllowedWord("deepword") {
		t.Error("upward search did not find the project config")
	}
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".gospell.yaml")
	if err := os.WriteFile(configPath, []byte("words: [outerword]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// A VCS root below the config bounds the upward search.
	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), baseOptions(repo))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.IsAllowedWord("outerword") {
		t.Error("search crossed a VCS root boundary")
	}
}

func TestLoad_ExplicitPathSkipsProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	projectPath := filepath.Join(tmpDir, ".gospell.yaml")
	if err := os.WriteFile(projectPath, []byte("words: [projectword]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	explicitPath := filepath.Join(tmpDir, "other.yaml")
	if err := os.WriteFile(explicitPath, []byte("words: [explicitword]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := baseOptions(tmpDir)
	opts.ExplicitPath = explicitPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.IsAllowedWord("projectword") {
		t.Error("explicit config should skip project discovery")
	}
	if !result.Config.IsAllowedWord("explicitword") {
		t.Error("explicit config was not loaded")
	}
	if result.Config.Path() != explicitPath {
		t.Errorf("Path() = %q, want %q", result.Config.Path(), explicitPath)
	}
}

func TestLoad_CLISettingsHighestPrecedence(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".gospell.yaml")
	if err := os.WriteFile(configPath, []byte("min_word_length: 4\nwords: [fileword]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := baseOptions(tmpDir)
	opts.CLISettings = &config.Settings{
		MinWordLength: 6,
		Words:         []string{"cliword"},
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.MinWordLength() != 6 {
		t.Errorf("MinWordLength() = %d, want CLI override 6", result.Config.MinWordLength())
	}
	// Word lists merge additively across layers.
	if !result.Config.IsAllowedWord("fileword") || !result.Config.IsAllowedWord("cliword") {
		t.Error("file and CLI word lists should both apply")
	}
}

func TestLoad_UseGlobalFalseDropsUserConfig(t *testing.T) {
	tmpDir := t.TempDir()
	xdgDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgDir)

	userDir := filepath.Join(xdgDir, "gospell")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(userDir, "config.yaml")
	if err := os.WriteFile(userPath, []byte("words: [userword]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	projectPath := filepath.Join(tmpDir, ".gospell.yaml")
	if err := os.WriteFile(projectPath, []byte("use_global: false\nwords: [projectword]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := baseOptions(tmpDir)
	opts.IgnoreUserConfig = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.IsAllowedWord("userword") {
		t.Error("user config should be dropped when the project sets use_global: false")
	}
	if !result.Config.IsAllowedWord("projectword") {
		t.Error("project config should still apply")
	}

	// Without the project switch the user layer participates.
	if err := os.WriteFile(projectPath, []byte("words: [projectword]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err = Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !result.Config.IsAllowedWord("userword") {
		t.Error("user config should apply when use_global is unset")
	}
}

func TestLoad_Environment(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("GOSPELL_WORDS", "envword, otherenvword")
	t.Setenv("GOSPELL_MIN_WORD_LENGTH", "5")

	opts := baseOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !result.Config.IsAllowedWord("envword") || !result.Config.IsAllowedWord("otherenvword") {
		t.Error("GOSPELL_WORDS not applied")
	}
	if result.Config.MinWordLength() != 5 {
		t.Errorf("MinWordLength() = %d, want 5", result.Config.MinWordLength())
	}
}

func TestLoad_EnvironmentInvalidInt(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("GOSPELL_MIN_WORD_LENGTH", "not-a-number")

	opts := baseOptions(tmpDir)
	opts.IgnoreEnv = false

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("Load() error = nil, want invalid integer error")
	}
}

func TestLoad_InvalidPattern(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".gospell.yaml")
	if err := os.WriteFile(configPath, []byte("ignore_patterns: ['[invalid']\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(context.Background(), baseOptions(tmpDir))
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "ignore_patterns") {
		t.Errorf("error %q does not name the invalid field", err)
	}
}

func TestMergeAdditiveLists(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		config.Settings{Words: []string{"alpha", "beta"}, MinWordLength: 3},
		config.Settings{Words: []string{"beta", "gamma"}},
		config.Settings{Words: []string{"delta"}, MinWordLength: 5},
	)

	wantWords := []string{"alpha", "beta", "gamma", "delta"}
	if !slices.Equal(merged.Words, wantWords) {
		t.Errorf("merged words = %v, want %v", merged.Words, wantWords)
	}
	if merged.MinWordLength != 5 {
		t.Errorf("merged MinWordLength = %d, want 5", merged.MinWordLength)
	}
}

func TestValidateWarnings(t *testing.T) {
	t.Parallel()

	result := Validate(config.Settings{
		MinWordLength: 20,
		Words:         []string{"two words", ""},
	})

	if !result.Valid() {
		t.Fatalf("Validate() errors = %v, want none", result.Errors)
	}
	if len(result.Warnings) != 3 {
		t.Errorf("Validate() warnings = %v, want 3", result.Warnings)
	}
}
