package cli_test

import (
	"testing"

	"github.com/yaklabco/gospell/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gospell" {
		t.Errorf("expected Use to be 'gospell', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{
		"check", "suggest", "add", "languages", "dictionaries", "init", "version",
	}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCheckCommandFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	checkCmd, _, err := cmd.Find([]string{"check"})
	if err != nil {
		t.Fatalf("check command not found: %v", err)
	}

	expectedFlags := []string{
		"format",
		"language",
		"exclude",
		"ext",
		"include-vendored",
		"follow-symlinks",
		"no-summary",
		"no-suggest",
		"jobs",
		"dictionaries",
		"words",
		"flag-words",
		"min-word-length",
	}

	for _, flagName := range expectedFlags {
		flag := checkCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on check command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"debug", "config", "cache-dir", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	if got := cli.ExitCodeFromResult(nil); got != cli.ExitSuccess {
		t.Errorf("ExitCodeFromResult(nil) = %d, want %d", got, cli.ExitSuccess)
	}
}
