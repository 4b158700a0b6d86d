package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gospell command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var cacheDir string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gospell",
		Short: "A code-aware spell checker for source trees",
		Long: `gospell is a fast, code-aware spell checker written in Go.

It understands source code: identifiers are split into their component
words (camelCase, snake_case, acronyms), and tree-sitter grammars confine
checking to comments, strings and declared names, so keywords and import
paths never produce noise. Plain text and unknown file types fall back to
whole-document checking with URL, hash and path patterns skipped.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "",
		"dictionary cache directory (default: user cache dir)")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newDictionariesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
