package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gospell/internal/logging"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// configTemplate is the starter project configuration.
const configTemplate = `# gospell configuration
# See: https://github.com/yaklabco/gospell

# Dictionaries to check against, in addition to the embedded ones.
dictionaries:
  - en_us

# Words to accept that no dictionary contains.
words: []

# Words to always flag, even when a dictionary contains them.
flag_words: []

# Regular expressions for text spans to skip (applied per line).
ignore_patterns: []

# Glob patterns for paths to skip entirely.
ignore_paths: []

# Words shorter than this many characters are never flagged.
min_word_length: 3
`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gospell configuration file",
		Long: `Create a new .gospell.yaml configuration file in the current directory
with sensible defaults. The file can be customized to add dictionaries,
accept project-specific words, and skip paths or text patterns.

Examples:
  gospell init                     Create .gospell.yaml
  gospell init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gospell.yaml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gospell.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !isInteractive() {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		overwrite, err := promptOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("keeping existing file", logging.FieldPath, outputPath)
			return nil
		}
	}

	if err := os.WriteFile(absPath, []byte(configTemplate), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'gospell add <word>' to grow the project word list")
	logger.Info("run 'gospell dictionaries' to see available dictionaries")

	return nil
}

// promptOverwrite asks the user whether to replace an existing config file.
func promptOverwrite(path string) (bool, error) {
	if _, err := os.Stdout.WriteString("File " + path + " already exists\nOverwrite? [y/N] "); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
