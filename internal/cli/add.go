package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/logging"
)

func newAddCommand() *cobra.Command {
	var flag bool

	cmd := &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to the project configuration",
		Long: `Add words to the project config's allow list so they are no longer
flagged. With --flag, add them to the flag list instead so they are always
flagged even when a dictionary contains them.

Requires a project config file; run 'gospell init' to create one.

Examples:
  gospell add frobnicate gondola
  gospell add --flag recieve`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, flag)
		},
	}

	cmd.Flags().BoolVar(&flag, "flag", false, "add to the flag list instead of the allow list")

	return cmd
}

func runAdd(cmd *cobra.Command, words []string, toFlagList bool) error {
	logger := logging.NewInteractive()

	_, loadResult, err := buildChecker(cmd, nil)
	if err != nil {
		return err
	}

	cfg := loadResult.Config
	if cfg.Path() == "" {
		return fmt.Errorf("no project config file found; run 'gospell init' first")
	}

	for _, word := range words {
		var added bool
		var addErr error
		if toFlagList {
			added, addErr = cfg.AddFlagWord(word)
		} else {
			added, addErr = cfg.AddWord(word)
		}
		if addErr != nil {
			return fmt.Errorf("add %q: %w", word, addErr)
		}
		if added {
			logger.Info("added word", logging.FieldWord, word, logging.FieldConfig, cfg.Path())
		} else {
			logger.Info("word already present", logging.FieldWord, word)
		}
	}

	return nil
}
