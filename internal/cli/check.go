package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/config"
	"github.com/yaklabco/gospell/pkg/reporter"
	"github.com/yaklabco/gospell/pkg/runner"
)

// ErrUnknownWordsFound is returned when the check finds unknown words.
var ErrUnknownWordsFound = errors.New("unknown words found")

type checkFlags struct {
	format          string
	language        string
	exclude         []string
	extensions      []string
	includeVendored bool
	followSymlinks  bool
	noSummary       bool
	noSuggest       bool
	jobs            int

	dictionaries  []string
	words         []string
	flagWords     []string
	minWordLength int
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Spell-check files and directories",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Spell-check source files, documentation and plain text.

By default, checks every text file in the current directory and
subdirectories, skipping hidden and vendored paths. Specify paths to check
specific files or directories. The language of each file is detected from
its name; use --language to force one.

Examples:
  gospell check                      # Check current directory
  gospell check src/ docs/          # Check specific directories
  gospell check main.go             # Check a single file
  gospell check --format json       # Output as JSON for CI
  gospell check --ext .go,.md       # Restrict to extensions
  gospell check --words internal    # Allow extra words for this run`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	cliSettings := &config.Settings{
		Dictionaries:  flags.dictionaries,
		Words:         flags.words,
		FlagWords:     flags.flagWords,
		MinWordLength: flags.minWordLength,
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	chk, loadResult, err := buildChecker(cmd, cliSettings)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:           args,
		WorkingDir:      workDir,
		Extensions:      flags.extensions,
		ExcludeGlobs:    append(loadResult.Config.Settings().IgnorePaths, flags.exclude...),
		Language:        flags.language,
		IncludeVendored: flags.includeVendored,
		FollowSymlinks:  flags.followSymlinks,
		Jobs:            flags.jobs,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(chk).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	repOpts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: !flags.noSummary,
		WorkingDir:  workDir,
	}
	if !flags.noSuggest {
		repOpts.Suggest = func(word string) []string {
			return chk.Suggestions(ctx, word)
		}
	}

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrUnknownWordsFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, table, json, sarif, summary")
	cmd.Flags().StringVar(&flags.language, "language", "",
		"force the language for all files (name or extension)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"restrict to file extensions (with leading dot)")
	cmd.Flags().BoolVar(&flags.includeVendored, "include-vendored", false,
		"check vendored paths such as vendor/ and node_modules/")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false,
		"traverse directory symlinks")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.noSuggest, "no-suggest", false, "skip suggestion lookup")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	cmd.Flags().StringSliceVar(&flags.dictionaries, "dictionaries", nil,
		"additional dictionary IDs to load")
	cmd.Flags().StringSliceVar(&flags.words, "words", nil, "extra allowed words for this run")
	cmd.Flags().StringSliceVar(&flags.flagWords, "flag-words", nil,
		"words to always flag for this run")
	cmd.Flags().IntVar(&flags.minWordLength, "min-word-length", 0,
		"minimum word length to check (0 = configured default)")
}
