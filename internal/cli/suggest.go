package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/ui/pretty"
)

func newSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <word>",
		Short: "Suggest replacements for a word",
		Long: `Look up a word in the active dictionaries and print close matches.

Examples:
  gospell suggest wrold
  gospell suggest recieve`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args[0])
		},
	}

	return cmd
}

func runSuggest(cmd *cobra.Command, word string) error {
	ctx := commandContext(cmd)

	chk, _, err := buildChecker(cmd, nil)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	out := cmd.OutOrStdout()

	if chk.IsKnown(ctx, word) {
		fmt.Fprintf(out, "%s is spelled correctly\n", styles.Success.Render(word))
		return nil
	}

	suggestions := chk.Suggestions(ctx, word)
	if len(suggestions) == 0 {
		fmt.Fprintf(out, "no suggestions for %s\n", styles.Word.Render(word))
		return nil
	}

	fmt.Fprintf(out, "%s:\n", styles.Word.Render(word))
	for _, s := range suggestions {
		fmt.Fprintf(out, "  %s\n", styles.Suggestion.Render(s))
	}

	return nil
}
