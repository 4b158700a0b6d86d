package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/ui/pretty"
	"github.com/yaklabco/gospell/pkg/lang"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long: `List every language the checker understands, with the file extensions
that resolve to it and whether a syntax grammar is available. Languages
without a grammar are checked in plain-text mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanguages(cmd)
		},
	}
}

func runLanguages(cmd *cobra.Command) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	const nameWidth, extWidth = 14, 28

	header := fmt.Sprintf("%-*s %-*s %s", nameWidth, "LANGUAGE", extWidth, "EXTENSIONS", "MODE")
	fmt.Fprintln(out, styles.TableHeader.Render(header))
	fmt.Fprintln(out, styles.TableSeparator.Render(strings.Repeat("-", len(header))))

	for _, spec := range lang.All() {
		mode := "text"
		if spec.HasGrammar() {
			mode = "grammar"
		}
		fmt.Fprintf(out, "%-*s %-*s %s\n",
			nameWidth, spec.Name,
			extWidth, strings.Join(spec.Extensions, ", "),
			mode)
	}

	return nil
}
