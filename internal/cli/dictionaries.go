package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/ui/pretty"
	"github.com/yaklabco/gospell/pkg/dictionary"
)

func newDictionariesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dictionaries",
		Short: "List available dictionaries",
		Long: `List every dictionary the checker can resolve: embedded dictionaries
that ship with the binary, downloadable language dictionaries, and any
custom sources declared in configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDictionaries(cmd)
		},
	}
}

func runDictionaries(cmd *cobra.Command) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	manager := dictionary.NewManager(resolveCacheDir(cmd))

	const idWidth = 22

	header := fmt.Sprintf("%-*s %s", idWidth, "DICTIONARY", "KIND")
	fmt.Fprintln(out, styles.TableHeader.Render(header))
	fmt.Fprintln(out, styles.TableSeparator.Render(strings.Repeat("-", len(header))))

	for _, id := range manager.Available() {
		kind := "downloadable"
		if dictionary.IsBuiltin(id) {
			kind = "builtin"
		}
		fmt.Fprintf(out, "%-*s %s\n", idWidth, id, kind)
	}

	return nil
}
