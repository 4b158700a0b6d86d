// Package cli provides the Cobra command structure for gospell.
package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gospell/internal/ui/pretty"
)

// helpPalette holds the lipgloss styles used when rendering command help.
type helpPalette struct {
	command     lipgloss.Style
	heading     lipgloss.Style
	subcommand  lipgloss.Style
	flag        lipgloss.Style
	description lipgloss.Style
	example     lipgloss.Style
	alias       lipgloss.Style
	dim         lipgloss.Style
}

func newHelpPalette(colorEnabled bool) helpPalette {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpPalette{
			command: plain, heading: plain, subcommand: plain, flag: plain,
			description: plain, example: plain, alias: plain, dim: plain,
		}
	}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return helpPalette{
		command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		description: lipgloss.NewStyle(),
		example:     dim,
		alias:       dim,
		dim:         dim,
	}
}

// HelpFormatter renders styled usage and help text for cobra commands.
type HelpFormatter struct {
	palette helpPalette
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		palette: newHelpPalette(pretty.IsColorEnabled(colorMode, writer)),
	}
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":            h.palette.command.Render,
		"styleHeading":            h.palette.heading.Render,
		"styleSubcommand":         h.palette.subcommand.Render,
		"styleDescription":        h.palette.description.Render,
		"styleExample":            h.palette.example.Render,
		"styleAlias":              h.palette.alias.Render,
		"styleDim":                h.palette.dim.Render,
		"styleFlagsUsage":         h.renderFlagUsages,
		"join":                    strings.Join,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

func (h *HelpFormatter) usageTemplate() string {
	return `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleAlias (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasHelpSubCommands}}

{{ styleHeading "Additional help topics:" }}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{ styleSubcommand (rpad .CommandPath .CommandPathPadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`
}

func (h *HelpFormatter) helpTemplate() string {
	return `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + h.usageTemplate()
}

// flagLineRe splits a pflag usage line into indentation, the flag
// declaration, and its description: "  -f, --format string   Output format".
var flagLineRe = regexp.MustCompile(`^(\s*)(\S.*?)\s{2,}(\S.*)$`)

// renderFlagUsages restyles pflag's FlagUsages output line by line.
func (h *HelpFormatter) renderFlagUsages(flags *pflag.FlagSet) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		m := flagLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lines[i] = m[1] + h.renderFlagDecl(m[2]) + "   " + h.palette.description.Render(m[3])
	}
	return strings.Join(lines, "\n")
}

// renderFlagDecl styles the declaration part: flag names in the flag color,
// type placeholders (string, int) dimmed.
func (h *HelpFormatter) renderFlagDecl(decl string) string {
	tokens := strings.Fields(decl)
	for i, tok := range tokens {
		name, comma := strings.CutSuffix(tok, ",")
		if strings.HasPrefix(name, "-") {
			tokens[i] = h.palette.flag.Render(name)
			if comma {
				tokens[i] += ","
			}
		} else {
			tokens[i] = h.palette.dim.Render(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// ApplyToCommand installs the styled templates on cmd and its subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	cmd.SetUsageTemplate(h.usageTemplate())
	cmd.SetHelpTemplate(h.helpTemplate())

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(h.usageTemplate())
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(h.helpTemplate())
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
