package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gospell/pkg/runner"
)

// FormatFinding formats a single flagged word for terminal output.
func (s *Styles) FormatFinding(path string, f runner.Finding, suggestions []string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		f.Line,
		f.Column,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("unknown word"),
		s.Word.Render(f.Word),
	))

	if len(suggestions) > 0 {
		builder.WriteString("    " + s.Dim.Render("Did you mean:") + " " +
			s.Suggestion.Render(strings.Join(suggestions, ", ")) + "\n")
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under the
// flagged column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		word := "words"
		if findingCount == 1 {
			word = "word"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d unknown %s)", findingCount, word))
	}
	return header
}
