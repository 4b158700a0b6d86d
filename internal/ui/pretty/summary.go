package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gospell/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 unknown words (7 distinct) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.WordsFlagged == 0 {
		return s.Success.Render("No unknown words") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	issueWord := "unknown words"
	if stats.WordsFlagged == 1 {
		issueWord = "unknown word"
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}

	parts := []string{
		s.Failure.Render(fmt.Sprintf("%d %s", stats.WordsFlagged, issueWord)),
		fmt.Sprintf("(%d distinct)", stats.DistinctWords),
		fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord),
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d errors", stats.FilesErrored)))
	}

	return strings.Join(parts, " ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Unknown words:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.WordsFlagged)) + "\n")
	builder.WriteString("    Distinct:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.DistinctWords)) + "\n")

	builder.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case stats.WordsFlagged > 0:
		builder.WriteString(s.Failure.Render("Check found unknown words"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
