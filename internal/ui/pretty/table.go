package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/gospell/pkg/runner"
)

// Table formatting constants.
const (
	minWordWidth       = 12
	minCountWidth      = 5
	suggestionCellMax  = 40
	tableColumnSpacing = "  "
)

// WordTableRow aggregates one distinct flagged word across a run.
type WordTableRow struct {
	Word        string
	Count       int
	Suggestions []string
}

// BuildWordRows flattens a runner result into per-word rows, ordered by
// descending count then word. suggest may be nil.
func BuildWordRows(result *runner.Result, suggest func(word string) []string) []WordTableRow {
	counts := make(map[string]int)
	for _, file := range result.Files {
		for _, f := range file.Findings {
			counts[f.Word]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	rows := make([]WordTableRow, 0, len(counts))
	for word, count := range counts {
		row := WordTableRow{Word: word, Count: count}
		if suggest != nil {
			row.Suggestions = suggest(word)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Word < rows[j].Word
	})

	return rows
}

// FormatWordTable renders the distinct flagged words as an aligned table.
func (s *Styles) FormatWordTable(rows []WordTableRow) string {
	if len(rows) == 0 {
		return ""
	}

	wordWidth := minWordWidth
	for _, row := range rows {
		if len(row.Word) > wordWidth {
			wordWidth = len(row.Word)
		}
	}

	var builder strings.Builder

	header := pad("WORD", wordWidth) + tableColumnSpacing +
		pad("COUNT", minCountWidth) + tableColumnSpacing +
		"SUGGESTIONS"
	builder.WriteString(s.TableHeader.Render(header) + "\n")
	builder.WriteString(s.TableSeparator.Render(strings.Repeat("-", len(header))) + "\n")

	for _, row := range rows {
		suggestions := strings.Join(row.Suggestions, ", ")
		if len(suggestions) > suggestionCellMax {
			suggestions = suggestions[:suggestionCellMax-1] + "…"
		}
		builder.WriteString(
			s.Word.Render(pad(row.Word, wordWidth)) + tableColumnSpacing +
				pad(fmt.Sprintf("%d", row.Count), minCountWidth) + tableColumnSpacing +
				s.Suggestion.Render(suggestions) + "\n")
	}

	return builder.String()
}

// pad right-pads s to width with spaces.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
