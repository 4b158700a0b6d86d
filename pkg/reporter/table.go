package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gospell/internal/ui/pretty"
	"github.com/yaklabco/gospell/pkg/runner"
)

// TableReporter formats the distinct flagged words as a table.
type TableReporter struct {
	opts    Options
	styles  *pretty.Styles
	suggest func(string) []string
	bw      *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TableReporter{
		opts:    opts,
		styles:  pretty.NewStyles(colorEnabled),
		suggest: suggestFunc(opts),
		bw:      bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	rows := pretty.BuildWordRows(result, r.suggest)
	if len(rows) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		}
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatWordTable(rows))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.WordsFlagged, nil
}
