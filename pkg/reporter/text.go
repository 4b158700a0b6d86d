package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gospell/internal/ui/pretty"
	"github.com/yaklabco/gospell/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts    Options
	styles  *pretty.Styles
	suggest func(string) []string
	bw      *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:    opts,
		styles:  pretty.NewStyles(colorEnabled),
		suggest: suggestFunc(opts),
		bw:      bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if len(file.Findings) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Findings)))

		for _, finding := range file.Findings {
			fmt.Fprint(r.bw, r.styles.FormatFinding(path, finding, r.suggest(finding.Word)))
			total++
		}

		// Blank line between files.
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
