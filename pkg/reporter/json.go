package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gospell/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Findings []JSONFinding `json:"findings"`
	Skipped  bool          `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single flagged word.
type JSONFinding struct {
	Word        string   `json:"word"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	StartByte   int      `json:"startByte"`
	EndByte     int      `json:"endByte"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	FilesWithIssues int `json:"filesWithIssues"`
	WordsFlagged    int `json:"wordsFlagged"`
	DistinctWords   int `json:"distinctWords"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts    Options
	suggest func(string) []string
	bw      *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts:    opts,
		suggest: suggestFunc(opts),
		bw:      bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.WordsFlagged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Findings: make([]JSONFinding, 0, len(file.Findings)),
			Skipped:  file.Skipped,
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		for _, finding := range file.Findings {
			fileResult.Findings = append(fileResult.Findings, JSONFinding{
				Word:        finding.Word,
				Line:        finding.Line,
				Column:      finding.Column,
				StartByte:   finding.Range.StartByte,
				EndByte:     finding.Range.EndByte,
				Suggestions: r.suggest(finding.Word),
			})
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesChecked:    result.Stats.FilesProcessed,
		FilesSkipped:    result.Stats.FilesSkipped,
		FilesErrored:    result.Stats.FilesErrored,
		FilesWithIssues: result.Stats.FilesWithIssues,
		WordsFlagged:    result.Stats.WordsFlagged,
		DistinctWords:   result.Stats.DistinctWords,
	}

	return output
}
