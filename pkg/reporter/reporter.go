// Package reporter provides finding and summary reporting functionality.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/gospell/pkg/runner"
)

// Reporter formats and writes spell-check results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of findings reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath makes path relative to workingDir when possible.
func displayPath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || len(rel) > len(path) {
		return path
	}
	return rel
}

// suggestFunc wraps opts.Suggest with per-word memoization. Safe to call with
// a nil Suggest.
func suggestFunc(opts Options) func(string) []string {
	if opts.Suggest == nil {
		return func(string) []string { return nil }
	}
	cache := make(map[string][]string)
	return func(word string) []string {
		if s, ok := cache[word]; ok {
			return s
		}
		s := opts.Suggest(word)
		cache[word] = s
		return s
	}
}
