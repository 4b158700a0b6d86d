package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/checker"
	"github.com/yaklabco/gospell/pkg/fsutil"
	"github.com/yaklabco/gospell/pkg/token"
)

// Runner orchestrates multi-file spell checking with a worker pool.
type Runner struct {
	checker *checker.Checker
}

// New creates a Runner backed by c.
func New(c *checker.Checker) *Runner {
	return &Runner{checker: c}
}

// Run discovers files under opts.Paths and checks them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats. Workers complete out of order; outcomes are reassembled into
// discovery order before returning. Respects context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	logging.FromContext(ctx).Debug("discovery complete", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Language)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	distinct := make(map[string]struct{})
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome, distinct)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker checks files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, language string) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.checkFile(ctx, path, language)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// checkFile runs the checker over one file and resolves finding positions.
func (r *Runner) checkFile(ctx context.Context, path, language string) FileOutcome {
	outcome := FileOutcome{Path: path}

	text, err := fsutil.ReadTextFile(ctx, path)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotUTF8) {
			logging.FromContext(ctx).Debug("skipping non-text file", logging.FieldPath, path)
			outcome.Skipped = true
			return outcome
		}
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	// NUL bytes are valid UTF-8, so the read alone does not catch every
	// binary file.
	if enry.IsBinary([]byte(head(text, 8000))) {
		logging.FromContext(ctx).Debug("skipping binary file", logging.FieldPath, path)
		outcome.Skipped = true
		return outcome
	}

	locations := r.checker.Check(ctx, text, language, path)
	if len(locations) == 0 {
		return outcome
	}

	index := token.NewLineIndex(text)
	for _, wl := range locations {
		for _, rng := range wl.Locations {
			line, column := index.Position(rng.StartByte)
			outcome.Findings = append(outcome.Findings, Finding{
				Word:   wl.Word,
				Range:  rng,
				Line:   line,
				Column: column,
			})
		}
	}

	// Findings arrive grouped by word; order them by position for output.
	sortFindings(outcome.Findings)

	return outcome
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func sortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		return findings[i].Range.StartByte < findings[j].Range.StartByte
	})
}
