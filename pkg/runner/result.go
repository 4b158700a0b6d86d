package runner

import "github.com/yaklabco/gospell/pkg/token"

// Finding is one flagged occurrence of an unknown word in a file.
type Finding struct {
	// Word is the flagged word as it appears in the file.
	Word string

	// Range is the word's absolute byte range within the file.
	Range token.TextRange

	// Line and Column are the 1-based position of the range start.
	Line   int
	Column int
}

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Findings are the flagged words, ordered by position.
	Findings []Finding

	// Skipped is true when the file was not checkable (binary or not UTF-8).
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully checked.
	FilesProcessed int

	// FilesSkipped is the number of non-checkable files (binary, not UTF-8).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one finding.
	FilesWithIssues int

	// WordsFlagged is the total number of flagged occurrences.
	WordsFlagged int

	// DistinctWords is the number of distinct flagged words across the run.
	DistinctWords int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFindings reports whether any word was flagged.
func (r *Result) HasFindings() bool {
	return r != nil && r.Stats.WordsFlagged > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome. distinct tracks flagged
// words across files.
func (r *Result) accumulate(outcome FileOutcome, distinct map[string]struct{}) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++

	if len(outcome.Findings) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.WordsFlagged += len(outcome.Findings)
	for _, f := range outcome.Findings {
		distinct[f.Word] = struct{}{}
	}
	r.Stats.DistinctWords = len(distinct)
}
