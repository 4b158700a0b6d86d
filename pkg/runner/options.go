// Package runner provides multi-file spell-check orchestration.
package runner

// Options controls multi-file checking behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions restricts discovery to files with these extensions
	// (lowercase, with leading dot). Empty means every regular file is a
	// candidate; binary and non-UTF-8 files are skipped during processing.
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --exclude).
	ExcludeGlobs []string

	// IncludeVendored disables the vendored-path heuristic that skips
	// directories like vendor/ and node_modules/.
	IncludeVendored bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Language forces the language for every file instead of detecting it
	// from each file name. Accepts a language name, alias or extension.
	Language string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
