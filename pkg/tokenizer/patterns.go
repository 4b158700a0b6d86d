package tokenizer

import (
	"regexp"
	"sync"
)

// Default skip patterns match technical strings that contain letter runs but
// are not words: URLs, hashes, colors, paths. Tokens covered by a match are
// excluded from spell checking.
//
//nolint:gochecknoglobals // Read-only pattern table, built once.
var defaultSkipPatterns = sync.OnceValue(func() []*regexp.Regexp {
	return []*regexp.Regexp{
		// URLs (http/https).
		regexp.MustCompile(`https?://[^\s]+`),
		// Hex colors (#fff, #deadbeef).
		regexp.MustCompile(`#[0-9a-fA-F]{3,8}`),
		// Email addresses.
		regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		// Absolute Unix paths.
		regexp.MustCompile(`/[^\s]*`),
		// Windows paths with a drive letter.
		regexp.MustCompile(`[A-Za-z]:\\[^\s]*`),
		// UUIDs.
		regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`),
		// Base64 blobs. The trailing padding requirement avoids matching
		// ordinary slash-joined words.
		regexp.MustCompile(`[A-Za-z0-9+/]{20,}={1,2}`),
		// Commit-ish hex hashes (7-40 characters).
		regexp.MustCompile(`\b[0-9a-fA-F]{7,40}\b`),
		// Markdown/HTML links; the URL part must not contain spaces.
		regexp.MustCompile(`\[[^\]]+\]\([^\s)]+\)`),
	}
})

// DefaultSkipPatterns returns the process-wide default skip pattern set.
// The returned slice must not be modified.
func DefaultSkipPatterns() []*regexp.Regexp {
	return defaultSkipPatterns()
}
