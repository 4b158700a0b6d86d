// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Spell-check fields.
	FieldWord      = "word"
	FieldLanguage  = "language"
	FieldStartByte = "start_byte"
	FieldEndByte   = "end_byte"
	FieldPattern   = "pattern"

	// Dictionary fields.
	FieldDictionary   = "dictionary"
	FieldDictionaries = "dictionaries"
	FieldURL          = "url"
	FieldCacheDir     = "cache_dir"

	// Configuration fields.
	FieldConfig = "config"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldWordsFlagged    = "words_flagged"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
