package configloader

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gospell/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "ignore_patterns[2]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks the merged settings for problems. Invalid regular
// expressions are errors; empty list entries and unusual word lengths are
// warnings.
func Validate(settings config.Settings) *ValidationResult {
	result := &ValidationResult{}

	if settings.MinWordLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "min_word_length",
			Value:   settings.MinWordLength,
			Message: "must not be negative",
		})
	}
	if settings.MinWordLength > 10 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "min_word_length",
			Value:   settings.MinWordLength,
			Message: "unusually large; most words will never be checked",
		})
	}

	for i, pattern := range settings.IgnorePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore_patterns[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid regular expression: %v", err),
			})
		}
	}

	validateEntries(result, "dictionaries", settings.Dictionaries)
	validateEntries(result, "words", settings.Words)
	validateEntries(result, "flag_words", settings.FlagWords)
	validateEntries(result, "ignore_paths", settings.IgnorePaths)

	for i, word := range settings.Words {
		if strings.ContainsAny(word, " \t") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("words[%d]", i),
				Value:   word,
				Message: "contains whitespace; entries are matched as single words",
			})
		}
	}

	return result
}

// validateEntries warns on blank entries in a string list.
func validateEntries(result *ValidationResult, field string, entries []string) {
	for i, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: "blank entry ignored",
			})
		}
	}
}
