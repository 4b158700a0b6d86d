package cli

import "github.com/yaklabco/gospell/pkg/runner"

// Exit codes for gospell.
const (
	// ExitSuccess indicates successful execution with no unknown words.
	ExitSuccess = 0

	// ExitFindings indicates the check completed but found unknown words.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on the run result.
// Unreadable files count as findings so CI never silently passes them.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFindings() || result.HasErrors() {
		return ExitFindings
	}
	return ExitSuccess
}
