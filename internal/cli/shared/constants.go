// Package shared provides constants and types used across CLI subpackages.
package shared

import (
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
)

// Exit codes for the pkgctl CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime, persistence or execution failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments.
	// Nothing was written when this is returned.
	ExitInvalidArguments = 3
)

// Command group IDs for help output
const (
	GroupGettingStarted = "getting-started"
	GroupConfiguration  = "configuration"
)

// ExitCode maps an error returned by a command to the process exit code.
// Argument errors exit with ExitInvalidArguments; everything else with ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if clierrors.IsCLIError(err) && clierrors.CategoryOf(err) == clierrors.Argument {
		return ExitInvalidArguments
	}
	return ExitFailure
}
