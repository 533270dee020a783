package cli

import (
	"errors"

	"ctr/internal/domain"
)

// Exit codes returned by the ctr binary.
const (
	// ExitSuccess: the report was written and no test failed.
	ExitSuccess = 0
	// ExitFailure: at least one test failed, or the report could not be produced.
	ExitFailure = 1
)

// ExitCode maps a command error to the process exit code. Failed tests,
// unreadable config and write failures all exit non-zero.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// ShouldPrint reports whether err needs to be printed; a failed test run has
// already been reported by the summary table.
func ShouldPrint(err error) bool {
	return err != nil && !errors.Is(err, domain.ErrTestsFailed)
}
