package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// usageError marks bad input: unknown unit tokens, unparsable values, wrong
// argument counts, unknown flags. It maps to exit code 2.
type usageError struct {
	cmdPath string
	err     error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(cmd *cobra.Command, err error) error {
	return &usageError{cmdPath: cmd.CommandPath(), err: err}
}

func usageErrorf(cmd *cobra.Command, format string, args ...any) error {
	return newUsageError(cmd, fmt.Errorf(format, args...))
}

// usageArgs wraps a positional-args validator so its errors are usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return newUsageError(cmd, err)
		}
		return nil
	}
}

// isUnknownCommand matches cobra's error for an unrecognized subcommand,
// which is raised before any of our hooks run.
func isUnknownCommand(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "unknown command")
}

// ExitCode maps an Execute error to a process exit code: 0 for nil, 2 for
// usage errors, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) || isUnknownCommand(err) {
		return 2
	}
	return 1
}

// Report prints err to w, with a pointer to --help for usage errors.
func Report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", ue.cmdPath)
	}
}
