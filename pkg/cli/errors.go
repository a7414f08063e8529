package cli

import (
	"errors"
	"fmt"

	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

// Exit codes returned by lf2data commands.
const (
	// ExitOK means the command succeeded.
	ExitOK = 0
	// ExitParseFailure means at least one input file failed to parse.
	ExitParseFailure = 1
	// ExitOperational means the command itself failed: unreadable
	// files, bad flags, storage errors.
	ExitOperational = 2
)

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps an error to the process exit code a command should
// return. Parse errors in the input data map to ExitParseFailure;
// anything else is an operational failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var parseErr *oderrors.Error
	if errors.As(err, &parseErr) {
		if parseErr.Type == oderrors.ErrorTypeIO {
			return ExitOperational
		}
		return ExitParseFailure
	}

	var list *oderrors.ErrorList
	if errors.As(err, &list) {
		return ExitParseFailure
	}

	return ExitOperational
}
