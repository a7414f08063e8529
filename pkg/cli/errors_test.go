package cli

import (
	"errors"
	"fmt"
	"testing"

	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

func TestCommandError(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := &CommandError{
		Command: "lint",
		Err:     underlyingErr,
	}

	expected := "command lint failed: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := NewCommandError("parse", underlyingErr)

	if err.Unwrap() != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlyingErr)
	}
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with CommandError.Unwrap()")
	}
}

func TestExitCode(t *testing.T) {
	structural := &oderrors.Error{
		Type:    oderrors.ErrorTypeStructural,
		Message: "expected \"<frame_end>\"",
	}
	ioErr := &oderrors.Error{
		Type:    oderrors.ErrorTypeIO,
		Message: "reading file",
	}
	list := oderrors.NewErrorList()
	list.Add(structural)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"structural error", structural, ExitParseFailure},
		{"io error", ioErr, ExitOperational},
		{"error list", list, ExitParseFailure},
		{"wrapped parse error", fmt.Errorf("loading: %w", structural), ExitParseFailure},
		{"plain error", errors.New("boom"), ExitOperational},
		{"command error", NewCommandError("lint", errors.New("boom")), ExitOperational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
