// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
)

// UsageError is an argument error bound to the parser node whose
// arguments failed. The dispatch loop reports it through the error
// path and exits with status 2; it never triggers debug inspection.
type UsageError struct {
	Parser *Parser
	Err    error
}

func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *UsageError) Unwrap() error { return e.Err }

// HelpError reports that the user asked for help. The dispatch loop
// prints the named node's help to stdout and exits 0.
type HelpError struct {
	Parser *Parser
}

func (e *HelpError) Error() string { return "help requested" }

// CommandError is a failure raised by a command during execution,
// phrased for the user. The dispatch loop shows it the same way it
// shows any other execution failure; the distinct type exists so
// callers and tests can tell deliberate failures from accidents.
type CommandError struct {
	Err error
}

func (e *CommandError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *CommandError) Unwrap() error { return e.Err }

// CommandErrorf creates a CommandError from a format string. The %w
// verb wraps an underlying error as usual.
func CommandErrorf(format string, args ...any) *CommandError {
	return &CommandError{Err: fmt.Errorf(format, args...)}
}

// PostMortem inspects a failure before the process exits non-zero.
// It runs when --debug is set and a command fails, and when parsing
// itself fails in an unexpected way. The default implementation
// prints the error chain and a stack dump to stderr; tests and
// embedders may replace it.
var PostMortem = func(err error) {
	fmt.Fprintf(os.Stderr, "post-mortem: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(os.Stderr, "  caused by: %v\n", cause)
	}
	os.Stderr.Write(debug.Stack())
}
