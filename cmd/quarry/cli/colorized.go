// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// Stderr is the termenv output used for user-facing error text. Its
// color profile degrades to plain text when stderr is not a terminal,
// so redirected output carries no escape sequences.
var Stderr = termenv.NewOutput(os.Stderr)

// PrintError writes the standard error line: a bold red "Error:"
// prefix followed by the message.
func PrintError(out *termenv.Output, message string) {
	prefix := out.String("Error:").Bold().Foreground(out.Color("1"))
	fmt.Fprintf(out, "%s %s\n", prefix, message)
}

// Fail reports an error the way every argument and command failure is
// reported: the colorized error line, then the node's full help so
// the user sees what was expected. Returns 2, the exit status for
// reported errors.
func (p *Parser) Fail(out *termenv.Output, message string) int {
	PrintError(out, message)
	fmt.Fprintln(out)
	p.PrintHelp(out)
	return 2
}
