// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
)

// Run parses argv against the tree rooted at parser, executes the
// resolved command, and returns the process exit status: 0 on
// success, 1 on interrupt or debug-inspected failure, 2 on reported
// argument and command errors.
func Run(parser *Parser, argv []string) int {
	return run(parser, argv, Stderr, os.Stdout)
}

func run(parser *Parser, argv []string, errOut *termenv.Output, stdout io.Writer) int {
	// When the shell asks for completions, the binary is re-invoked
	// with COMP_LINE set. Answer and get out before anything else.
	if line, ok := os.LookupEnv("COMP_LINE"); ok {
		ServeCompletion(stdout, parser, line, os.Getenv("COMP_POINT"))
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options, err := parser.Parse(argv[1:])
	if err != nil {
		var help *HelpError
		if errors.As(err, &help) {
			help.Parser.PrintHelp(stdout)
			return 0
		}
		var usage *UsageError
		if errors.As(err, &usage) {
			return usage.Parser.Fail(errOut, usage.Error())
		}
		// Parsing failed in a way that is not an argument error.
		// There are no options to consult, so inspect unconditionally.
		PostMortem(err)
		return 1
	}

	if options.execute == nil {
		return parser.Fail(errOut, "No arguments given.")
	}

	options.Debug = debugRequested(options)
	options.Logger = NewCommandLogger(options.Debug)

	if err := options.execute(ctx, options); err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			// Interrupted. Exit quietly; the user knows what they did.
			return 1
		}
		if options.Debug {
			PostMortem(err)
			return 1
		}
		return parser.Fail(errOut, err.Error())
	}
	return 0
}

// debugRequested reads the hidden --debug flag off the root node. Not
// every tree declares it, so a missing flag simply reads false.
func debugRequested(options *Options) bool {
	debug, err := options.root.flags.GetBool("debug")
	return err == nil && debug
}
