// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/profile"
)

// shellIsInteractive reports whether both ends of the shell are
// terminals. It is a variable so tests can pin it.
var shellIsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type cmdShell struct {
	profiles    cli.Profiles
	profileName *string

	// Test seams; nil means the real thing.
	input    io.Reader
	output   io.Writer
	dispatch func(argv []string) int
}

func (c *cmdShell) Help() string {
	return `Start an interactive shell for running quarry commands.

Each line is a quarry command line without the leading "quarry".
Blank lines and lines starting with "#" are skipped; "exit", "quit",
or end of input leaves the shell. When input is piped in, it runs
line by line and the first failing command stops the script.

A profile selected with --profile-name becomes the default profile
for every command run in the shell.`
}

func (c *cmdShell) Init(parser *cli.Parser) {
	c.profileName = cli.ProfileNameVar(parser, c.profiles)
}

func (c *cmdShell) Execute(ctx context.Context, options *cli.Options) error {
	input := c.input
	if input == nil {
		input = os.Stdin
	}
	output := c.output
	if output == nil {
		output = os.Stdout
	}
	dispatch := c.dispatch
	if dispatch == nil {
		dispatch = c.dispatchLine
	}

	interactive := shellIsInteractive()
	out := termenv.NewOutput(output)
	if interactive {
		c.printBanner(out)
	}

	scanner := bufio.NewScanner(input)
	for lineNumber := 1; ; lineNumber++ {
		if interactive {
			fmt.Fprint(output, "quarry> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		fields := strings.Fields(line)
		if fields[0] == "shell" {
			if !interactive {
				return cli.CommandErrorf("line %d: the shell cannot be nested", lineNumber)
			}
			cli.PrintError(out, "the shell cannot be nested")
			continue
		}

		status := dispatch(append([]string{"quarry"}, fields...))
		if status != 0 && !interactive {
			return cli.CommandErrorf("line %d: command exited with status %d", lineNumber, status)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading shell input: %w", err)
	}
	if interactive {
		// Terminate the prompt line left behind by Ctrl-D.
		fmt.Fprintln(output)
	}
	return nil
}

func (c *cmdShell) selectedProfile() string {
	if c.profileName == nil {
		return ""
	}
	return *c.profileName
}

func (c *cmdShell) printBanner(out *termenv.Output) {
	fmt.Fprintln(out, out.String("Welcome to the Quarry shell.").Bold().Foreground(out.Color("5")))
	if name := c.selectedProfile(); name != "" {
		fmt.Fprintf(out, "Commands run against profile %q. Type \"exit\" to leave.\n", name)
	} else {
		fmt.Fprintln(out, "No profile selected; run \"login\" to store one. Type \"exit\" to leave.")
	}
	fmt.Fprintln(out)
}

// dispatchLine runs one shell line as a full quarry invocation. The
// tree is rebuilt every time: command instances are single-parse
// objects, and a login or logout on a previous line changes the
// profile choices for the next one.
func (c *cmdShell) dispatchLine(argv []string) int {
	resolved, err := c.sessionProfiles()
	if err != nil {
		cli.PrintError(cli.Stderr, err.Error())
		return 2
	}
	return cli.Run(BuildParser(resolved), argv)
}

// sessionProfiles re-resolves the stored profiles, then overrides the
// default with the shell's selected profile so every dispatched line
// inherits the selection.
func (c *cmdShell) sessionProfiles() (cli.Profiles, error) {
	resolved, err := resolveProfiles()
	if err != nil {
		return cli.Profiles{}, err
	}
	name := c.selectedProfile()
	if name == "" || !slices.Contains(resolved.Names, name) {
		return resolved, nil
	}
	store, err := profile.OpenDefault()
	if err != nil {
		return cli.Profiles{}, err
	}
	selected, err := store.Load(name)
	if err != nil {
		return cli.Profiles{}, err
	}
	resolved.Default = selected
	return resolved, nil
}
