// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
)

type cmdCompletion struct {
	out io.Writer
}

func (c *cmdCompletion) Help() string {
	return `Print shell configuration that enables tab completion.

The printed stanza registers the quarry binary as its own completer,
using the COMP_LINE protocol understood by bash and zsh (via
bashcompinit). Add it to your shell profile:

  eval "$(quarry completion)"`
}

func (c *cmdCompletion) Init(parser *cli.Parser) {}

func (c *cmdCompletion) Execute(ctx context.Context, options *cli.Options) error {
	executable, err := os.Executable()
	if err != nil {
		return cli.CommandErrorf("locating the quarry binary: %w", err)
	}
	_, err = fmt.Fprintf(c.writer(), "complete -C %q quarry\n", executable)
	return err
}

func (c *cmdCompletion) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
