// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package profiles

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/profile"
)

type cmdLogout struct {
	out io.Writer
}

func (c *cmdLogout) Help() string {
	return `Remove a stored profile and forget its API key.

When the removed profile was the default, no default remains.`
}

func (c *cmdLogout) Init(parser *cli.Parser) {}

func (c *cmdLogout) Execute(ctx context.Context, options *cli.Options) error {
	if len(options.Args) != 1 {
		return cli.CommandErrorf("logout needs exactly one profile name")
	}
	name := options.Args[0]

	store, err := profile.OpenDefault()
	if err != nil {
		return err
	}
	if err := store.Remove(name); err != nil {
		return err
	}
	fmt.Fprintf(c.writer(), "Removed profile %q.\n", name)
	return nil
}

func (c *cmdLogout) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
