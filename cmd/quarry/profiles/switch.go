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

type cmdSwitchProfile struct {
	out io.Writer
}

func (c *cmdSwitchProfile) Help() string {
	return `Make a stored profile the default.

Commands that take --profile-name fall back to the default profile
when the flag is omitted.`
}

func (c *cmdSwitchProfile) Init(parser *cli.Parser) {}

func (c *cmdSwitchProfile) Execute(ctx context.Context, options *cli.Options) error {
	if len(options.Args) != 1 {
		return cli.CommandErrorf("switch-profile needs exactly one profile name")
	}
	name := options.Args[0]

	store, err := profile.OpenDefault()
	if err != nil {
		return err
	}
	if err := store.SetDefault(name); err != nil {
		return err
	}
	fmt.Fprintf(c.writer(), "%q is now the default profile.\n", name)
	return nil
}

func (c *cmdSwitchProfile) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
