// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
)

// Version is stamped at link time:
//
//	-ldflags "-X github.com/quarryhq/quarry/cmd/quarry/commands.Version=v1.2.3"
//
// Unstamped builds fall back to the module version recorded by the
// toolchain, if any.
var Version = "devel"

type cmdVersion struct {
	out io.Writer
}

func (c *cmdVersion) Help() string {
	return "Show the version of this client."
}

func (c *cmdVersion) Init(parser *cli.Parser) {}

func (c *cmdVersion) Execute(ctx context.Context, options *cli.Options) error {
	version := Version
	if version == "devel" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
	_, err := fmt.Fprintln(c.writer(), "quarry", version)
	return err
}

func (c *cmdVersion) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
