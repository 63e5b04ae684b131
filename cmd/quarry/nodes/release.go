// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package nodes

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
)

type cmdReleaseNode struct {
	out io.Writer
}

func (c *cmdReleaseNode) Help() string {
	return `Release one or more nodes back to the ready pool.

Takes system IDs. Releasing stops anything running on the node and
frees it for other accounts.`
}

func (c *cmdReleaseNode) Init(parser *cli.Parser) {}

func (c *cmdReleaseNode) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options) error {
	if len(options.Args) == 0 {
		return cli.CommandErrorf("release node needs at least one system ID")
	}
	for _, systemID := range options.Args {
		node, err := graph.Nodes().Release(ctx, systemID)
		if err != nil {
			return err
		}
		options.Logger.Debug("released node", "system_id", node.SystemID, "hostname", node.Hostname)
		fmt.Fprintf(c.writer(), "Released %s (%s).\n", node.SystemID, node.Hostname)
	}
	return nil
}

func (c *cmdReleaseNode) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
