// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package nodes

import (
	"context"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/tabular"
)

type cmdAcquireNode struct {
	hostname string
	cpus     int
	memory   int
	tags     []string

	out io.Writer
}

func (c *cmdAcquireNode) Help() string {
	return `Acquire a ready node, reserving it for your account.

Constraints narrow the pool; with no constraints the region picks any
ready node. The acquired node is printed.`
}

func (c *cmdAcquireNode) Init(parser *cli.Parser) {
	flags := parser.Flags()
	flags.StringVar(&c.hostname, "hostname", "", "acquire the node with this hostname")
	flags.IntVar(&c.cpus, "cpus", 0, "minimum number of CPUs")
	flags.IntVar(&c.memory, "memory", 0, "minimum memory in megabytes")
	flags.StringSliceVar(&c.tags, "tags", nil, "tags the node must carry")
}

func (c *cmdAcquireNode) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options, target tabular.RenderTarget) error {
	node, err := graph.Nodes().Acquire(ctx, origin.AcquireConstraints{
		Hostname: c.hostname,
		CPUCount: c.cpus,
		MemoryMB: c.memory,
		Tags:     c.tags,
	})
	if err != nil {
		return err
	}
	table := nodeTable()
	appendNode(table, *node)
	return table.Render(c.writer(), target)
}

func (c *cmdAcquireNode) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
