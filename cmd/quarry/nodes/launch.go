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

type cmdLaunchNode struct {
	image string

	out io.Writer
}

func (c *cmdLaunchNode) Help() string {
	return `Launch an acquired node, deploying an operating system onto it.

Takes the node's system ID. Without --image the region's default
image is used.`
}

func (c *cmdLaunchNode) Init(parser *cli.Parser) {
	parser.Flags().StringVar(&c.image, "image", "", "image to deploy (region default when omitted)")
}

func (c *cmdLaunchNode) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options, target tabular.RenderTarget) error {
	if len(options.Args) != 1 {
		return cli.CommandErrorf("launch node needs exactly one system ID")
	}
	node, err := graph.Nodes().Launch(ctx, options.Args[0], c.image)
	if err != nil {
		return err
	}
	table := nodeTable()
	appendNode(table, *node)
	return table.Render(c.writer(), target)
}

func (c *cmdLaunchNode) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
