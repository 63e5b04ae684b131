// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package tags implements the tag commands.
package tags

import (
	"context"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/tabular"
)

// Register mounts the tag commands under the verb groups.
func Register(root *cli.Parser, resolved cli.Profiles) {
	cli.RegisterAs(root.Child("list"), "tags", cli.BindOriginTable(resolved, &cmdListTags{}))
}

type cmdListTags struct {
	out io.Writer
}

func (c *cmdListTags) Help() string {
	return "List the tags defined on the region."
}

func (c *cmdListTags) Init(parser *cli.Parser) {}

func (c *cmdListTags) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options, target tabular.RenderTarget) error {
	defined, err := graph.Tags().List(ctx)
	if err != nil {
		return err
	}

	table := tabular.New(
		tabular.Column{Key: "name", Title: "NAME"},
		tabular.Column{Key: "nodes", Title: "NODES"},
		tabular.Column{Key: "comment", Title: "COMMENT"},
	)
	for _, tag := range defined {
		table.Append(tag.Name, tag.NodeCount, tag.Comment)
	}
	return table.Render(c.writer(), target)
}

func (c *cmdListTags) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
