// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package nodes

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/tabular"
)

// nodeTable returns the standard node table. Every node command that
// prints nodes uses the same columns, so one-row acquire output lines
// up with the full listing.
func nodeTable() *tabular.Table {
	return tabular.New(
		tabular.Column{Key: "system_id", Title: "SYSTEM-ID"},
		tabular.Column{Key: "hostname", Title: "HOSTNAME"},
		tabular.Column{Key: "status", Title: "STATUS", Render: renderStatus},
		tabular.Column{Key: "architecture", Title: "ARCH"},
		tabular.Column{Key: "cpus", Title: "CPUS"},
		tabular.Column{Key: "memory", Title: "MEMORY", Render: renderMemory},
		tabular.Column{Key: "tags", Title: "TAGS", Render: renderTags},
	)
}

func appendNode(table *tabular.Table, node origin.Node) {
	table.Append(node.SystemID, node.Hostname, node.Status, node.Architecture,
		node.CPUCount, node.MemoryMB, node.Tags)
}

// renderStatus colors the status cell in pretty output. The styles
// degrade to plain text automatically when stdout is not a terminal.
func renderStatus(target tabular.RenderTarget, value any) any {
	status := value.(string)
	if target != tabular.TargetPretty {
		return status
	}
	out := termenv.NewOutput(os.Stdout)
	switch status {
	case "ready":
		return out.String(status).Foreground(out.Color("2")).String()
	case "allocated", "deploying":
		return out.String(status).Foreground(out.Color("3")).String()
	case "failed", "broken":
		return out.String(status).Foreground(out.Color("1")).String()
	default:
		return status
	}
}

// renderMemory humanizes megabytes for the framed targets and leaves
// the raw number for the dump targets.
func renderMemory(target tabular.RenderTarget, value any) any {
	megabytes := value.(int)
	switch target {
	case tabular.TargetPretty, tabular.TargetPlain:
		return formatMemory(megabytes)
	default:
		return megabytes
	}
}

func formatMemory(megabytes int) string {
	if megabytes == 0 {
		return "0"
	}
	if megabytes%1024 == 0 {
		return fmt.Sprintf("%d GB", megabytes/1024)
	}
	return fmt.Sprintf("%.1f GB", float64(megabytes)/1024)
}

// renderTags joins tags for the flat targets; json and yaml keep the
// array.
func renderTags(target tabular.RenderTarget, value any) any {
	tags := value.([]string)
	switch target {
	case tabular.TargetJSON, tabular.TargetYAML:
		return tags
	default:
		return strings.Join(tags, ",")
	}
}

type cmdListNodes struct {
	out io.Writer
}

func (c *cmdListNodes) Help() string {
	return "List the nodes in the region."
}

func (c *cmdListNodes) Init(parser *cli.Parser) {}

func (c *cmdListNodes) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options, target tabular.RenderTarget) error {
	nodes, err := graph.Nodes().List(ctx)
	if err != nil {
		return err
	}
	table := nodeTable()
	for _, node := range nodes {
		appendNode(table, node)
	}
	return table.Render(c.writer(), target)
}

func (c *cmdListNodes) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
