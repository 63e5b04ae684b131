// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package files implements the stored-file commands.
package files

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/tabular"
)

// Register mounts the file commands under the verb groups.
func Register(root *cli.Parser, resolved cli.Profiles) {
	cli.RegisterAs(root.Child("list"), "files", cli.BindOriginTable(resolved, &cmdListFiles{}))
}

type cmdListFiles struct {
	out io.Writer
}

func (c *cmdListFiles) Help() string {
	return "List the files stored for your account."
}

func (c *cmdListFiles) Init(parser *cli.Parser) {}

func (c *cmdListFiles) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options, target tabular.RenderTarget) error {
	stored, err := graph.Files().List(ctx)
	if err != nil {
		return err
	}

	table := tabular.New(
		tabular.Column{Key: "filename", Title: "FILENAME"},
		tabular.Column{Key: "size", Title: "SIZE"},
		tabular.Column{Key: "uploaded_at", Title: "UPLOADED", Render: renderUploaded},
	)
	for _, file := range stored {
		table.Append(file.Filename, file.Size, file.UploadedAt)
	}
	return table.Render(c.writer(), target)
}

func (c *cmdListFiles) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// renderUploaded flattens the timestamp to RFC 3339 for the flat
// targets; json and yaml keep the time value.
func renderUploaded(target tabular.RenderTarget, value any) any {
	uploaded := value.(time.Time)
	switch target {
	case tabular.TargetJSON, tabular.TargetYAML:
		return uploaded
	default:
		return uploaded.UTC().Format(time.RFC3339)
	}
}
