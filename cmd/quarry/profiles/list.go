// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package profiles

import (
	"context"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/profile"
	"github.com/quarryhq/quarry/lib/tabular"
)

type cmdListProfiles struct {
	out io.Writer
}

func (c *cmdListProfiles) Help() string {
	return "List stored profiles and the region each one talks to."
}

func (c *cmdListProfiles) Init(parser *cli.Parser) {}

func (c *cmdListProfiles) Execute(ctx context.Context, options *cli.Options, target tabular.RenderTarget) error {
	store, err := profile.OpenDefault()
	if err != nil {
		return err
	}
	names, err := store.Names()
	if err != nil {
		return err
	}
	defaultName, err := store.DefaultName()
	if err != nil {
		return err
	}

	table := tabular.New(
		tabular.Column{Key: "name", Title: "NAME"},
		tabular.Column{Key: "url", Title: "URL"},
		tabular.Column{Key: "default", Title: "DEFAULT", Render: renderDefault},
	)
	for _, name := range names {
		loaded, err := store.Load(name)
		if err != nil {
			return err
		}
		table.Append(loaded.Name, loaded.URL, loaded.Name == defaultName)
	}
	return table.Render(c.writer(), target)
}

func (c *cmdListProfiles) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// renderDefault shows the default marker as a word in the framed
// targets and as a raw bool in the dump targets.
func renderDefault(target tabular.RenderTarget, value any) any {
	isDefault := value.(bool)
	switch target {
	case tabular.TargetPretty, tabular.TargetPlain:
		if isDefault {
			return "yes"
		}
		return ""
	default:
		return isDefault
	}
}
