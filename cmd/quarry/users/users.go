// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package users implements the user-account commands.
package users

import (
	"context"
	"io"
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/tabular"
)

// Register mounts the user commands under the verb groups.
func Register(root *cli.Parser, resolved cli.Profiles) {
	cli.RegisterAs(root.Child("list"), "users", cli.BindOriginTable(resolved, &cmdListUsers{}))
}

type cmdListUsers struct {
	out io.Writer
}

func (c *cmdListUsers) Help() string {
	return `List the user accounts on the region.

Requires an administrator API key.`
}

func (c *cmdListUsers) Init(parser *cli.Parser) {}

func (c *cmdListUsers) Execute(ctx context.Context, graph *origin.Origin, options *cli.Options, target tabular.RenderTarget) error {
	accounts, err := graph.Users().List(ctx)
	if err != nil {
		return err
	}

	table := tabular.New(
		tabular.Column{Key: "username", Title: "USERNAME"},
		tabular.Column{Key: "email", Title: "EMAIL"},
		tabular.Column{Key: "admin", Title: "ADMIN", Render: renderAdmin},
	)
	for _, account := range accounts {
		table.Append(account.Username, account.Email, account.Admin)
	}
	return table.Render(c.writer(), target)
}

func (c *cmdListUsers) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// renderAdmin shows the admin marker as a word in the framed targets
// and as a raw bool in the dump targets.
func renderAdmin(target tabular.RenderTarget, value any) any {
	admin := value.(bool)
	switch target {
	case tabular.TargetPretty, tabular.TargetPlain:
		if admin {
			return "yes"
		}
		return ""
	default:
		return admin
	}
}
