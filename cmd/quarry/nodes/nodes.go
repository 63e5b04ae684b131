// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package nodes implements the node commands: listing, acquiring,
// launching, and releasing machines.
package nodes

import (
	"github.com/quarryhq/quarry/cmd/quarry/cli"
)

// Register mounts the node commands under the verb groups.
func Register(root *cli.Parser, resolved cli.Profiles) {
	cli.RegisterAs(root.Child("list"), "nodes", cli.BindOriginTable(resolved, &cmdListNodes{}))
	cli.RegisterAs(root.Child("acquire"), "node", cli.BindOriginTable(resolved, &cmdAcquireNode{}))
	cli.RegisterAs(root.Child("launch"), "node", cli.BindOriginTable(resolved, &cmdLaunchNode{}))
	cli.RegisterAs(root.Child("release"), "node", cli.BindOrigin(resolved, &cmdReleaseNode{}))
}
