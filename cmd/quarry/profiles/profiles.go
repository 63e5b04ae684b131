// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package profiles implements the commands that manage stored
// profiles: login, logout, switch-profile, and list-profiles.
package profiles

import (
	"github.com/quarryhq/quarry/cmd/quarry/cli"
)

// Register mounts the profile commands at the root, and the profile
// listing a second time under the list group. The two listing mounts
// are distinct instances: a command instance serves a single parse.
func Register(root *cli.Parser, _ cli.Profiles) {
	cli.Register(root, &cmdLogin{})
	cli.Register(root, &cmdLogout{})
	cli.Register(root, &cmdSwitchProfile{})
	cli.Register(root, cli.BindTable(&cmdListProfiles{}))
	cli.RegisterAs(root.Child("list"), "profiles", cli.BindTable(&cmdListProfiles{}))
}
