// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the quarry command tree and dispatches
// invocations. Command groups live in sibling packages; this package
// fixes their registration order and owns the top-level commands that
// belong to no group (shell, version, completion).
package commands

import (
	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/cmd/quarry/files"
	"github.com/quarryhq/quarry/cmd/quarry/nodes"
	"github.com/quarryhq/quarry/cmd/quarry/profiles"
	"github.com/quarryhq/quarry/cmd/quarry/tags"
	"github.com/quarryhq/quarry/cmd/quarry/users"
	"github.com/quarryhq/quarry/lib/profile"
)

// groups are the command groups mounted on every tree. The slice
// order is the help listing order, so it changes only deliberately.
var groups = []func(*cli.Parser, cli.Profiles){
	profiles.Register,
	files.Register,
	nodes.Register,
	tags.Register,
	users.Register,
}

// BuildParser constructs the full command tree. The resolved profiles
// are passed down to every group so profile-bound commands can
// declare --profile-name with the stored names as choices. The tree
// is built fresh for every dispatch; command instances are not
// reused across parses.
func BuildParser(resolved cli.Profiles) *cli.Parser {
	root := cli.NewParser("quarry",
		"Interact with a remote Quarry region.",
		"https://github.com/quarryhq/quarry")

	cli.Register(root, &cmdShell{profiles: resolved})

	// Verb groups. These carry no execute binding of their own; the
	// command groups below mount resources under them.
	sub := root.Subparsers()
	sub.Add("acquire", "Acquire nodes or other resources.", "")
	sub.Add("launch", "Launch nodes or other resources.", "")
	sub.Add("release", "Release nodes or other resources.", "")
	sub.Add("list", "List nodes, files, tags, and other resources.", "")

	for _, register := range groups {
		register(root, resolved)
	}

	cli.Register(root, &cmdVersion{})
	cli.Register(root, &cmdCompletion{})

	root.Flags().Bool("debug", false, "open a post-mortem on failure")
	root.Flags().MarkHidden("debug")

	return root
}

// resolveProfiles opens the profile store and resolves the stored
// names and the default profile for tree construction.
func resolveProfiles() (cli.Profiles, error) {
	names, def, err := profile.Resolve()
	if err != nil {
		return cli.Profiles{}, err
	}
	return cli.Profiles{Names: names, Default: def}, nil
}

// Main is the process entry point behind main.main. It returns the
// exit status rather than calling os.Exit so tests can drive it.
func Main(argv []string) int {
	resolved, err := resolveProfiles()
	if err != nil {
		// Without the profile store nothing can run, and there is no
		// parser yet to report through.
		panic(err)
	}
	return cli.Run(BuildParser(resolved), argv)
}
