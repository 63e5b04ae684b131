// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Quarry is the command-line client for a Quarry region. It provides
// subcommands for profile management (login, logout, switch-profile),
// node lifecycle (acquire, launch, release), resource listings (list
// nodes, files, tags, users), and an interactive shell for running
// commands against a selected profile.
package main
