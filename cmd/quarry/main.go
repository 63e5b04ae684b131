// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/quarryhq/quarry/cmd/quarry/commands"
)

func main() {
	os.Exit(commands.Main(os.Args))
}
