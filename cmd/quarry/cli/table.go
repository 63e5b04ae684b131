// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/quarryhq/quarry/lib/tabular"
)

// TableCommand is a command that renders tabular results. Its binding
// resolves the render target from --output-format before delegating.
type TableCommand interface {
	Help() string
	Init(parser *Parser)
	Execute(ctx context.Context, options *Options, target tabular.RenderTarget) error
}

// StdoutIsTerminal reports whether stdout is a terminal. It decides
// the --output-format default and is a variable so tests can pin it.
var StdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// BindTable adapts a TableCommand to the Command contract, adding the
// --output-format flag: default pretty on terminals and plain
// otherwise, accepting only the closed set of render targets.
func BindTable(command TableCommand) Command {
	return &tableBinding{command: command}
}

type tableBinding struct {
	target  tabular.RenderTarget
	command TableCommand
}

// Unwrap exposes the wrapped command for name derivation.
func (b *tableBinding) Unwrap() any { return b.command }

func (b *tableBinding) Help() string { return b.command.Help() }

func (b *tableBinding) Init(parser *Parser) {
	declareTargetFlag(parser, &b.target)
	b.command.Init(parser)
}

func (b *tableBinding) Execute(ctx context.Context, options *Options) error {
	return b.command.Execute(ctx, options, b.target)
}

func declareTargetFlag(parser *Parser, target *tabular.RenderTarget) {
	*target = tabular.DefaultTarget(StdoutIsTerminal())
	parser.Flags().Var(target, "output-format",
		"how to render the results, one of: "+tabular.TargetNames())
}
