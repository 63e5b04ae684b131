// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Parser is one node of the command tree: a named flag set, help
// text, an optional subcommand registry, and (on leaf nodes) an
// execute binding. The commands package builds the full tree once per
// invocation and hands the root to Run.
type Parser struct {
	name    string
	summary string
	epilog  string
	parent  *Parser

	flags    *pflag.FlagSet
	required []string

	subparsers *Subparsers

	execute ExecuteFunc
}

// ExecuteFunc runs a resolved command with the parsed options.
type ExecuteFunc func(ctx context.Context, options *Options) error

// NewParser creates a root parser. Summary is the one-line
// description shown at the top of help output; epilog is extra prose
// shown after the flag listing.
func NewParser(name, summary, epilog string) *Parser {
	return newParser(name, summary, epilog)
}

func newParser(name, summary, epilog string) *Parser {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	// Errors and usage are formatted by the error path, not by pflag.
	flags.SetOutput(io.Discard)
	// Flags appear in help in declaration order.
	flags.SortFlags = false
	return &Parser{
		name:    name,
		summary: summary,
		epilog:  epilog,
		flags:   flags,
	}
}

// Name returns the token that selects this node.
func (p *Parser) Name() string { return p.name }

// Summary returns the one-line description used in parent listings.
func (p *Parser) Summary() string { return p.summary }

// Path returns the full command path from the root
// (e.g., "quarry list nodes").
func (p *Parser) Path() string {
	if p.parent == nil {
		return p.name
	}
	return p.parent.Path() + " " + p.name
}

// Flags returns the node's flag set, for declaring command flags.
func (p *Parser) Flags() *pflag.FlagSet { return p.flags }

// RequireFlag marks an already-declared flag as mandatory. A missing
// required flag is an argument error, reported through the error path
// before any command code runs. Requiring an undeclared flag is a
// programming error and panics.
func (p *Parser) RequireFlag(name string) {
	if p.flags.Lookup(name) == nil {
		panic(fmt.Sprintf("cli: cannot require undeclared flag --%s on %q", name, p.Path()))
	}
	p.required = append(p.required, name)
}

// Subparsers is a parser's subcommand registry. Its title and metavar
// are fixed when the registry is created and shape the help output.
type Subparsers struct {
	parser  *Parser
	title   string
	metavar string
	order   []*Parser
	index   map[string]*Parser
}

// Subparsers returns the node's subcommand registry, creating and
// configuring it on first use. Every call returns the same registry,
// so independent modules can attach subcommands without coordinating
// who asks first.
func (p *Parser) Subparsers() *Subparsers {
	if p.subparsers == nil {
		p.subparsers = &Subparsers{
			parser:  p,
			title:   "sub-commands",
			metavar: "COMMAND",
			index:   make(map[string]*Parser),
		}
	}
	return p.subparsers
}

// Title returns the heading of the registry's help listing.
func (s *Subparsers) Title() string { return s.title }

// Metavar returns the placeholder shown in usage lines.
func (s *Subparsers) Metavar() string { return s.metavar }

// Add registers a child parser. Children appear in help output in
// registration order. Registering a name twice is a tree-construction
// bug and panics.
func (s *Subparsers) Add(name, summary, epilog string) *Parser {
	if _, exists := s.index[name]; exists {
		panic(fmt.Sprintf("cli: subcommand %q registered twice under %q", name, s.parser.Path()))
	}
	child := newParser(name, summary, epilog)
	child.parent = s.parser
	s.order = append(s.order, child)
	s.index[name] = child
	return child
}

// Names returns the registered subcommand names in registration
// order.
func (s *Subparsers) Names() []string {
	names := make([]string, 0, len(s.order))
	for _, child := range s.order {
		names = append(names, child.name)
	}
	return names
}

// Child returns the already-registered subcommand with the given
// name. A missing name is a tree-construction bug, so Child panics
// rather than returning an error.
func (p *Parser) Child(name string) *Parser {
	if p.subparsers != nil {
		if child, ok := p.subparsers.index[name]; ok {
			return child
		}
	}
	panic(fmt.Sprintf("cli: no subcommand %q under %q", name, p.Path()))
}

// bindExecute attaches the command's entry point to the node. Each
// node carries at most one.
func (p *Parser) bindExecute(execute ExecuteFunc) {
	if p.execute != nil {
		panic(fmt.Sprintf("cli: command %q bound twice", p.Path()))
	}
	p.execute = execute
}

// Parse resolves args against the tree rooted at p and returns the
// options of the deepest matched node. Argument errors come back as
// *UsageError naming the node whose arguments failed; explicit help
// requests come back as *HelpError naming the node to describe.
func (p *Parser) Parse(args []string) (*Options, error) {
	options := &Options{root: p}
	node := p
	for {
		if node.subparsers != nil {
			// Stop at the first positional so it selects the
			// subcommand instead of being consumed as a flag value.
			node.flags.SetInterspersed(false)
		}
		if err := node.flags.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				return nil, &HelpError{Parser: node}
			}
			return nil, &UsageError{Parser: node, Err: enrichFlagError(node, args, err)}
		}
		if err := node.checkRequired(); err != nil {
			return nil, &UsageError{Parser: node, Err: err}
		}

		rest := node.flags.Args()
		if node.subparsers != nil && len(rest) > 0 {
			name := rest[0]
			if name == "help" {
				return nil, &HelpError{Parser: node}
			}
			child, ok := node.subparsers.index[name]
			if !ok {
				return nil, &UsageError{Parser: node, Err: unknownCommandError(node, name)}
			}
			node = child
			args = rest[1:]
			continue
		}

		options.Args = rest
		options.node = node
		options.execute = node.execute
		return options, nil
	}
}

func (p *Parser) checkRequired() error {
	var missing []string
	for _, name := range p.required {
		if !p.flags.Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", "))
}

func unknownCommandError(p *Parser, name string) error {
	if suggestion := suggestCommand(name, p.subparsers.order); suggestion != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)", name, suggestion)
	}
	return fmt.Errorf("unknown command %q", name)
}

func enrichFlagError(p *Parser, args []string, err error) error {
	if strings.Contains(err.Error(), "unknown flag") || strings.Contains(err.Error(), "unknown shorthand flag") {
		if suggestion := suggestFlag(args, p.flags); suggestion != "" {
			return fmt.Errorf("%s (did you mean %s?)", err.Error(), suggestion)
		}
	}
	return err
}

// PrintHelp writes the node's full help text to w.
func (p *Parser) PrintHelp(w io.Writer) {
	if p.summary != "" {
		fmt.Fprintf(w, "%s\n\n", p.summary)
	}

	fmt.Fprintf(w, "Usage:\n  %s", p.Path())
	if p.flags.HasAvailableFlags() {
		fmt.Fprint(w, " [flags]")
	}
	if p.subparsers != nil {
		fmt.Fprintf(w, " %s ...", p.subparsers.metavar)
	}
	fmt.Fprintln(w)

	if p.subparsers != nil && len(p.subparsers.order) > 0 {
		fmt.Fprintf(w, "\n%s:\n", p.subparsers.title)
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, child := range p.subparsers.order {
			fmt.Fprintf(tw, "  %s\t%s\n", child.name, child.summary)
		}
		tw.Flush()
	}

	if p.flags.HasAvailableFlags() {
		fmt.Fprintf(w, "\nFlags:\n%s", p.flags.FlagUsages())
	}

	if p.epilog != "" {
		fmt.Fprintf(w, "\n%s\n", p.epilog)
	}

	if p.subparsers != nil && len(p.subparsers.order) > 0 {
		fmt.Fprintf(w, "\nRun '%s %s --help' for more information on a command.\n",
			p.Path(), p.subparsers.metavar)
	}
}
