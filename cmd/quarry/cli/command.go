// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

// Command is the contract every quarry command implements. Help
// supplies the text for the command's parser node, Init declares the
// command's flags on that node, and Execute runs once the dispatch
// loop resolves the command from argv. A command instance serves a
// single parse; the shell rebuilds the tree for every line it
// dispatches.
type Command interface {
	// Help returns the command's help text. The first line is the
	// summary shown in the parent's listing; any remaining lines form
	// the epilog shown in the command's own help.
	Help() string

	// Init declares flags on the command's parser node. No execution
	// work happens here.
	Init(parser *Parser)

	// Execute runs the command.
	Execute(ctx context.Context, options *Options) error
}

// Name derives a command's command-line name from its Go type name:
// camel-case words become hyphen-separated lowercase words,
// underscores become hyphens, and one leading "cmd-" is stripped.
// cmdListNodes and CmdListNodes both become "list-nodes". Archetype
// bindings are unwrapped first, so the name always reflects the
// innermost command type.
func Name(command Command) string {
	var value any = command
	for {
		wrapper, ok := value.(interface{ Unwrap() any })
		if !ok {
			break
		}
		value = wrapper.Unwrap()
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return nameFromType(t.Name())
}

func nameFromType(typeName string) string {
	var words []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}
	for _, r := range typeName {
		switch {
		case r == '_':
			flush()
		case unicode.IsUpper(r):
			flush()
			word = append(word, unicode.ToLower(r))
		default:
			word = append(word, r)
		}
	}
	flush()
	return strings.TrimPrefix(strings.Join(words, "-"), "cmd-")
}

// Register creates a parser node for the command under parent, named
// by Name. This is the one mechanism that makes a command reachable
// from argv. The node is returned for callers that need to attach
// further configuration.
func Register(parent *Parser, command Command) *Parser {
	return RegisterAs(parent, Name(command), command)
}

// RegisterAs is Register with an explicit name, for commands mounted
// somewhere other than their derived name (list-profiles is also
// mounted as "profiles" under the list group).
func RegisterAs(parent *Parser, name string, command Command) *Parser {
	summary, epilog := splitHelp(command.Help())
	node := parent.Subparsers().Add(name, summary, epilog)
	command.Init(node)
	node.bindExecute(command.Execute)
	return node
}

func splitHelp(help string) (summary, epilog string) {
	summary, epilog, _ = strings.Cut(strings.TrimSpace(help), "\n")
	return strings.TrimSpace(summary), strings.TrimSpace(epilog)
}

// Options carries everything a resolved command needs at execute
// time.
type Options struct {
	// Args are the positional arguments left after flag parsing.
	Args []string

	// Logger is the invocation's structured logger.
	Logger *slog.Logger

	// Debug reports whether the hidden --debug flag was set.
	Debug bool

	root    *Parser
	node    *Parser
	execute ExecuteFunc
}

// Flags returns the flag set of the deepest matched node.
func (o *Options) Flags() *pflag.FlagSet { return o.node.flags }

// Parser returns the deepest matched node.
func (o *Options) Parser() *Parser { return o.node }
