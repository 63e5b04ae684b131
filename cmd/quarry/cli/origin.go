// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/profile"
	"github.com/quarryhq/quarry/lib/remote"
	"github.com/quarryhq/quarry/lib/tabular"
)

// Profiles is the result of the startup profile resolution. Main
// resolves it once, before the tree is built, and passes it down
// explicitly so profile-bound commands can declare --profile-name
// with the right choices and default.
type Profiles struct {
	// Names are the stored profile names, sorted.
	Names []string
	// Default is the default profile, or nil when none is set.
	Default *profile.Profile
}

// OriginCommand is a command that operates on a region's resource
// graph. Its binding resolves --profile-name to a connected origin
// before delegating.
type OriginCommand interface {
	Help() string
	Init(parser *Parser)
	Execute(ctx context.Context, graph *origin.Origin, options *Options) error
}

// OriginTableCommand combines profile resolution with table
// rendering.
type OriginTableCommand interface {
	Help() string
	Init(parser *Parser)
	Execute(ctx context.Context, graph *origin.Origin, options *Options, target tabular.RenderTarget) error
}

// SessionOpener connects a session for a named profile. It is a
// variable so tests can count connections and substitute fakes.
var SessionOpener = func(profileName string, logger *slog.Logger) (*remote.Session, error) {
	return remote.OpenProfile(profileName, logger)
}

// BindOrigin adapts an OriginCommand to the Command contract, adding
// the --profile-name flag. The flag accepts only the resolved profile
// names; it is required when no default profile exists and otherwise
// defaults to the default profile's name.
func BindOrigin(profiles Profiles, command OriginCommand) Command {
	return &originBinding{profiles: profiles, command: command}
}

type originBinding struct {
	profiles    Profiles
	profileName profileNameValue
	command     OriginCommand
}

// Unwrap exposes the wrapped command for name derivation.
func (b *originBinding) Unwrap() any { return b.command }

func (b *originBinding) Help() string { return b.command.Help() }

func (b *originBinding) Init(parser *Parser) {
	declareProfileFlag(parser, b.profiles, &b.profileName)
	b.command.Init(parser)
}

func (b *originBinding) Execute(ctx context.Context, options *Options) error {
	return withOrigin(ctx, b.profileName.name, options, b.command.Execute)
}

// BindOriginTable composes profile resolution and table rendering.
// The profile flag is declared before the output-format flag, and
// both before the command's own flags, so help output documents a
// stable order.
func BindOriginTable(profiles Profiles, command OriginTableCommand) Command {
	return &originTableBinding{profiles: profiles, command: command}
}

type originTableBinding struct {
	profiles    Profiles
	profileName profileNameValue
	target      tabular.RenderTarget
	command     OriginTableCommand
}

// Unwrap exposes the wrapped command for name derivation.
func (b *originTableBinding) Unwrap() any { return b.command }

func (b *originTableBinding) Help() string { return b.command.Help() }

func (b *originTableBinding) Init(parser *Parser) {
	declareProfileFlag(parser, b.profiles, &b.profileName)
	declareTargetFlag(parser, &b.target)
	b.command.Init(parser)
}

func (b *originTableBinding) Execute(ctx context.Context, options *Options) error {
	return withOrigin(ctx, b.profileName.name, options,
		func(ctx context.Context, graph *origin.Origin, options *Options) error {
			return b.command.Execute(ctx, graph, options, b.target)
		})
}

// withOrigin opens exactly one session for the named profile, wraps
// it in exactly one origin, and delegates once. The session closes
// when execute returns.
func withOrigin(ctx context.Context, profileName string, options *Options,
	execute func(context.Context, *origin.Origin, *Options) error) error {
	session, err := SessionOpener(profileName, options.Logger)
	if err != nil {
		return err
	}
	defer session.Close()
	return execute(ctx, origin.New(session), options)
}

const profileFlagUsage = "name of the profile to use (see \"quarry list-profiles\")"

func declareProfileFlag(parser *Parser, profiles Profiles, value *profileNameValue) {
	value.choices = profiles.Names
	if profiles.Default != nil {
		value.name = profiles.Default.Name
	}
	parser.Flags().Var(value, "profile-name", profileFlagUsage)
	if profiles.Default == nil {
		parser.RequireFlag("profile-name")
	}
}

// ProfileNameVar declares an optional --profile-name flag constrained
// to the resolved profile names, for commands outside the origin
// bindings (the shell). The flag is never required; the result is the
// default profile's name, or empty when no profile is selected.
func ProfileNameVar(parser *Parser, profiles Profiles) *string {
	value := &profileNameValue{choices: profiles.Names}
	if profiles.Default != nil {
		value.name = profiles.Default.Name
	}
	parser.Flags().Var(value, "profile-name", profileFlagUsage)
	return &value.name
}

// profileNameValue is a pflag.Value constrained to the resolved
// profile names, so a typo surfaces as an argument error before any
// connection is attempted.
type profileNameValue struct {
	name    string
	choices []string
}

func (v *profileNameValue) String() string { return v.name }

func (v *profileNameValue) Set(name string) error {
	if !slices.Contains(v.choices, name) {
		if len(v.choices) == 0 {
			return fmt.Errorf("no profiles stored (run \"quarry login\" first)")
		}
		return fmt.Errorf("unknown profile %q (choose from %s)", name, strings.Join(v.choices, ", "))
	}
	v.name = name
	return nil
}

func (v *profileNameValue) Type() string { return "NAME" }
