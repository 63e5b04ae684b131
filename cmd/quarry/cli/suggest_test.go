// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"lauch", "launch", 1},
		{"realease", "release", 1},
		{"flaw", "lawn", 2},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	root := NewParser("quarry", "", "")
	sub := root.Subparsers()
	for _, name := range []string{"acquire", "launch", "release", "list"} {
		sub.Add(name, "", "")
	}
	children := root.Subparsers().order

	tests := []struct {
		unknown string
		want    string
	}{
		{"lauch", "launch"},
		{"aquire", "acquire"},
		{"realease", "release"},
		{"lists", "list"},
		{"zzzzzzzz", ""}, // nothing within distance 3
	}
	for _, test := range tests {
		if got := suggestCommand(test.unknown, children); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.unknown, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("readonly", false, "")
	flags.String("output-format", "", "")
	flags.Bool("v", false, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--readnoly"}, "--readonly"},
		{[]string{"--output-fromat=json"}, "--output-format"},
		{[]string{"-w"}, "-v"},
		{[]string{"positional", "--readonyl"}, "--readonly"},
		// Recognized flags are skipped; the first unrecognized one is
		// the subject.
		{[]string{"--readonly", "--output-fmt"}, "--output-format"},
		{[]string{"--zzzzzzzz"}, ""},
		{[]string{"positional-only"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flags); got != test.want {
			t.Errorf("suggestFlag(%q) = %q, want %q", test.args, got, test.want)
		}
	}
}
