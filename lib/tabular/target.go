// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package tabular renders command results as tables for terminals and
// as structured dumps (yaml, json, csv) for scripts.
package tabular

import (
	"fmt"
	"strings"
)

// RenderTarget selects how a table is rendered. The pretty and plain
// targets produce columnar text for humans; yaml, json, and csv
// produce machine-readable dumps.
type RenderTarget string

const (
	// TargetPretty draws a bordered, colored table.
	TargetPretty RenderTarget = "pretty"
	// TargetPlain draws the table with ASCII borders and no color.
	TargetPlain RenderTarget = "plain"
	// TargetYAML dumps rows as a YAML array of objects.
	TargetYAML RenderTarget = "yaml"
	// TargetJSON dumps rows as a JSON array of objects.
	TargetJSON RenderTarget = "json"
	// TargetCSV dumps rows as comma-separated values with a header.
	TargetCSV RenderTarget = "csv"
)

// Targets lists every render target, in the order shown in help text.
func Targets() []RenderTarget {
	return []RenderTarget{TargetPretty, TargetPlain, TargetYAML, TargetJSON, TargetCSV}
}

// TargetNames returns the valid target names joined for help and
// error text.
func TargetNames() string {
	names := make([]string, 0, 5)
	for _, target := range Targets() {
		names = append(names, string(target))
	}
	return strings.Join(names, ", ")
}

// ParseRenderTarget validates a user-supplied target name.
func ParseRenderTarget(name string) (RenderTarget, error) {
	for _, target := range Targets() {
		if string(target) == name {
			return target, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (choose from %s)", name, TargetNames())
}

// DefaultTarget picks the target used when the user does not choose
// one: pretty for terminals, plain for pipes and files.
func DefaultTarget(terminal bool) RenderTarget {
	if terminal {
		return TargetPretty
	}
	return TargetPlain
}

// String implements pflag.Value.
func (t *RenderTarget) String() string { return string(*t) }

// Set implements pflag.Value. Names outside the closed target set are
// rejected so bad values surface as argument errors.
func (t *RenderTarget) Set(name string) error {
	target, err := ParseRenderTarget(name)
	if err != nil {
		return err
	}
	*t = target
	return nil
}

// Type implements pflag.Value. The value appears as the placeholder
// in flag usage text.
func (t *RenderTarget) Type() string { return "FORMAT" }
