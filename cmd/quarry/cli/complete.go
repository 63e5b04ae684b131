// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// ServeCompletion answers a shell completion request in the
// "complete -C" protocol: the shell re-invokes the binary with
// COMP_LINE holding the partial command line and COMP_POINT the
// cursor offset, and reads candidate words from stdout, one per line.
//
// Candidates are the current node's subcommand names and declared
// flags, including hidden ones. Help flags never appear: the parser
// answers them without declaring them, and completing them is noise.
func ServeCompletion(w io.Writer, parser *Parser, line, point string) {
	if offset, err := strconv.Atoi(point); err == nil && offset >= 0 && offset < len(line) {
		line = line[:offset]
	}

	words := strings.Fields(line)
	if len(words) > 0 {
		// Drop the program name.
		words = words[1:]
	}
	partial := ""
	if len(words) > 0 && !strings.HasSuffix(line, " ") {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	node := parser
	for _, word := range words {
		if strings.HasPrefix(word, "-") {
			continue
		}
		if node.subparsers == nil {
			break
		}
		child, ok := node.subparsers.index[word]
		if !ok {
			break
		}
		node = child
	}

	for _, candidate := range completionCandidates(node) {
		if strings.HasPrefix(candidate, partial) {
			fmt.Fprintln(w, candidate)
		}
	}
}

func completionCandidates(node *Parser) []string {
	var candidates []string
	if node.subparsers != nil {
		candidates = append(candidates, node.subparsers.Names()...)
	}
	node.flags.VisitAll(func(f *pflag.Flag) {
		candidates = append(candidates, "--"+f.Name)
	})
	return candidates
}
