// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package tags

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/origin"
	"github.com/quarryhq/quarry/lib/remote"
	"github.com/quarryhq/quarry/lib/tabular"
)

func testOrigin(t *testing.T, mux *http.ServeMux) *origin.Origin {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	session, err := remote.Connect(remote.Config{
		BaseURL: server.URL,
		APIKey:  "key:test",
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	return origin.New(session)
}

func TestListTags_CSV(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tags/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]origin.Tag{
			{Name: "gpu", Comment: "has a GPU", NodeCount: 3},
			{Name: "fast", NodeCount: 12},
		})
	})

	var out bytes.Buffer
	command := &cmdListTags{out: &out}
	options := &cli.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	if err := command.Execute(context.Background(), testOrigin(t, mux), options, tabular.TargetCSV); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d csv lines, want 3:\n%s", len(lines), out.String())
	}
	if lines[0] != "name,nodes,comment" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "gpu,3,has a GPU" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[2] != "fast,12," {
		t.Errorf("second row = %q", lines[2])
	}
}
