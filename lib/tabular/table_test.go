// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleTable() *Table {
	table := New(
		Column{Key: "hostname", Title: "HOSTNAME"},
		Column{Key: "status", Title: "STATUS"},
	)
	table.Append("quartz", "ready")
	table.Append("basalt", "allocated")
	return table
}

func TestTable_Append_WrongArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Append with wrong arity did not panic")
		}
	}()
	sampleTable().Append("only-one-value")
}

func TestTable_RenderPretty_HasBorder(t *testing.T) {
	var buffer bytes.Buffer
	if err := sampleTable().Render(&buffer, TargetPretty); err != nil {
		t.Fatalf("Render(pretty) error: %v", err)
	}
	output := buffer.String()

	for _, want := range []string{"╭", "╰", "HOSTNAME", "STATUS", "quartz", "allocated"} {
		if !strings.Contains(output, want) {
			t.Errorf("pretty output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestTable_RenderPlain_NoEscapes(t *testing.T) {
	table := New(
		Column{Key: "hostname", Title: "HOSTNAME"},
		Column{Key: "status", Title: "STATUS"},
	)
	// A pre-colored cell must come out stripped.
	table.Append("quartz", "\x1b[32mready\x1b[0m")

	var buffer bytes.Buffer
	if err := table.Render(&buffer, TargetPlain); err != nil {
		t.Fatalf("Render(plain) error: %v", err)
	}
	output := buffer.String()

	if strings.ContainsRune(output, '\x1b') {
		t.Errorf("plain output contains an ANSI escape:\n%q", output)
	}
	for _, want := range []string{"HOSTNAME", "STATUS", "quartz", "ready", "+", "|"} {
		if !strings.Contains(output, want) {
			t.Errorf("plain output missing %q\n\nFull output:\n%s", want, output)
		}
	}
	for _, r := range output {
		if r > 127 {
			t.Errorf("plain output contains non-ASCII rune %q", r)
		}
	}
}

func TestTable_RenderJSON_KeyedByColumnKey(t *testing.T) {
	var buffer bytes.Buffer
	if err := sampleTable().Render(&buffer, TargetJSON); err != nil {
		t.Fatalf("Render(json) error: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &records); err != nil {
		t.Fatalf("json output does not parse: %v\n%s", err, buffer.String())
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["hostname"] != "quartz" {
		t.Errorf("records[0][hostname] = %v, want %q", records[0]["hostname"], "quartz")
	}
	if records[1]["status"] != "allocated" {
		t.Errorf("records[1][status] = %v, want %q", records[1]["status"], "allocated")
	}
}

func TestTable_RenderYAML_KeyedByColumnKey(t *testing.T) {
	var buffer bytes.Buffer
	if err := sampleTable().Render(&buffer, TargetYAML); err != nil {
		t.Fatalf("Render(yaml) error: %v", err)
	}

	var records []map[string]any
	if err := yaml.Unmarshal(buffer.Bytes(), &records); err != nil {
		t.Fatalf("yaml output does not parse: %v\n%s", err, buffer.String())
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["hostname"] != "quartz" {
		t.Errorf("records[0][hostname] = %v, want %q", records[0]["hostname"], "quartz")
	}
}

func TestTable_RenderCSV(t *testing.T) {
	table := New(
		Column{Key: "hostname", Title: "HOSTNAME"},
		Column{Key: "status", Title: "STATUS"},
	)
	table.Append("quartz", "\x1b[31mfailed\x1b[0m")

	var buffer bytes.Buffer
	if err := table.Render(&buffer, TargetCSV); err != nil {
		t.Fatalf("Render(csv) error: %v", err)
	}
	output := buffer.String()

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d csv lines, want 2:\n%s", len(lines), output)
	}
	if lines[0] != "hostname,status" {
		t.Errorf("csv header = %q, want column keys", lines[0])
	}
	if lines[1] != "quartz,failed" {
		t.Errorf("csv row = %q, want stripped values", lines[1])
	}
}

func TestTable_RenderHook_PerTarget(t *testing.T) {
	table := New(
		Column{Key: "tags", Title: "TAGS", Render: func(target RenderTarget, value any) any {
			tags := value.([]string)
			if target == TargetJSON {
				return tags
			}
			return strings.Join(tags, ",")
		}},
	)
	table.Append([]string{"gpu", "fast"})

	var plain bytes.Buffer
	if err := table.Render(&plain, TargetPlain); err != nil {
		t.Fatalf("Render(plain) error: %v", err)
	}
	if !strings.Contains(plain.String(), "gpu,fast") {
		t.Errorf("plain output = %q, want joined tags", plain.String())
	}

	var dump bytes.Buffer
	if err := table.Render(&dump, TargetJSON); err != nil {
		t.Fatalf("Render(json) error: %v", err)
	}
	var records []map[string][]string
	if err := json.Unmarshal(dump.Bytes(), &records); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if len(records) != 1 || len(records[0]["tags"]) != 2 {
		t.Errorf("json tags = %v, want the raw array", records)
	}
}
