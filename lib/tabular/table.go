// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"
)

// Column describes one table column. Key names the field in yaml,
// json, and csv dumps; Title is the heading for pretty and plain
// output. Render, when set, converts a cell value for a specific
// target, so a column can color values on terminals while dumping the
// raw value everywhere else. A nil Render passes values through
// unchanged.
type Column struct {
	Key    string
	Title  string
	Render func(target RenderTarget, value any) any
}

// Table accumulates rows of cell values for rendering to any
// RenderTarget.
type Table struct {
	columns []Column
	rows    [][]any
}

// New creates an empty table with the given columns.
func New(columns ...Column) *Table {
	return &Table{columns: columns}
}

// Append adds one row. The number of values must match the number of
// columns; a mismatch is a programming error and panics.
func (t *Table) Append(values ...any) {
	if len(values) != len(t.columns) {
		panic(fmt.Sprintf("tabular: row has %d values, table has %d columns", len(values), len(t.columns)))
	}
	t.rows = append(t.rows, values)
}

// Len returns the number of appended rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w in the given target format.
func (t *Table) Render(w io.Writer, target RenderTarget) error {
	switch target {
	case TargetPretty:
		return t.renderPretty(w)
	case TargetPlain:
		return t.renderPlain(w)
	case TargetYAML:
		return t.renderYAML(w)
	case TargetJSON:
		return t.renderJSON(w)
	case TargetCSV:
		return t.renderCSV(w)
	}
	return fmt.Errorf("unknown output format %q", target)
}

// cell applies the column's Render hook for the given target.
func (t *Table) cell(index int, target RenderTarget, value any) any {
	if render := t.columns[index].Render; render != nil {
		return render(target, value)
	}
	return value
}

func (t *Table) renderPretty(w io.Writer) error {
	return t.renderFramed(w, TargetPretty, lipgloss.RoundedBorder())
}

// renderPlain draws the same framed table using only ASCII border
// characters, with every cell stripped of ANSI escapes, so the output
// survives dumb terminals and pipes.
func (t *Table) renderPlain(w io.Writer) error {
	return t.renderFramed(w, TargetPlain, lipgloss.ASCIIBorder())
}

func (t *Table) renderFramed(w io.Writer, target RenderTarget, border lipgloss.Border) error {
	headers := make([]string, len(t.columns))
	for i, column := range t.columns {
		headers[i] = column.Title
	}

	frame := table.New().
		Border(border).
		BorderStyle(lipgloss.NewStyle()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow && target == TargetPretty {
				style = style.Bold(true)
			}
			return style
		}).
		Headers(headers...)

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, value := range row {
			rendered := fmt.Sprint(t.cell(i, target, value))
			if target == TargetPlain {
				rendered = ansi.Strip(rendered)
			}
			cells[i] = rendered
		}
		frame.Row(cells...)
	}

	_, err := fmt.Fprintln(w, frame.String())
	return err
}

// records converts rows into key-value objects for the dump targets.
func (t *Table) records(target RenderTarget) []map[string]any {
	records := make([]map[string]any, 0, len(t.rows))
	for _, row := range t.rows {
		record := make(map[string]any, len(t.columns))
		for i, column := range t.columns {
			record[column.Key] = t.cell(i, target, row[i])
		}
		records = append(records, record)
	}
	return records
}

func (t *Table) renderYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(t.records(TargetYAML)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}

func (t *Table) renderJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(t.records(TargetJSON)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func (t *Table) renderCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	keys := make([]string, len(t.columns))
	for i, column := range t.columns {
		keys[i] = column.Key
	}
	if err := writer.Write(keys); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range t.rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = ansi.Strip(fmt.Sprint(t.cell(i, TargetCSV, value)))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
