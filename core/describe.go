package core

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Describe renders a one-table, human-readable summary of c's
// sufficient statistics: its type-name, entries, and every field of its
// ToAggregation() body (inner containers are summarized by their own
// type-name and entries rather than expanded recursively).
//
// This is an inspection aid, not a CLI: it returns a string a caller
// can print, log, or assert against in a test; no flag parsing or
// process I/O happens here.
func Describe(c Container) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"field", "value"})
	t.AppendRow(table.Row{"type", c.TypeName()})
	t.AppendRow(table.Row{"entries", humanize.Comma(int64(c.Entries()))})

	agg, err := c.ToAggregation()
	if err != nil {
		t.AppendRow(table.Row{"error", err.Error()})

		return t.Render()
	}

	for _, row := range describeRows(agg) {
		t.AppendRow(table.Row{row.field, row.value})
	}

	return t.Render()
}

type describeRow struct {
	field string
	value string
}

// describeRows flattens agg's top-level JSON fields into sorted
// field/value rows, formatting floats with humanize for readability and
// summarizing nested {type,data} shells by type-name alone.
func describeRows(agg interface{}) []describeRow {
	raw, err := json.Marshal(agg)
	if err != nil {
		return nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	rows := make([]describeRow, 0, len(m))
	for field, value := range m {
		rows = append(rows, describeRow{field: field, value: describeValue(value)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].field < rows[j].field })

	return rows
}

func describeValue(raw json.RawMessage) string {
	var shell RawDoc
	if json.Unmarshal(raw, &shell) == nil && shell.Type != "" {
		return fmt.Sprintf("<%s>", shell.Type)
	}

	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return humanize.FtoaWithDigits(f, 6)
	}

	return string(raw)
}
