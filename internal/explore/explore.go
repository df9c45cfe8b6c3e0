// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explore produces diagnostic snapshots of a Record Table: shape,
// column names, type labels, and missing-value counts. Snapshots are for
// people; nothing downstream reads them.
package explore

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Explore returns a snapshot of t. It does not modify t.
func Explore(t *table.Table) types.Snapshot {
	names := t.Columns()
	snap := types.Snapshot{
		Rows:    t.Len(),
		Cols:    len(names),
		Columns: make([]types.ColumnProfile, 0, len(names)),
	}
	for _, name := range names {
		snap.Columns = append(snap.Columns, types.ColumnProfile{
			Name:    name,
			Type:    t.Kind(name).String(),
			Missing: missing(t, name),
		})
	}
	return snap
}

// missing counts nulls, and empty strings in text columns.
func missing(t *table.Table, name string) int {
	if t.Kind(name) != table.KindText {
		return t.NullCount(name)
	}
	n := 0
	for r := 0; r < t.Len(); r++ {
		if v, ok := t.Text(name, r); !ok || v == "" {
			n++
		}
	}
	return n
}

// Print writes a human-readable snapshot. limit caps the missing-value
// listing; 0 lists every column.
func Print(w io.Writer, snap types.Snapshot, limit int) {
	fmt.Fprintf(w, "Shape: (%d, %d)\n", snap.Rows, snap.Cols)
	fmt.Fprintf(w, "Columns: [%s]\n", strings.Join(snap.ColumnNames(), ", "))

	cols := snap.Columns
	if limit > 0 && len(cols) > limit {
		cols = cols[:limit]
		fmt.Fprintf(w, "Missing values (first %d):\n", limit)
	} else {
		fmt.Fprintln(w, "Missing values:")
	}
	for _, c := range cols {
		fmt.Fprintf(w, "%-24s  %-8s  %d\n", c.Name, c.Type, c.Missing)
	}
}
