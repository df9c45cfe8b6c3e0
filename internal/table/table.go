// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table holds the in-memory Record Table passed between pipeline
// stages. A Table wraps an Arrow record and is never modified once built;
// stages that change data build a new Table with a Builder.
package table

import (
	"strconv"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
)

// dateLayout is how date cells render as text.
const dateLayout = "2006-01-02"

// Kind is the semantic type of a column.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDate
)

// String returns the type label shown in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	default:
		return "text"
	}
}

func (k Kind) dataType() arrow.DataType {
	switch k {
	case KindInteger:
		return arrow.PrimitiveTypes.Int64
	case KindDate:
		return arrow.FixedWidthTypes.Date32
	default:
		return arrow.BinaryTypes.String
	}
}

func kindOf(dt arrow.DataType) Kind {
	switch dt.ID() {
	case arrow.INT64:
		return KindInteger
	case arrow.DATE32:
		return KindDate
	default:
		return KindText
	}
}

// Table is an ordered, immutable set of rows with a uniform schema.
type Table struct {
	rec   arrow.Record
	index map[string]int
}

// New wraps rec. The Table takes ownership of the caller's reference.
func New(rec arrow.Record) *Table {
	index := make(map[string]int, rec.NumCols())
	for i, f := range rec.Schema().Fields() {
		if _, dup := index[f.Name]; !dup {
			index[f.Name] = i
		}
	}
	return &Table{rec: rec, index: index}
}

// Empty returns a table with no columns and no rows.
func Empty() *Table {
	return NewBuilder(0).Build()
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return int(t.rec.NumRows())
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	fields := t.rec.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Kind returns the type of the named column. Absent columns report KindText.
func (t *Table) Kind(name string) Kind {
	col, ok := t.column(name)
	if !ok {
		return KindText
	}
	return kindOf(col.DataType())
}

// NullCount returns the number of null cells in the named column.
func (t *Table) NullCount(name string) int {
	col, ok := t.column(name)
	if !ok {
		return 0
	}
	return col.NullN()
}

// Text returns the cell at row as text. Integer and date cells are
// formatted. The second result is false for null cells and absent columns.
func (t *Table) Text(name string, row int) (string, bool) {
	col, ok := t.column(name)
	if !ok || col.IsNull(row) {
		return "", false
	}
	switch a := col.(type) {
	case *array.String:
		return a.Value(row), true
	case *array.Int64:
		return strconv.FormatInt(a.Value(row), 10), true
	case *array.Date32:
		return a.Value(row).ToTime().Format(dateLayout), true
	}
	return "", false
}

// Int returns the integer cell at row. It is false for nulls and for
// columns that are not integer columns.
func (t *Table) Int(name string, row int) (int64, bool) {
	col, ok := t.column(name)
	if !ok || col.IsNull(row) {
		return 0, false
	}
	a, ok := col.(*array.Int64)
	if !ok {
		return 0, false
	}
	return a.Value(row), true
}

// Date returns the date cell at row as a UTC time.
func (t *Table) Date(name string, row int) (time.Time, bool) {
	col, ok := t.column(name)
	if !ok || col.IsNull(row) {
		return time.Time{}, false
	}
	a, ok := col.(*array.Date32)
	if !ok {
		return time.Time{}, false
	}
	return a.Value(row).ToTime().UTC(), true
}

// Record exposes the underlying Arrow record. Callers must not release it.
func (t *Table) Record() arrow.Record {
	return t.rec
}

// Release drops the table's reference to its Arrow buffers.
func (t *Table) Release() {
	t.rec.Release()
}

// Filter returns a new table holding the rows for which keep is true, in order.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var rows []int
	for r := 0; r < t.Len(); r++ {
		if keep(r) {
			rows = append(rows, r)
		}
	}

	b := NewBuilder(len(rows))
	for _, name := range t.Columns() {
		switch t.Kind(name) {
		case KindInteger:
			b.Int(name, func(r int) (int64, bool) { return t.Int(name, rows[r]) })
		case KindDate:
			b.Date(name, func(r int) (time.Time, bool) { return t.Date(name, rows[r]) })
		default:
			b.Text(name, func(r int) (string, bool) { return t.Text(name, rows[r]) })
		}
	}
	return b.Build()
}

// Head returns the first n rows.
func (t *Table) Head(n int) *Table {
	return t.Filter(func(row int) bool { return row < n })
}

func (t *Table) column(name string) (arrow.Array, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.rec.Column(i), true
}
