// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

// Builder assembles a Table column by column. Every column has exactly the
// row count given to NewBuilder. Adding a column whose name is already
// present replaces it in place, keeping column order stable.
type Builder struct {
	mem    memory.Allocator
	rows   int
	fields []arrow.Field
	arrays []arrow.Array
}

// NewBuilder starts a table with the given number of rows.
func NewBuilder(rows int) *Builder {
	return &Builder{
		mem:  memory.NewGoAllocator(),
		rows: rows,
	}
}

// Text adds a text column. value reports the cell at each row and whether it
// is set; unset cells become nulls.
func (b *Builder) Text(name string, value func(row int) (string, bool)) *Builder {
	sb := array.NewStringBuilder(b.mem)
	defer sb.Release()
	sb.Reserve(b.rows)
	for r := 0; r < b.rows; r++ {
		if v, ok := value(r); ok {
			sb.Append(v)
		} else {
			sb.AppendNull()
		}
	}
	b.put(name, KindText, sb.NewArray())
	return b
}

// Int adds a nullable integer column.
func (b *Builder) Int(name string, value func(row int) (int64, bool)) *Builder {
	ib := array.NewInt64Builder(b.mem)
	defer ib.Release()
	ib.Reserve(b.rows)
	for r := 0; r < b.rows; r++ {
		if v, ok := value(r); ok {
			ib.Append(v)
		} else {
			ib.AppendNull()
		}
	}
	b.put(name, KindInteger, ib.NewArray())
	return b
}

// Date adds a nullable date column. Times are truncated to the calendar day.
func (b *Builder) Date(name string, value func(row int) (time.Time, bool)) *Builder {
	db := array.NewDate32Builder(b.mem)
	defer db.Release()
	db.Reserve(b.rows)
	for r := 0; r < b.rows; r++ {
		if v, ok := value(r); ok {
			db.Append(arrow.Date32FromTime(v))
		} else {
			db.AppendNull()
		}
	}
	b.put(name, KindDate, db.NewArray())
	return b
}

// Copy adds the named column of src without copying its buffers. It is a
// no-op when src has no such column.
func (b *Builder) Copy(src *Table, name string) *Builder {
	col, ok := src.column(name)
	if !ok {
		return b
	}
	col.Retain()
	b.put(name, kindOf(col.DataType()), col)
	return b
}

// Build freezes the columns into a Table.
func (b *Builder) Build() *Table {
	schema := arrow.NewSchema(b.fields, nil)
	rec := array.NewRecord(schema, b.arrays, int64(b.rows))
	for _, a := range b.arrays {
		a.Release()
	}
	b.fields, b.arrays = nil, nil
	return New(rec)
}

func (b *Builder) put(name string, kind Kind, arr arrow.Array) {
	field := arrow.Field{Name: name, Type: kind.dataType(), Nullable: true}
	for i, f := range b.fields {
		if f.Name == name {
			b.arrays[i].Release()
			b.fields[i] = field
			b.arrays[i] = arr
			return
		}
	}
	b.fields = append(b.fields, field)
	b.arrays = append(b.arrays, arr)
}
