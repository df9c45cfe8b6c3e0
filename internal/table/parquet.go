// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/compress"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
)

// WriteParquet encodes the table as a single Parquet row group. When w is an
// io.Closer the Parquet writer closes it.
func (t *Table) WriteParquet(w io.Writer) error {
	fw, err := pqarrow.NewFileWriter(
		t.rec.Schema(),
		w,
		parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy)),
		pqarrow.DefaultWriterProps(),
	)
	if err != nil {
		return fmt.Errorf("creating parquet writer: %w", err)
	}

	if err := fw.Write(t.rec); err != nil {
		fw.Close()
		return fmt.Errorf("writing parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return nil
}
