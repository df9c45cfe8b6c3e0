// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package load reads a delimited metadata file into a Record Table. Every
// column is read as text; typing is left to the cleaner.
package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/cord-explorer/internal/table"
)

var (
	// ErrMissingFile is returned when the input path does not exist and no
	// stream was supplied. It also matches fs.ErrNotExist.
	ErrMissingFile = errors.New("metadata file not found")

	// ErrMalformedInput is returned for input that has no header row.
	// Other parse failures surface as *csv.ParseError.
	ErrMalformedInput = errors.New("malformed metadata input")
)

// DefaultNullValues are the cell values read as missing, matching the usual
// dataframe CSV readers.
var DefaultNullValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Options controls reading.
type Options struct {
	// MaxRows caps the number of data rows read; 0 reads them all.
	MaxRows int

	// NullValues replaces DefaultNullValues when non-nil.
	NullValues []string

	// Wrap, when set, wraps an opened file before parsing. size is the
	// file size in bytes. The CLI uses it to drive a progress bar.
	Wrap func(r io.Reader, size int64) io.Reader
}

// Source names where the input comes from. Stream wins over Path.
type Source struct {
	Path   string
	Stream io.Reader
}

// Open reads from src.Stream when set, otherwise from src.Path.
func Open(src Source, opts Options) (*table.Table, error) {
	if src.Stream != nil {
		return Read(src.Stream, opts)
	}
	return Load(src.Path, opts)
}

// Load reads the file at path.
func Load(path string, opts Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrMissingFile, err)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Wrap != nil {
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}
		r = opts.Wrap(f, info.Size())
	}
	return Read(r, opts)
}

// Read parses CSV from r. The first record is the header. Rows shorter than
// the header are padded with nulls; longer rows fail with csv.ErrFieldCount.
// Parse errors from encoding/csv are returned unmodified.
func Read(r io.Reader, opts Options) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedInput)
	}
	if err != nil {
		return nil, err
	}
	names := columnNames(header)

	var rows [][]string
	for opts.MaxRows <= 0 || len(rows) < opts.MaxRows {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(names) {
			line, col := cr.FieldPos(len(names))
			return nil, &csv.ParseError{StartLine: line, Line: line, Column: col, Err: csv.ErrFieldCount}
		}
		rows = append(rows, rec)
	}

	nulls := nullSet(opts.NullValues)
	b := table.NewBuilder(len(rows))
	for i, name := range names {
		b.Text(name, func(r int) (string, bool) {
			row := rows[r]
			if i >= len(row) {
				return "", false
			}
			if _, null := nulls[row[i]]; null {
				return "", false
			}
			return row[i], true
		})
	}
	return b.Build(), nil
}

// IsMalformed reports whether err is a MalformedInput failure.
func IsMalformed(err error) bool {
	var pe *csv.ParseError
	return errors.Is(err, ErrMalformedInput) || errors.As(err, &pe)
}

// columnNames strips a UTF-8 byte order mark, names blank headers
// "Unnamed: i", and suffixes repeated headers with ".1", ".2", ...
func columnNames(header []string) []string {
	names := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for n := 1; taken[name]; n++ {
			name = h + "." + strconv.Itoa(n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

func nullSet(values []string) map[string]struct{} {
	if values == nil {
		values = DefaultNullValues
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
