// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package load

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cord-explorer/internal/table"
)

const sampleCSV = `cord_uid,title,abstract,journal,publish_time,source_x
a1,Deep Learning Study,We study things,Nature,2020-03-01,PMC
a2,deep learning review,,  Lancet ,2020,
a3,Viral spread,"Quoted, with comma",,not a date,Elsevier
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func cell(t *testing.T, tbl *table.Table, col string, row int) (string, bool) {
	t.Helper()
	return tbl.Text(col, row)
}

func TestLoadReadsAllColumnsAsText(t *testing.T) {
	tbl, err := Load(writeCSV(t, sampleCSV), Options{})
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t,
		[]string{"cord_uid", "title", "abstract", "journal", "publish_time", "source_x"},
		tbl.Columns())
	for _, name := range tbl.Columns() {
		assert.Equal(t, table.KindText, tbl.Kind(name), name)
	}

	v, ok := cell(t, tbl, "abstract", 2)
	assert.True(t, ok)
	assert.Equal(t, "Quoted, with comma", v)

	v, _ = cell(t, tbl, "journal", 1)
	assert.Equal(t, "  Lancet ", v, "loader does not trim")

	v, _ = cell(t, tbl, "publish_time", 1)
	assert.Equal(t, "2020", v, "no type inference")
}

func TestLoadEmptyFieldsAreNull(t *testing.T) {
	tbl, err := Load(writeCSV(t, sampleCSV), Options{})
	require.NoError(t, err)
	defer tbl.Release()

	_, ok := cell(t, tbl, "abstract", 1)
	assert.False(t, ok)
	_, ok = cell(t, tbl, "journal", 2)
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.NullCount("source_x"))
}

func TestLoadNullValues(t *testing.T) {
	csvText := "title,journal\nA,NA\nB,null\nC,Science\n"

	tbl, err := Read(strings.NewReader(csvText), Options{})
	require.NoError(t, err)
	defer tbl.Release()
	assert.Equal(t, 2, tbl.NullCount("journal"))

	custom, err := Read(strings.NewReader(csvText), Options{NullValues: []string{""}})
	require.NoError(t, err)
	defer custom.Release()
	assert.Equal(t, 0, custom.NullCount("journal"))
}

func TestLoadMaxRows(t *testing.T) {
	tests := []struct {
		name    string
		maxRows int
		want    int
	}{
		{name: "zero reads all", maxRows: 0, want: 3},
		{name: "caps rows", maxRows: 2, want: 2},
		{name: "cap above size", maxRows: 10, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Read(strings.NewReader(sampleCSV), Options{MaxRows: tt.maxRows})
			require.NoError(t, err)
			defer tbl.Release()
			assert.Equal(t, tt.want, tbl.Len())
		})
	}
}

func TestLoadPreservesRowOrder(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), Options{})
	require.NoError(t, err)
	defer tbl.Release()

	for i, want := range []string{"a1", "a2", "a3"} {
		got, _ := cell(t, tbl, "cord_uid", i)
		assert.Equal(t, want, got)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	tbl, err := Read(strings.NewReader("title,journal\n"), Options{})
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []string{"title", "journal"}, tbl.Columns())
}

func TestLoadShortRowsPadded(t *testing.T) {
	tbl, err := Read(strings.NewReader("title,journal,source_x\nA,Nature\n"), Options{})
	require.NoError(t, err)
	defer tbl.Release()

	require.Equal(t, 1, tbl.Len())
	_, ok := cell(t, tbl, "source_x", 0)
	assert.False(t, ok)
}

func TestLoadHeaderCleanup(t *testing.T) {
	tbl, err := Read(strings.NewReader("\ufefftitle,,title,title\n1,2,3,4\n"), Options{})
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, []string{"title", "Unnamed: 1", "title.1", "title.2"}, tbl.Columns())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, IsMalformed(err))
}

func TestOpenPrefersStream(t *testing.T) {
	src := Source{
		Path:   filepath.Join(t.TempDir(), "nope.csv"),
		Stream: strings.NewReader("title\nA\n"),
	}
	tbl, err := Open(src, Options{})
	require.NoError(t, err)
	defer tbl.Release()
	assert.Equal(t, 1, tbl.Len())

	_, err = Open(Source{Path: src.Path}, Options{})
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestLoadMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "bare quote",
			input:   "title,journal\nA \"quoted\" title,Nature\n",
			wantErr: csv.ErrBareQuote,
		},
		{
			name:    "too many fields",
			input:   "title,journal\nA,Nature,extra\n",
			wantErr: csv.ErrFieldCount,
		},
		{
			name:    "no header",
			input:   "",
			wantErr: ErrMalformedInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsMalformed(err))
			assert.False(t, errors.Is(err, ErrMissingFile))
		})
	}
}

func TestParseErrorIsUnwrapped(t *testing.T) {
	_, err := Read(strings.NewReader("title\n\"unterminated\n"), Options{})
	require.Error(t, err)
	_, ok := err.(*csv.ParseError)
	assert.True(t, ok, "csv.ParseError should be returned as-is, got %T", err)
}

func TestLoadWrap(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	var size int64
	var read int
	tbl, err := Load(path, Options{Wrap: func(r io.Reader, n int64) io.Reader {
		size = n
		return readFunc(func(p []byte) (int, error) {
			k, err := r.Read(p)
			read += k
			return k, err
		})
	}})
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(len(sampleCSV)), size)
	assert.Equal(t, len(sampleCSV), read)
	assert.Equal(t, 3, tbl.Len())
}

type readFunc func(p []byte) (int, error)

func (f readFunc) Read(p []byte) (int, error) { return f(p) }
