// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

const rawCSV = `cord_uid,source_x,source_y,title,abstract,publish_time,journal
a1,PMC,Medline,Deep Learning Study,We study deep models,2020-03-01,Nature
a2,,Medline,deep learning review,,2020 Mar 15,  Lancet
a3,,,Viral spread,,not a date,
a4,WHO,,,Short abstract here,2021,Cell
`

func mustRead(t *testing.T, csvText string) *table.Table {
	t.Helper()
	tbl, err := load.Read(strings.NewReader(csvText), load.Options{})
	require.NoError(t, err)
	t.Cleanup(tbl.Release)
	return tbl
}

func texts(tbl *table.Table, col string) []string {
	out := make([]string, tbl.Len())
	for r := range out {
		v, ok := tbl.Text(col, r)
		if !ok {
			v = "<null>"
		}
		out[r] = v
	}
	return out
}

func TestCleanYear(t *testing.T) {
	out := Clean(mustRead(t, rawCSV))
	defer out.Release()

	assert.Equal(t, table.KindDate, out.Kind(types.ColPublishTime))
	assert.Equal(t, table.KindInteger, out.Kind(types.ColYear))
	assert.Equal(t, []string{"2020", "2020", "<null>", "2021"}, texts(out, types.ColYear))
	assert.Equal(t, []string{"2020-03-01", "2020-03-15", "<null>", "2021-01-01"}, texts(out, types.ColPublishTime))
}

func TestCleanTextAndWordCounts(t *testing.T) {
	out := Clean(mustRead(t, rawCSV))
	defer out.Release()

	assert.Equal(t, []string{"Deep Learning Study", "deep learning review", "Viral spread", ""}, texts(out, types.ColTitle))
	assert.Equal(t, []string{"We study deep models", "", "", "Short abstract here"}, texts(out, types.ColAbstract))
	assert.Equal(t, []string{"3", "3", "2", "0"}, texts(out, types.ColTitleWords))
	assert.Equal(t, []string{"4", "0", "0", "3"}, texts(out, types.ColAbstractWords))
}

func TestCleanJournal(t *testing.T) {
	out := Clean(mustRead(t, rawCSV))
	defer out.Release()

	assert.Equal(t, []string{"Nature", "Lancet", "Unknown", "Cell"}, texts(out, types.ColJournal))
}

func TestCleanSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "source_x then source_y then unknown",
			input: "title,source_x,source_y\nA,PMC,Medline\nB,,Medline\nC,,\n",
			want:  []string{"PMC", "Medline", "unknown"},
		},
		{
			name:  "only source_y",
			input: "title,source_y\nA,Medline\nB,\n",
			want:  []string{"Medline", "unknown"},
		},
		{
			name:  "existing source column kept",
			input: "title,source\nA,arxiv\nB,\n",
			want:  []string{"arxiv", "unknown"},
		},
		{
			name:  "no source columns",
			input: "title\nA\nB\n",
			want:  []string{"unknown", "unknown"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Clean(mustRead(t, tt.input))
			defer out.Release()
			assert.Equal(t, tt.want, texts(out, types.ColSource))
		})
	}
}

func TestCleanPreservesRowsAndOrder(t *testing.T) {
	in := mustRead(t, rawCSV)
	out := Clean(in)
	defer out.Release()

	assert.Equal(t, in.Len(), out.Len())
	assert.Equal(t, texts(in, "cord_uid"), texts(out, "cord_uid"))
	assert.Equal(t, []string{
		"cord_uid", "source_x", "source_y", "title", "abstract", "publish_time", "journal",
		types.ColYear, types.ColTitleWords, types.ColAbstractWords, types.ColSource,
	}, out.Columns())
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := mustRead(t, rawCSV)
	before := texts(in, types.ColJournal)

	out := Clean(in)
	defer out.Release()

	assert.Equal(t, before, texts(in, types.ColJournal))
	assert.Equal(t, table.KindText, in.Kind(types.ColPublishTime))
	assert.False(t, in.Has(types.ColYear))
}

func TestCleanMinimalInputGetsDerivedColumns(t *testing.T) {
	inputs := map[string]string{
		"title only":    "title\nHello world\n",
		"no title":      "journal\nNature\n",
		"no columns":    "\n",
		"empty rows":    "title,abstract,publish_time,journal,source_x\n",
		"unknown extra": "cord_uid,url\nx,http://example.com\n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var in *table.Table
			if input == "\n" {
				in = table.Empty()
			} else {
				in = mustRead(t, input)
			}
			out := Clean(in)
			defer out.Release()

			assert.Equal(t, in.Len(), out.Len())
			for _, col := range []string{types.ColYear, types.ColSource, types.ColTitleWords, types.ColAbstractWords} {
				assert.True(t, out.Has(col), "missing %s", col)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	once := Clean(mustRead(t, rawCSV))
	defer once.Release()
	twice := Clean(once)
	defer twice.Release()

	require.Equal(t, once.Columns(), twice.Columns())
	for _, col := range once.Columns() {
		assert.Equal(t, once.Kind(col), twice.Kind(col), col)
		assert.Equal(t, texts(once, col), texts(twice, col), col)
	}
	assert.True(t, once.Record().Schema().Equal(twice.Record().Schema()))
}

func TestCleanEmptyTable(t *testing.T) {
	out := Clean(mustRead(t, "title,publish_time\n"))
	defer out.Release()
	assert.Equal(t, 0, out.Len())
	assert.True(t, out.Has(types.ColYear))
}

func TestParsePublishTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2020-03-01", want: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2020", want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2020 Mar 15", want: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{in: " 2019-12-31 ", want: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2021-01-01T00:30:00+02:00", want: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2020-12-31T23:30:00-05:00", want: time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "not a date", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePublishTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}
