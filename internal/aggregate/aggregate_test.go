// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

func cleaned(t *testing.T, csvText string) *table.Table {
	t.Helper()
	raw, err := load.Read(strings.NewReader(csvText), load.Options{})
	require.NoError(t, err)
	defer raw.Release()
	out := clean.Clean(raw)
	t.Cleanup(out.Release)
	return out
}

func yearTable(t *testing.T, years ...int64) *table.Table {
	t.Helper()
	tbl := table.NewBuilder(len(years)).
		Int(types.ColYear, func(r int) (int64, bool) { return years[r], years[r] != 0 }).
		Build()
	t.Cleanup(tbl.Release)
	return tbl
}

func TestPublicationsByYear(t *testing.T) {
	got := PublicationsByYear(yearTable(t, 2021, 2020, 0, 2020))
	want := []types.YearCount{{Year: 2020, Count: 2}, {Year: 2021, Count: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PublicationsByYear mismatch (-want +got):\n%s", diff)
	}
}

func TestPublicationsByYearFromCleanedTable(t *testing.T) {
	tbl := cleaned(t, "title,publish_time\nA,2020-01-01\nB,2020-06-30\nC,2021\nD,garbage\n")
	got := PublicationsByYear(tbl)
	assert.Equal(t, []types.YearCount{{Year: 2020, Count: 2}, {Year: 2021, Count: 1}}, got)
}

func TestPublicationsByYearNoYearColumn(t *testing.T) {
	tbl := table.NewBuilder(1).Text("title", func(int) (string, bool) { return "x", true }).Build()
	defer tbl.Release()
	got := PublicationsByYear(tbl)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPublicationsByYearTextYears(t *testing.T) {
	years := []string{"2020.0", "2019", ""}
	tbl := table.NewBuilder(3).
		Text(types.ColYear, func(r int) (string, bool) { return years[r], years[r] != "" }).
		Build()
	defer tbl.Release()

	assert.Equal(t, []types.YearCount{{Year: 2019, Count: 1}, {Year: 2020, Count: 1}}, PublicationsByYear(tbl))
}

func TestPublicationsByYearSkipsUnusableTextYears(t *testing.T) {
	years := []string{"Inf", "-Inf", "NaN", "1e300", "2021"}
	tbl := table.NewBuilder(len(years)).
		Text(types.ColYear, func(r int) (string, bool) { return years[r], true }).
		Build()
	defer tbl.Release()

	assert.Equal(t, []types.YearCount{{Year: 2021, Count: 1}}, PublicationsByYear(tbl))
}

func TestTopJournals(t *testing.T) {
	tbl := cleaned(t, "title,journal\nx,A\ny,A\nz,B\n")

	assert.Equal(t, []types.TermCount{{Term: "A", Count: 2}}, TopJournals(tbl, 1))
	assert.Equal(t, []types.TermCount{{Term: "A", Count: 2}, {Term: "B", Count: 1}}, TopJournals(tbl, 0))
}

func TestTopJournalsTiesKeepFirstOccurrence(t *testing.T) {
	tbl := cleaned(t, "title,journal\na,C\nb,B\nc,A\nd,B\ne,C\nf,A\n")

	got := TopJournals(tbl, 3)
	want := []types.TermCount{{Term: "C", Count: 2}, {Term: "B", Count: 2}, {Term: "A", Count: 2}}
	assert.Equal(t, want, got)
}

func TestTopJournalsDefaultN(t *testing.T) {
	var b strings.Builder
	b.WriteString("title,journal\n")
	for i := 0; i < 30; i++ {
		b.WriteString("t,J")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("\n")
	}
	tbl := cleaned(t, b.String())
	assert.Len(t, TopJournals(tbl, 0), types.DefaultTopJournals)
}

func TestTopJournalsNoJournalColumn(t *testing.T) {
	tbl := cleaned(t, "title\nA\n")
	got := TopJournals(tbl, 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCommonTitleWords(t *testing.T) {
	tbl := cleaned(t, "title\nDeep Learning Study\ndeep learning review\n")

	got := CommonTitleWords(tbl, 0, nil)
	want := []types.TermCount{
		{Term: "deep", Count: 2},
		{Term: "learning", Count: 2},
		{Term: "review", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CommonTitleWords mismatch (-want +got):\n%s", diff)
	}
}

func TestCommonTitleWordsFiltering(t *testing.T) {
	tests := []struct {
		name      string
		titles    string
		stopwords []string
		n         int
		want      []types.TermCount
	}{
		{
			name:   "punctuation stripped and short tokens dropped",
			titles: "COVID-19: an overview\nCOVID-19 in Wuhan\n",
			want: []types.TermCount{
				{Term: "covid", Count: 2},
				{Term: "overview", Count: 1},
				{Term: "wuhan", Count: 1},
			},
		},
		{
			name:      "custom stopwords are case-insensitive",
			titles:    "Viral Load Dynamics\nviral shedding\n",
			stopwords: []string{"VIRAL"},
			want: []types.TermCount{
				{Term: "load", Count: 1},
				{Term: "dynamics", Count: 1},
				{Term: "shedding", Count: 1},
			},
		},
		{
			name:      "custom stopwords replace the defaults",
			titles:    "The study of things\n",
			stopwords: []string{"things"},
			want: []types.TermCount{
				{Term: "the", Count: 1},
				{Term: "study", Count: 1},
			},
		},
		{
			name:   "top n truncates",
			titles: "alpha beta gamma\nbeta gamma\ngamma\n",
			n:      2,
			want: []types.TermCount{
				{Term: "gamma", Count: 3},
				{Term: "beta", Count: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := cleaned(t, "title\n"+tt.titles)
			got := CommonTitleWords(tbl, tt.n, tt.stopwords)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommonTitleWordsNoTitleColumn(t *testing.T) {
	tbl := yearTable(t, 2020)
	got := CommonTitleWords(tbl, 10, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"sars", "cov", "2", "in", "café", "settings"},
		Tokenize("SARS-CoV-2 in Café   settings!"))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestAggregatorsOnEmptyTable(t *testing.T) {
	tbl := cleaned(t, "title,abstract,journal,publish_time,source_x\n")

	assert.Empty(t, PublicationsByYear(tbl))
	assert.Empty(t, TopJournals(tbl, 0))
	assert.Empty(t, CommonTitleWords(tbl, 0, nil))
}

func TestAggregatorsDoNotMutate(t *testing.T) {
	tbl := cleaned(t, "title,journal,publish_time\nDeep nets,A,2020\nMore nets,B,2021\n")
	cols := tbl.Columns()
	rows := tbl.Len()

	PublicationsByYear(tbl)
	TopJournals(tbl, 1)
	CommonTitleWords(tbl, 1, nil)

	assert.Equal(t, cols, tbl.Columns())
	assert.Equal(t, rows, tbl.Len())
}
