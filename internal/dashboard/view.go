// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"sort"

	"github.com/pdiddy/cord-explorer/internal/aggregate"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// previewColumns are shown in the preview table when present.
var previewColumns = []string{
	types.ColTitle, types.ColJournal, types.ColPublishTime, types.ColYear, types.ColSource,
}

// View is the dashboard state for one year range over a cleaned table.
type View struct {
	Source   string            `json:"source"`
	Bounds   types.YearRange   `json:"bounds"`
	Range    types.YearRange   `json:"range"`
	Metrics  types.Metrics     `json:"metrics"`
	Years    []types.YearCount `json:"years"`
	Journals []types.TermCount `json:"journals"`
	Words    []types.TermCount `json:"words"`
	Preview  Preview           `json:"preview"`
}

// Preview is the first rows of the filtered table as display strings.
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewView filters t to the requested years and computes every panel.
// A zero from or to selects the default end of the range. Journals come
// back in ascending count order, ready for a horizontal bar chart.
func NewView(t *table.Table, from, to int, cfg types.DashboardConfig) View {
	cfg = cfg.WithDefaults()
	bounds := aggregate.YearBounds(t)
	r := SelectRange(bounds, from, to)

	filtered := aggregate.FilterYears(t, r)
	defer filtered.Release()

	return View{
		Bounds:   bounds,
		Range:    r,
		Metrics:  aggregate.Summarize(filtered),
		Years:    aggregate.PublicationsByYear(filtered),
		Journals: ascending(aggregate.TopJournals(filtered, cfg.JournalBars)),
		Words:    aggregate.CommonTitleWords(filtered, cfg.CloudWords, cfg.Stopwords),
		Preview:  NewPreview(filtered, cfg.PreviewRows),
	}
}

// SelectRange resolves a requested range against bounds.
func SelectRange(bounds types.YearRange, from, to int) types.YearRange {
	def := aggregate.DefaultRange(bounds)
	if from == 0 {
		from = def.From
	}
	if to == 0 {
		to = def.To
	}
	return aggregate.ClampRange(types.YearRange{From: from, To: to}, bounds)
}

// NewPreview renders up to n rows of the preview columns present in t.
func NewPreview(t *table.Table, n int) Preview {
	p := Preview{Columns: []string{}, Rows: [][]string{}}
	for _, c := range previewColumns {
		if t.Has(c) {
			p.Columns = append(p.Columns, c)
		}
	}
	for r := 0; r < min(n, t.Len()); r++ {
		row := make([]string, len(p.Columns))
		for i, c := range p.Columns {
			if v, ok := t.Text(c, r); ok {
				row[i] = v
			}
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

func ascending(terms []types.TermCount) []types.TermCount {
	out := make([]types.TermCount, len(terms))
	copy(out, terms)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	return out
}
