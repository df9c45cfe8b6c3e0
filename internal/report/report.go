// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report runs the pipeline in script mode. It explores the raw
// table, cleans it, aggregates, and renders the results for a terminal or
// exports them as YAML or JSON.
package report

import (
	"github.com/pdiddy/cord-explorer/internal/aggregate"
	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/explore"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// yearSample is how many distinct years the report lists.
const yearSample = 10

// Report holds everything the scripted run prints.
type Report struct {
	Source       string            `json:"source" yaml:"source"`
	Snapshot     types.Snapshot    `json:"snapshot" yaml:"snapshot"`
	Years        []int             `json:"years" yaml:"years"`
	Publications []types.YearCount `json:"publications_by_year" yaml:"publications_by_year"`
	TopJournals  []types.TermCount `json:"top_journals" yaml:"top_journals"`
	TitleWords   []types.TermCount `json:"title_words" yaml:"title_words"`
}

// Build runs explore, clean, and the aggregators over raw. source labels
// the input in the output.
func Build(raw *table.Table, source string, cfg types.ReportConfig) Report {
	cleaned := clean.Clean(raw)
	defer cleaned.Release()

	return Report{
		Source:       source,
		Snapshot:     explore.Explore(raw),
		Years:        distinctYears(cleaned, yearSample),
		Publications: aggregate.PublicationsByYear(cleaned),
		TopJournals:  aggregate.TopJournals(cleaned, cfg.TopJournals),
		TitleWords:   aggregate.CommonTitleWords(cleaned, cfg.TopWords, cfg.Stopwords),
	}
}

// distinctYears lists up to n distinct non-null years in row order.
func distinctYears(t *table.Table, n int) []int {
	years := []int{}
	seen := make(map[int64]struct{})
	for r := 0; r < t.Len() && len(years) < n; r++ {
		y, ok := t.Int(types.ColYear, r)
		if !ok {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, int(y))
	}
	return years
}
