// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Year bounds reported for a table that has no years at all.
const (
	fallbackMinYear = 2018
	fallbackMaxYear = 2025
)

// YearBounds returns the smallest and largest year in t, or 2018..2025
// when no row has a year.
func YearBounds(t *table.Table) types.YearRange {
	var b types.YearRange
	found := false
	for r := 0; r < t.Len(); r++ {
		y, ok := yearOf(t, r)
		if !ok {
			continue
		}
		if !found || y < b.From {
			b.From = y
		}
		if !found || y > b.To {
			b.To = y
		}
		found = true
	}
	if !found {
		return types.YearRange{From: fallbackMinYear, To: fallbackMaxYear}
	}
	return b
}

// DefaultRange selects the last three years within bounds.
func DefaultRange(bounds types.YearRange) types.YearRange {
	from := bounds.To - 2
	if from < bounds.From {
		from = bounds.From
	}
	return types.YearRange{From: from, To: bounds.To}
}

// ClampRange orders r and limits it to bounds.
func ClampRange(r, bounds types.YearRange) types.YearRange {
	if r.From > r.To {
		r.From, r.To = r.To, r.From
	}
	r.From = min(max(r.From, bounds.From), bounds.To)
	r.To = min(max(r.To, bounds.From), bounds.To)
	return r
}

// FilterYears returns the rows whose year lies within r, bounds included.
// Rows without a year never match.
func FilterYears(t *table.Table, r types.YearRange) *table.Table {
	return t.Filter(func(row int) bool {
		y, ok := yearOf(t, row)
		return ok && r.Contains(y)
	})
}

// Summarize computes the dashboard metrics: row count, distinct journals,
// and the mean abstract word count truncated to an integer (0 for no rows).
func Summarize(t *table.Table) types.Metrics {
	m := types.Metrics{TotalPapers: t.Len()}

	journals := make(map[string]struct{})
	for r := 0; r < t.Len(); r++ {
		if j, ok := t.Text(types.ColJournal, r); ok {
			journals[j] = struct{}{}
		}
	}
	m.UniqueJournals = len(journals)

	var sum, n int64
	for r := 0; r < t.Len(); r++ {
		if wc, ok := t.Int(types.ColAbstractWords, r); ok {
			sum += wc
			n++
		}
	}
	if n > 0 {
		m.AvgAbstractWords = int(sum / n)
	}
	return m
}
