// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean normalizes a raw metadata table. It parses publish dates,
// fills missing text fields with defaults, and derives the year,
// word-count, and source columns. Missing optional columns fall back to
// defaults and never cause an error.
package clean

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// fallbackLayouts cover publish_time shapes dateparse does not accept.
var fallbackLayouts = []string{"2006", "2006 Jan 2", "2006 Jan", "2006 January 2"}

// Clean returns a cleaned copy of t. The input is never modified and the
// output has the same rows in the same order. Cleaning an already-cleaned
// table returns an equal table.
//
// Input columns keep their position. Columns the input lacks are appended
// in this order: year, title, abstract, title_word_count,
// abstract_word_count, source.
func Clean(t *table.Table) *table.Table {
	b := table.NewBuilder(t.Len())
	for _, name := range t.Columns() {
		b.Copy(t, name)
	}

	cleanDates(b, t)
	cleanText(b, t)
	cleanJournal(b, t)
	cleanSource(b, t)

	return b.Build()
}

// cleanDates parses publish_time into a date column and derives year.
// Without publish_time every year is null.
func cleanDates(b *table.Builder, t *table.Table) {
	if !t.Has(types.ColPublishTime) {
		b.Int(types.ColYear, func(int) (int64, bool) { return 0, false })
		return
	}

	dates := make([]time.Time, t.Len())
	valid := make([]bool, t.Len())
	for r := range dates {
		dates[r], valid[r] = publishDate(t, r)
	}

	b.Date(types.ColPublishTime, func(r int) (time.Time, bool) { return dates[r], valid[r] })
	b.Int(types.ColYear, func(r int) (int64, bool) { return int64(dates[r].Year()), valid[r] })
}

func publishDate(t *table.Table, row int) (time.Time, bool) {
	if t.Kind(types.ColPublishTime) == table.KindDate {
		return t.Date(types.ColPublishTime, row)
	}
	raw, ok := t.Text(types.ColPublishTime, row)
	if !ok {
		return time.Time{}, false
	}
	return ParsePublishTime(raw)
}

// ParsePublishTime parses a publish date in any of the common layouts. The
// result is the calendar date as written, at midnight UTC; a stated offset
// never moves it to another day. The second result is false when the value
// is not a date.
func ParsePublishTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range fallbackLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	d, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
}

// cleanText fills missing titles and abstracts with "" and counts their
// whitespace-separated words.
func cleanText(b *table.Builder, t *table.Table) {
	titles := filled(t, types.ColTitle)
	abstracts := filled(t, types.ColAbstract)

	b.Text(types.ColTitle, func(r int) (string, bool) { return titles[r], true })
	b.Text(types.ColAbstract, func(r int) (string, bool) { return abstracts[r], true })
	b.Int(types.ColTitleWords, func(r int) (int64, bool) { return wordCount(titles[r]), true })
	b.Int(types.ColAbstractWords, func(r int) (int64, bool) { return wordCount(abstracts[r]), true })
}

func filled(t *table.Table, name string) []string {
	out := make([]string, t.Len())
	for r := range out {
		out[r], _ = t.Text(name, r)
	}
	return out
}

func wordCount(s string) int64 {
	return int64(len(strings.Fields(s)))
}

// cleanJournal fills missing journals with "Unknown" and trims whitespace.
// A table without a journal column is left without one.
func cleanJournal(b *table.Builder, t *table.Table) {
	if !t.Has(types.ColJournal) {
		return
	}
	b.Text(types.ColJournal, func(r int) (string, bool) {
		v, ok := t.Text(types.ColJournal, r)
		if !ok {
			v = types.UnknownJournal
		}
		return strings.TrimSpace(v), true
	})
}

// cleanSource resolves the source column: source_x, then source_y, then
// "unknown". Without either legacy column an existing source column keeps
// its values with nulls filled.
func cleanSource(b *table.Builder, t *table.Table) {
	switch {
	case t.Has(types.ColSourceX) || t.Has(types.ColSourceY):
		b.Text(types.ColSource, func(r int) (string, bool) {
			if v, ok := t.Text(types.ColSourceX, r); ok {
				return v, true
			}
			if v, ok := t.Text(types.ColSourceY, r); ok {
				return v, true
			}
			return types.UnknownSource, true
		})
	case t.Has(types.ColSource):
		b.Text(types.ColSource, func(r int) (string, bool) {
			if v, ok := t.Text(types.ColSource, r); ok {
				return v, true
			}
			return types.UnknownSource, true
		})
	default:
		b.Text(types.ColSource, func(int) (string, bool) { return types.UnknownSource, true })
	}
}
