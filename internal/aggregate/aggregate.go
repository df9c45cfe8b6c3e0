// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate computes the descriptive aggregates over a cleaned
// table: publications per year, journal frequency, and title vocabulary.
// Every function is a read-only reducer; none modifies its input.
//
// Top-N results break ties by first occurrence in row order.
//
// Title tokens keep letters and digits from every script, so "Café" counts
// as "café" rather than "caf".
package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// minWordLen is the shortest title token that is counted.
const minWordLen = 3

// DefaultStopwords are excluded from title word counts unless overridden.
var DefaultStopwords = []string{
	"the", "and", "of", "in", "a", "to", "for", "on", "with", "by",
	"an", "from", "study", "evidence", "analysis", "using",
}

// PublicationsByYear counts rows per year in ascending year order. Rows
// without a year are skipped. A table without a year column yields an
// empty result.
func PublicationsByYear(t *table.Table) []types.YearCount {
	out := []types.YearCount{}
	if !t.Has(types.ColYear) {
		return out
	}

	counts := make(map[int]int)
	for r := 0; r < t.Len(); r++ {
		if y, ok := yearOf(t, r); ok {
			counts[y]++
		}
	}

	for y, c := range counts {
		out = append(out, types.YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopJournals returns the n most frequent journals, most frequent first.
// n <= 0 means DefaultTopJournals. Rows with a null journal are skipped.
func TopJournals(t *table.Table, n int) []types.TermCount {
	if n <= 0 {
		n = types.DefaultTopJournals
	}
	if !t.Has(types.ColJournal) {
		return []types.TermCount{}
	}

	c := newCounter()
	for r := 0; r < t.Len(); r++ {
		if j, ok := t.Text(types.ColJournal, r); ok {
			c.add(j)
		}
	}
	return c.top(n)
}

// CommonTitleWords returns the n most frequent title words. Titles are
// tokenized with Tokenize; tokens of two runes or fewer and stopwords are
// dropped. An empty stopwords slice means DefaultStopwords. Stopwords
// match case-insensitively. n <= 0 means DefaultTopWords.
func CommonTitleWords(t *table.Table, n int, stopwords []string) []types.TermCount {
	if n <= 0 {
		n = types.DefaultTopWords
	}
	if !t.Has(types.ColTitle) {
		return []types.TermCount{}
	}
	stop := stopSet(stopwords)

	c := newCounter()
	for r := 0; r < t.Len(); r++ {
		title, ok := t.Text(types.ColTitle, r)
		if !ok {
			continue
		}
		for _, w := range Tokenize(title) {
			if utf8.RuneCountInString(w) < minWordLen {
				continue
			}
			if _, skip := stop[w]; skip {
				continue
			}
			c.add(w)
		}
	}
	return c.top(n)
}

// Tokenize replaces every rune that is not a letter, digit, or space with
// a space, lowercases the result, and splits it on whitespace.
func Tokenize(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Fields(strings.ToLower(cleaned))
}

func stopSet(words []string) map[string]struct{} {
	if len(words) == 0 {
		words = DefaultStopwords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

// yearOf reads the year cell of a row. Text years, as found in tables that
// did not pass through the cleaner, are parsed.
func yearOf(t *table.Table, row int) (int, bool) {
	if y, ok := t.Int(types.ColYear, row); ok {
		return int(y), true
	}
	if t.Kind(types.ColYear) != table.KindText {
		return 0, false
	}
	s, ok := t.Text(types.ColYear, row)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// counter tallies terms and remembers first-seen order for tie breaking.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(term string) {
	if _, seen := c.counts[term]; !seen {
		c.order = append(c.order, term)
	}
	c.counts[term]++
}

func (c *counter) top(n int) []types.TermCount {
	out := make([]types.TermCount, len(c.order))
	for i, term := range c.order {
		out[i] = types.TermCount{Term: term, Count: c.counts[term]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
