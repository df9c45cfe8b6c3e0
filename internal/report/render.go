// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/cord-explorer/internal/explore"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

const (
	colorPrimary = "#7D56F4"
	colorBar     = "#04B575"
	colorInfo    = "#626262"

	barWidth       = 40
	missingListing = 10
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBar))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))
)

// Render writes the report in the order of the scripted run: diagnostics,
// sampled years, the publications chart, top journals, and title words.
func Render(w io.Writer, r Report) {
	fmt.Fprintln(w, headingStyle.Render("Diagnostics"))
	if r.Source != "" {
		fmt.Fprintln(w, infoStyle.Render("source: "+r.Source))
	}
	explore.Print(w, r.Snapshot, missingListing)
	fmt.Fprintf(w, "Years: %v\n\n", r.Years)

	fmt.Fprintln(w, headingStyle.Render("Publications by Year"))
	fmt.Fprint(w, BarChart(r.Publications, barWidth))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Top journals:"))
	fmt.Fprint(w, Ranking(r.TopJournals))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Common title words:"))
	fmt.Fprint(w, Ranking(r.TitleWords))
}

// BarChart draws one horizontal bar per year, scaled so the largest count
// spans width cells.
func BarChart(counts []types.YearCount, width int) string {
	if len(counts) == 0 {
		return infoStyle.Render("(no dated records)") + "\n"
	}
	peak := 0
	for _, c := range counts {
		peak = max(peak, c.Count)
	}

	var b strings.Builder
	for _, c := range counts {
		n := 0
		if peak > 0 {
			n = c.Count * width / peak
		}
		if n == 0 && c.Count > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%d %s %d\n", c.Year, barStyle.Render(strings.Repeat("█", n)), c.Count)
	}
	return b.String()
}

// maxTermWidth caps the term column in terminal cells.
const maxTermWidth = 60

// Ranking formats ranked terms as a numbered two-column listing.
func Ranking(terms []types.TermCount) string {
	if len(terms) == 0 {
		return infoStyle.Render("(none)") + "\n"
	}
	wide := 0
	for _, t := range terms {
		wide = max(wide, runewidth.StringWidth(t.Term))
	}
	wide = min(wide, maxTermWidth)

	var b strings.Builder
	for i, t := range terms {
		term := runewidth.FillRight(runewidth.Truncate(t.Term, wide, "..."), wide)
		fmt.Fprintf(&b, "%3d. %s  %d\n", i+1, term, t.Count)
	}
	return b.String()
}
