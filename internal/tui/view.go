// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/report"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

const (
	defaultWidth = 80
	cloudWords   = 20
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("CORD-19 Data Explorer"))
	b.WriteString("\n")

	switch m.State {
	case StateLoading:
		b.WriteString(InfoStyle.Render("Loading metadata..."))
		b.WriteString("\n\n")
	case StateError:
		b.WriteString(ErrorStyle.Render(errorText(m.Err, m.store)))
		b.WriteString("\n\n")
	case StateReady:
		b.WriteString(m.dashboardText())
	}

	b.WriteString(InfoStyle.Render("←/→ start year | ↓/↑ end year | r reset | q quit"))
	return b.String()
}

func (m Model) dashboardText() string {
	v := m.Current
	var b strings.Builder

	b.WriteString(InfoStyle.Render(fmt.Sprintf("source: %s", v.Source)))
	b.WriteString("\n")
	b.WriteString(HighlightStyle.Render(fmt.Sprintf("%d-%d", v.Range.From, v.Range.To)))
	b.WriteString(InfoStyle.Render(fmt.Sprintf("  (data spans %d-%d)", v.Bounds.From, v.Bounds.To)))
	b.WriteString("\n\n")

	b.WriteString(BoxStyle.Render(fmt.Sprintf("Total papers: %d   Unique journals: %d   Avg abstract words: %d",
		v.Metrics.TotalPapers, v.Metrics.UniqueJournals, v.Metrics.AvgAbstractWords)))
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render("Publications by Year"))
	b.WriteString("\n")
	b.WriteString(report.BarChart(v.Years, m.barWidth()))
	b.WriteString("\n")

	b.WriteString(TitleStyle.Render("Top Journals"))
	b.WriteString("\n")
	b.WriteString(report.Ranking(descending(v.Journals)))
	b.WriteString("\n")

	b.WriteString(TitleStyle.Render("Title Words"))
	b.WriteString("\n")
	b.WriteString(wordLine(v.Words, cloudWords))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) barWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	return max(w-20, 10)
}

// errorText turns load failures into a prompt the user can act on.
func errorText(err error, store *dashboard.Store) string {
	if err == nil {
		return "unknown error"
	}
	if store != nil && errors.Is(err, load.ErrMissingFile) {
		return dashboard.MissingMessage(store.Path())
	}
	return "Error: " + err.Error()
}

func descending(terms []types.TermCount) []types.TermCount {
	out := make([]types.TermCount, len(terms))
	for i, t := range terms {
		out[len(terms)-1-i] = t
	}
	return out
}

// wordLine prints the top words with counts on wrapped lines.
func wordLine(words []types.TermCount, n int) string {
	if len(words) == 0 {
		return InfoStyle.Render("(none)")
	}
	parts := make([]string, 0, min(n, len(words)))
	for _, w := range words[:min(n, len(words))] {
		parts = append(parts, fmt.Sprintf("%s(%d)", BarStyle.Render(w.Term), w.Count))
	}
	return strings.Join(parts, " ")
}
