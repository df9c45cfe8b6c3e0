// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case ViewMsg:
		m.State = StateReady
		m.Err = nil
		m.Current = msg.View
		m.From, m.To = msg.View.Range.From, msg.View.Range.To
		return m, nil
	case ErrorMsg:
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	return m, nil
}

// handleKeyPress moves the year range: left/right shift the start year,
// down/up shift the end year, r restores the default range.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	if m.State != StateReady {
		return m, nil
	}

	r := types.YearRange{From: m.From, To: m.To}
	switch msg.String() {
	case "left", "h":
		r.From = m.clamp(r.From - 1)
	case "right", "l":
		r.From = min(m.clamp(r.From+1), r.To)
	case "down", "j":
		r.To = max(m.clamp(r.To-1), r.From)
	case "up", "k":
		r.To = m.clamp(r.To + 1)
	case "r":
		r = dashboard.SelectRange(m.Current.Bounds, 0, 0)
	default:
		return m, nil
	}

	if r.From == m.From && r.To == m.To {
		return m, nil
	}
	m.From, m.To = r.From, r.To
	return m, loadView(m.store, m.cfg, r.From, r.To)
}

// clamp keeps a year inside the dataset bounds.
func (m Model) clamp(year int) int {
	return min(max(year, m.Current.Bounds.From), m.Current.Bounds.To)
}
