// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the terminal version of the dashboard. It shows the same
// filter, metrics and charts as the web page, driven by the arrow keys.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// State is the loading state of the model.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Model is the terminal dashboard.
type Model struct {
	store *dashboard.Store
	cfg   types.DashboardConfig

	State State
	Err   error

	// From and To are the requested year range; Current holds the result.
	From    int
	To      int
	Current dashboard.View

	width int
}

// NewModel returns a model reading from store.
func NewModel(store *dashboard.Store, cfg types.DashboardConfig) Model {
	return Model{store: store, cfg: cfg.WithDefaults(), State: StateLoading}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadView(m.store, m.cfg, 0, 0)
}

// loadView computes the dashboard view off the UI goroutine.
func loadView(store *dashboard.Store, cfg types.DashboardConfig, from, to int) tea.Cmd {
	return func() tea.Msg {
		var v dashboard.View
		err := store.View(func(t *table.Table, source string) error {
			v = dashboard.NewView(t, from, to, cfg)
			v.Source = source
			return nil
		})
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ViewMsg{View: v}
	}
}
