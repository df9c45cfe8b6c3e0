// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the dashboard in the terminal",
	Long: `Tui shows the dashboard metrics and charts in the terminal. The arrow
keys move the year range: left and right change the start year, down and up
change the end year. Press r to reset the range and q to quit.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := dashboardConfig(cmd)
	if err != nil {
		return err
	}
	data := loadConfig(cmd)

	store := dashboard.NewStore(data.Path, load.Options{MaxRows: data.MaxRows})
	defer store.Close()

	p := tea.NewProgram(tui.NewModel(store, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running terminal dashboard: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil {
		return explain(m.Err, data.Path)
	}
	return nil
}

func init() {
	addDashboardFlags(tuiCmd)

	rootCmd.AddCommand(tuiCmd)
}
