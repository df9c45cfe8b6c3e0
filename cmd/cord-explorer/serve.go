// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	Long: `Serve starts a web dashboard over the cleaned metadata. The page has a
year-range filter, summary metrics, bar charts of publications per year and
top journals, a word cloud of title words, and a preview of the filtered rows.

When the data file does not exist the page offers a CSV upload instead.
JSON endpoints live under /api.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := dashboardConfig(cmd)
	if err != nil {
		return err
	}
	data := loadConfig(cmd)

	var log io.Writer
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log = os.Stderr
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store := dashboard.NewStore(data.Path, load.Options{MaxRows: data.MaxRows})
	defer store.Close()

	srv, err := dashboard.New(store, cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Serving dashboard for %s on %s\n", data.Path, cfg.Addr)
	return srv.Run(ctx)
}

// dashboardConfig builds the dashboard settings from flags and viper.
func dashboardConfig(cmd *cobra.Command) (types.DashboardConfig, error) {
	analysis, err := analysisConfig(cmd)
	if err != nil {
		return types.DashboardConfig{}, err
	}
	cfg := types.DashboardConfig{
		AnalysisConfig: analysis,
		Addr:           stringSetting(cmd, "addr", "addr"),
		PreviewRows:    intSetting(cmd, "preview-rows", "preview_rows"),
		CloudWords:     intSetting(cmd, "cloud-words", "cloud_words"),
		JournalBars:    intSetting(cmd, "journal-bars", "journal_bars"),
	}
	return cfg.WithDefaults(), nil
}

func init() {
	addDashboardFlags(serveCmd)
	serveCmd.Flags().String("addr", types.DefaultAddr, "listen address")
	serveCmd.Flags().Bool("verbose", false, "log every request to stderr")

	rootCmd.AddCommand(serveCmd)
}

// addDashboardFlags registers the flags shared by serve and tui.
func addDashboardFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top-journals", types.DefaultTopJournals, "number of journals returned by /api/journals")
	cmd.Flags().Int("top-words", types.DefaultTopWords, "number of title words returned by /api/words")
	cmd.Flags().Int("preview-rows", types.DefaultPreviewRows, "rows in the preview table")
	cmd.Flags().Int("cloud-words", types.DefaultCloudWords, "title words in the word cloud")
	cmd.Flags().Int("journal-bars", types.DefaultJournalBars, "journals in the bar chart")
}
