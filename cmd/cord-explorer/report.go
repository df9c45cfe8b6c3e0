// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cord-explorer/internal/report"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the whole pipeline and print the analysis",
	Long: `Report loads a sample of the metadata (the first 50000 rows unless
--max-rows says otherwise), prints diagnostics and a sample of parsed years,
then a bar chart of publications per year, the top journals, and the most
common title words.

Use --export to also write the results as YAML or JSON.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	analysis, err := analysisConfig(cmd)
	if err != nil {
		return err
	}
	cfg := types.ReportConfig{
		AnalysisConfig: analysis,
		ExportPath:     stringSetting(cmd, "export", "export"),
		ExportFormat:   types.ReportFormat(stringSetting(cmd, "format", "format")),
	}

	// The report samples rows unless --max-rows is set explicitly.
	if !cmd.Flags().Changed("max-rows") && !viper.IsSet("max_rows") {
		if err := cmd.Flags().Set("max-rows", fmt.Sprint(types.DefaultReportRows)); err != nil {
			return err
		}
	}

	raw, loaded, err := loadTable(cmd)
	if err != nil {
		return err
	}
	defer raw.Release()

	r := report.Build(raw, loaded.Path, cfg)
	report.Render(os.Stdout, r)

	if cfg.ExportPath != "" {
		if err := report.Export(cfg.ExportPath, cfg.ExportFormat, r); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", cfg.ExportPath)
	}
	return nil
}

func init() {
	reportCmd.Flags().Int("top-journals", 10, "number of journals to list")
	reportCmd.Flags().Int("top-words", 30, "number of title words to list")
	reportCmd.Flags().String("export", "", "also write the results to this file")
	reportCmd.Flags().String("format", "", "export format: yaml or json (default: from the file extension)")

	rootCmd.AddCommand(reportCmd)
}
