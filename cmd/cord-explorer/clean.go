// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/explore"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the metadata and optionally write it as Parquet",
	Long: `Clean loads the metadata file, parses publish_time into dates and
years, fills missing titles, abstracts and journals, derives word counts and
a single source column, and prints a snapshot of the cleaned table.

With --out the cleaned table is written as a Snappy-compressed Parquet file.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	raw, _, err := loadTable(cmd)
	if err != nil {
		return err
	}
	cleaned := clean.Clean(raw)
	raw.Release()
	defer cleaned.Release()

	explore.Print(os.Stdout, explore.Explore(cleaned), 0)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return nil
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := cleaned.WriteParquet(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", cleaned.Len(), out)
	return nil
}

func init() {
	cleanCmd.Flags().String("out", "", "write the cleaned table to this Parquet file")

	rootCmd.AddCommand(cleanCmd)
}
