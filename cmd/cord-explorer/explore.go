// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Print the shape, columns and missing values of the raw metadata",
	Long: `Explore loads the metadata file without cleaning it and prints a
diagnostic snapshot: row and column counts, column names and types, and the
number of missing values per column.`,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	t, _, err := loadTable(cmd)
	if err != nil {
		return err
	}
	defer t.Release()

	snap := explore.Explore(t)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	explore.Print(os.Stdout, snap, limit)
	return nil
}

func init() {
	exploreCmd.Flags().Bool("json", false, "output the snapshot as JSON")
	exploreCmd.Flags().Int("limit", 0, "list missing values for at most this many columns (0 = all)")

	rootCmd.AddCommand(exploreCmd)
}
