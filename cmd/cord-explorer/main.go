// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cord-explorer CLI.
// The pipeline stages are subcommands: explore, clean, report, serve
// and tui.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cord-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "cord-explorer",
	Short: "Explore the CORD-19 metadata file",
	Long: `cord-explorer loads the CORD-19 metadata.csv file, reports on its shape
and missing values, cleans it into typed columns, and aggregates publications
per year, the most frequent journals, and the most common title words.

Results are printed as a script-style report or browsed interactively in a
web dashboard (serve) or a terminal dashboard (tui).`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cord-explorer.yaml or ~/.config/cord-explorer/cord-explorer.yaml)")
	rootCmd.PersistentFlags().String("data", types.DefaultDataPath, "path to the metadata CSV file")
	rootCmd.PersistentFlags().Int("max-rows", 0, "read at most this many data rows (0 = all)")
	rootCmd.PersistentFlags().String("stopwords-file", "", "YAML list of title stopwords replacing the built-in list")
}

func initConfig() {
	// .env values become environment variables before viper reads them.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded .env")
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cord-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cord-explorer"))
		}
	}

	viper.SetEnvPrefix("CORD_EXPLORER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
