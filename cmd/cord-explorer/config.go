// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cord-explorer/internal/load"
	"github.com/pdiddy/cord-explorer/internal/table"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Settings resolve in order: an explicitly set flag, then the viper key
// (config file or CORD_EXPLORER_* environment), then the flag default.

func stringSetting(cmd *cobra.Command, flag, key string) string {
	v, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	v, _ := cmd.Flags().GetInt(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return v
}

// loadConfig builds the loader settings from flags and viper.
func loadConfig(cmd *cobra.Command) types.LoadConfig {
	return types.LoadConfig{
		Path:    stringSetting(cmd, "data", "data"),
		MaxRows: intSetting(cmd, "max-rows", "max_rows"),
	}
}

// analysisConfig builds the aggregator settings. A stopwords file replaces
// the stopwords key, which in turn replaces the built-in list.
func analysisConfig(cmd *cobra.Command) (types.AnalysisConfig, error) {
	cfg := types.AnalysisConfig{
		TopJournals: intSetting(cmd, "top-journals", "top_journals"),
		TopWords:    intSetting(cmd, "top-words", "top_words"),
		Stopwords:   viper.GetStringSlice("stopwords"),
	}
	if path := stringSetting(cmd, "stopwords-file", "stopwords_file"); path != "" {
		words, err := readStopwords(path)
		if err != nil {
			return cfg, err
		}
		cfg.Stopwords = words
	}
	return cfg, nil
}

// readStopwords reads a YAML list of words.
func readStopwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stopwords file: %w", err)
	}
	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parsing stopwords file %s: %w", path, err)
	}
	return words, nil
}

// loadTable reads the configured data file, with a progress bar when
// stderr is a terminal.
func loadTable(cmd *cobra.Command) (*table.Table, types.LoadConfig, error) {
	cfg := loadConfig(cmd)
	opts, done := withProgress(load.Options{MaxRows: cfg.MaxRows}, cfg.Path)
	t, err := load.Load(cfg.Path, opts)
	done()
	if err != nil {
		return nil, cfg, explain(err, cfg.Path)
	}
	return t, cfg, nil
}

// explain adds the action a user can take to a load failure.
func explain(err error, path string) error {
	if errors.Is(err, load.ErrMissingFile) {
		return fmt.Errorf("%w; pass --data with the path to metadata.csv", err)
	}
	if load.IsMalformed(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return err
}
