// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults shared by the CLI, the report, and the dashboards.
const (
	DefaultDataPath    = "metadata.csv"
	DefaultTopJournals = 20
	DefaultTopWords    = 50
	DefaultReportRows  = 50000
	DefaultAddr        = ":8501"
	DefaultPreviewRows = 20
	DefaultCloudWords  = 100
	DefaultJournalBars = 15
)

// LoadConfig controls how the metadata file is read.
type LoadConfig struct {
	// Path is the CSV file to read (default "metadata.csv").
	Path string `json:"path" yaml:"path"`

	// MaxRows caps the number of data rows read; 0 reads them all.
	MaxRows int `json:"max_rows" yaml:"max_rows"`
}

// AnalysisConfig holds the aggregator parameters.
type AnalysisConfig struct {
	// TopJournals is the number of journals to rank (default 20).
	TopJournals int `json:"top_journals" yaml:"top_journals"`

	// TopWords is the number of title words to rank (default 50).
	TopWords int `json:"top_words" yaml:"top_words"`

	// Stopwords replaces the built-in stopword list when non-empty.
	Stopwords []string `json:"stopwords,omitempty" yaml:"stopwords,omitempty"`
}

// ReportFormat selects the export encoding of a report.
type ReportFormat string

const (
	FormatYAML ReportFormat = "yaml"
	FormatJSON ReportFormat = "json"
)

// ReportConfig holds settings for the scripted report.
type ReportConfig struct {
	AnalysisConfig `yaml:",inline"`

	// ExportPath, when set, receives the report results as a file.
	ExportPath string `json:"export_path,omitempty" yaml:"export_path,omitempty"`

	// ExportFormat selects yaml or json for ExportPath.
	ExportFormat ReportFormat `json:"export_format" yaml:"export_format"`
}

// DashboardConfig holds settings for the web and terminal dashboards.
type DashboardConfig struct {
	AnalysisConfig `yaml:",inline"`

	// Addr is the listen address of the web dashboard (default ":8501").
	Addr string `json:"addr" yaml:"addr"`

	// PreviewRows is the number of filtered rows shown in the preview table.
	PreviewRows int `json:"preview_rows" yaml:"preview_rows"`

	// CloudWords is the number of title words fed to the word cloud.
	CloudWords int `json:"cloud_words" yaml:"cloud_words"`

	// JournalBars is the number of journals in the horizontal bar chart.
	JournalBars int `json:"journal_bars" yaml:"journal_bars"`
}

// WithDefaults fills zero fields with the package defaults.
func (c DashboardConfig) WithDefaults() DashboardConfig {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.PreviewRows <= 0 {
		c.PreviewRows = DefaultPreviewRows
	}
	if c.CloudWords <= 0 {
		c.CloudWords = DefaultCloudWords
	}
	if c.JournalBars <= 0 {
		c.JournalBars = DefaultJournalBars
	}
	return c
}
