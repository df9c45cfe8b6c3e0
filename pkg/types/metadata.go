// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Column names of the metadata table. Raw files carry some of the input
// columns; the cleaner guarantees the derived ones.
const (
	ColTitle         = "title"
	ColAbstract      = "abstract"
	ColJournal       = "journal"
	ColPublishTime   = "publish_time"
	ColSourceX       = "source_x"
	ColSourceY       = "source_y"
	ColSource        = "source"
	ColYear          = "year"
	ColTitleWords    = "title_word_count"
	ColAbstractWords = "abstract_word_count"
)

// Fill values used by the cleaner for missing journal and source cells.
const (
	UnknownJournal = "Unknown"
	UnknownSource  = "unknown"
)

// YearCount is one bucket of the publications-by-year histogram.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// TermCount pairs a journal name or title word with its frequency.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// ColumnProfile describes one column in a diagnostic snapshot.
type ColumnProfile struct {
	// Name is the column header.
	Name string `json:"name" yaml:"name"`

	// Type is the column type label: text, integer, or date.
	Type string `json:"type" yaml:"type"`

	// Missing counts null cells, plus empty strings for text columns.
	Missing int `json:"missing" yaml:"missing"`
}

// Snapshot is the Explorer's read-only view of a table's shape.
type Snapshot struct {
	Rows    int             `json:"rows" yaml:"rows"`
	Cols    int             `json:"cols" yaml:"cols"`
	Columns []ColumnProfile `json:"columns" yaml:"columns"`
}

// ColumnNames returns the column names in table order.
func (s Snapshot) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Metrics are the headline numbers shown on the dashboards.
type Metrics struct {
	TotalPapers      int `json:"total_papers" yaml:"total_papers"`
	UniqueJournals   int `json:"unique_journals" yaml:"unique_journals"`
	AvgAbstractWords int `json:"avg_abstract_words" yaml:"avg_abstract_words"`
}

// YearRange is an inclusive range of publication years.
type YearRange struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Contains reports whether year lies within the range, bounds included.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}
