package tabular

import (
	"fmt"
	"strings"
)

// Dataset is the normalized in-memory table produced by ingestion.
// Headers are ordered and unique; every row has exactly len(Headers) cells,
// aligned positionally. Missing values are empty strings.
type Dataset struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Validate checks the structural invariants of the dataset.
func (d *Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Headers))
	for _, h := range d.Headers {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("blank column name")
		}
		if seen[h] {
			return fmt.Errorf("duplicate column name: %s", h)
		}
		seen[h] = true
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(d.Headers))
		}
	}
	return nil
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.Headers)
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns all cell values of a column in row order.
// Returns nil for an unknown column.
func (d *Dataset) Column(name string) []string {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values
}

// DistinctCount returns the number of distinct non-empty values in a column.
func (d *Dataset) DistinctCount(name string) int {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return 0
	}
	distinct := make(map[string]bool)
	for _, row := range d.Rows {
		if row[idx] != "" {
			distinct[row[idx]] = true
		}
	}
	return len(distinct)
}

// MissingFraction returns the fraction of rows with an empty value in a column.
func (d *Dataset) MissingFraction(name string) float64 {
	idx := d.ColumnIndex(name)
	if idx < 0 || len(d.Rows) == 0 {
		return 0
	}
	missing := 0
	for _, row := range d.Rows {
		if strings.TrimSpace(row[idx]) == "" {
			missing++
		}
	}
	return float64(missing) / float64(len(d.Rows))
}
