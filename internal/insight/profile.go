package insight

import (
	"strconv"

	"github.com/montanaflynn/stats"

	"dashgen/domain/tabular"
)

// ColumnProfile summarizes one numeric column.
type ColumnProfile struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// ProfileNumericColumns computes basic summary statistics for every numeric
// column. Cells that fail to parse are skipped; columns with no parseable
// values are omitted.
func ProfileNumericColumns(ds *tabular.Dataset, types tabular.ColumnTypes) []ColumnProfile {
	var profiles []ColumnProfile
	for _, col := range types.NumericColumns(ds.Headers) {
		values := numericValues(ds, col)
		if len(values) == 0 {
			continue
		}

		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		min, err := stats.Min(values)
		if err != nil {
			continue
		}
		max, err := stats.Max(values)
		if err != nil {
			continue
		}
		median, err := stats.Median(values)
		if err != nil {
			continue
		}

		profiles = append(profiles, ColumnProfile{
			Column: col,
			Count:  len(values),
			Mean:   mean,
			Min:    min,
			Max:    max,
			Median: median,
		})
	}
	return profiles
}

func numericValues(ds *tabular.Dataset, column string) []float64 {
	idx := ds.ColumnIndex(column)
	if idx < 0 {
		return nil
	}
	var values []float64
	for _, row := range ds.Rows {
		if row[idx] == "" {
			continue
		}
		if v, err := strconv.ParseFloat(row[idx], 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}
