package insight

import (
	"fmt"

	"dashgen/domain/tabular"
)

const (
	// missingWarningThreshold: columns with more than this fraction of empty
	// values get a warning.
	missingWarningThreshold = 0.10

	// highCardinalityRatio: string columns whose distinct count exceeds this
	// fraction of the row count get a grouping suggestion.
	highCardinalityRatio = 0.8

	// smallDatasetRowLimit: below this many rows, aggregate statistics are
	// not reliable.
	smallDatasetRowLimit = 10
)

// AuditQuality flags missing data, high-cardinality columns, and tiny
// datasets. All warnings are advisory; none aborts the analysis.
func AuditQuality(ds *tabular.Dataset, types tabular.ColumnTypes) []string {
	var issues []string

	for _, header := range ds.Headers {
		missing := ds.MissingFraction(header)
		if missing > missingWarningThreshold {
			issues = append(issues, fmt.Sprintf("%s has %.1f%% missing values", header, missing*100))
		}
	}

	for _, col := range types.CategoryColumns(ds.Headers) {
		distinct := ds.DistinctCount(col)
		if float64(distinct) > float64(ds.RowCount())*highCardinalityRatio {
			issues = append(issues, fmt.Sprintf("%s has very high cardinality (%d unique values) - consider grouping", col, distinct))
		}
	}

	if ds.RowCount() < smallDatasetRowLimit {
		issues = append(issues, "Dataset is very small - some statistical analyses may not be reliable")
	}

	return issues
}
