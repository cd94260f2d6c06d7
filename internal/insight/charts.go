package insight

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"dashgen/domain/insight"
	"dashgen/domain/tabular"
)

const (
	// basePriority is the rank of the first candidate; each later candidate
	// ranks one lower, so rule order is the tie-break.
	basePriority = 10

	// pieCategoryLimit is the distinct-value boundary between a pie chart
	// and a "top N" bar chart for the first category column.
	pieCategoryLimit = 8

	// lineChartLimit caps how many numeric columns get a time-series chart.
	lineChartLimit = 2
)

// RecommendCharts proposes ranked visualizations. Candidates are generated
// in rule order, then priorities are assigned once (basePriority minus the
// candidate's index) and the list is sorted by priority descending.
func RecommendCharts(ds *tabular.Dataset, types tabular.ColumnTypes) []insight.ChartRecommendation {
	numericColumns := types.NumericColumns(ds.Headers)
	dateColumns := types.DateColumns(ds.Headers)
	categoryColumns := types.CategoryColumns(ds.Headers)

	var charts []insight.ChartRecommendation

	// Time series: one line chart per numeric column, capped.
	if len(dateColumns) > 0 && len(numericColumns) > 0 {
		for i, numCol := range numericColumns {
			if i >= lineChartLimit {
				break
			}
			charts = append(charts, insight.ChartRecommendation{
				Type:        insight.ChartLine,
				Title:       fmt.Sprintf("%s Trend Over Time", humanize(numCol)),
				Description: fmt.Sprintf("Track %s changes over time", strings.ToLower(numCol)),
				XAxis:       dateColumns[0],
				YAxis:       []string{numCol},
				Aggregation: aggregationFor(numCol),
				Reasoning:   "Time series data is best visualized with line charts to show trends",
			})
		}
	}

	// Category distribution: pie for few categories, bar for many.
	if len(categoryColumns) > 0 && len(numericColumns) > 0 {
		topCategory := categoryColumns[0]
		distinct := ds.DistinctCount(topCategory)

		if distinct <= pieCategoryLimit {
			charts = append(charts, insight.ChartRecommendation{
				Type:        insight.ChartPie,
				Title:       fmt.Sprintf("%s by %s", humanize(numericColumns[0]), humanize(topCategory)),
				Description: fmt.Sprintf("Distribution of %s across %s categories", strings.ToLower(numericColumns[0]), strings.ToLower(topCategory)),
				XAxis:       topCategory,
				YAxis:       []string{numericColumns[0]},
				Aggregation: aggregationFor(numericColumns[0]),
				Reasoning:   "Pie charts work well for showing distribution across a small number of categories",
			})
		} else {
			charts = append(charts, insight.ChartRecommendation{
				Type:        insight.ChartBar,
				Title:       fmt.Sprintf("Top %s by %s", humanize(topCategory), humanize(numericColumns[0])),
				Description: fmt.Sprintf("Compare %s across %s", strings.ToLower(numericColumns[0]), strings.ToLower(topCategory)),
				XAxis:       topCategory,
				YAxis:       []string{numericColumns[0]},
				Aggregation: aggregationFor(numericColumns[0]),
				Reasoning:   "Bar charts are ideal for comparing values across many categories",
			})
		}
	}

	// Correlation between the first two numeric columns.
	if len(numericColumns) >= 2 {
		charts = append(charts, insight.ChartRecommendation{
			Type:        insight.ChartScatter,
			Title:       fmt.Sprintf("%s vs %s", humanize(numericColumns[0]), humanize(numericColumns[1])),
			Description: fmt.Sprintf("Explore correlation between %s and %s", strings.ToLower(numericColumns[0]), strings.ToLower(numericColumns[1])),
			XAxis:       numericColumns[0],
			YAxis:       []string{numericColumns[1]},
			Aggregation: insight.AggSum,
			Reasoning:   scatterReasoning(ds, numericColumns[0], numericColumns[1]),
		})
	}

	// Distribution of the first numeric column.
	if len(numericColumns) > 0 {
		charts = append(charts, insight.ChartRecommendation{
			Type:        insight.ChartHistogram,
			Title:       fmt.Sprintf("%s Distribution", humanize(numericColumns[0])),
			Description: fmt.Sprintf("Show the distribution pattern of %s values", strings.ToLower(numericColumns[0])),
			XAxis:       numericColumns[0],
			YAxis:       []string{"frequency"},
			Aggregation: insight.AggCount,
			Reasoning:   "Histograms help understand the distribution and patterns in numeric data",
		})
	}

	// Multi-dimensional grouped comparison.
	if len(categoryColumns) >= 2 && len(numericColumns) > 0 {
		charts = append(charts, insight.ChartRecommendation{
			Type:        insight.ChartBar,
			Title:       fmt.Sprintf("%s by %s and %s", humanize(numericColumns[0]), humanize(categoryColumns[0]), humanize(categoryColumns[1])),
			Description: fmt.Sprintf("Multi-dimensional analysis of %s", strings.ToLower(numericColumns[0])),
			XAxis:       categoryColumns[0],
			YAxis:       []string{numericColumns[0]},
			GroupBy:     categoryColumns[1],
			Aggregation: aggregationFor(numericColumns[0]),
			Reasoning:   "Grouped bar charts show relationships across multiple categorical dimensions",
		})
	}

	for i := range charts {
		charts[i].Priority = basePriority - i
	}
	sort.SliceStable(charts, func(i, j int) bool {
		return charts[i].Priority > charts[j].Priority
	})
	return charts
}

// aggregationFor picks a default roll-up for a numeric column by name.
func aggregationFor(column string) insight.Aggregation {
	lowered := strings.ToLower(column)
	switch {
	case strings.Contains(lowered, "revenue"), strings.Contains(lowered, "sales"), strings.Contains(lowered, "total"):
		return insight.AggSum
	case strings.Contains(lowered, "rate"), strings.Contains(lowered, "average"), strings.Contains(lowered, "score"):
		return insight.AggAvg
	case strings.Contains(lowered, "count"), strings.Contains(lowered, "number"):
		return insight.AggCount
	default:
		return insight.AggSum
	}
}

// scatterReasoning enriches the scatter chart rationale with the observed
// Pearson correlation when both columns have enough paired values.
func scatterReasoning(ds *tabular.Dataset, xCol, yCol string) string {
	base := "Scatter plots reveal relationships and correlations between numeric variables"

	xs, ys := pairedValues(ds, xCol, yCol)
	if len(xs) < 3 {
		return base
	}
	r := stat.Correlation(xs, ys, nil)
	if r != r { // NaN when a column is constant
		return base
	}
	return fmt.Sprintf("%s (observed correlation r=%.2f)", base, r)
}

// pairedValues extracts rows where both columns parse as numbers.
func pairedValues(ds *tabular.Dataset, xCol, yCol string) ([]float64, []float64) {
	xIdx, yIdx := ds.ColumnIndex(xCol), ds.ColumnIndex(yCol)
	if xIdx < 0 || yIdx < 0 {
		return nil, nil
	}
	var xs, ys []float64
	for _, row := range ds.Rows {
		x, errX := strconv.ParseFloat(row[xIdx], 64)
		y, errY := strconv.ParseFloat(row[yIdx], 64)
		if errX != nil || errY != nil {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
