package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashgen/domain/insight"
	"dashgen/domain/tabular"
)

func salesDataset() (*tabular.Dataset, tabular.ColumnTypes) {
	ds := &tabular.Dataset{
		Headers: []string{"date", "revenue", "region", "units"},
		Rows: [][]string{
			{"2024-01-01", "100.5", "west", "10"},
			{"2024-01-02", "200.0", "east", "20"},
			{"2024-01-03", "150.25", "west", "15"},
		},
	}
	types := tabular.ColumnTypes{
		"date":    tabular.TypeDate,
		"revenue": tabular.TypeFloat,
		"region":  tabular.TypeString,
		"units":   tabular.TypeInteger,
	}
	return ds, types
}

func TestRecommendMetricsRevenue(t *testing.T) {
	ds, types := salesDataset()
	metrics := RecommendMetrics(ds, types)
	require.NotEmpty(t, metrics)

	// High-importance revenue metrics sort first.
	assert.Equal(t, "Total Revenue", metrics[0].Metric)
	assert.Equal(t, insight.ImportanceHigh, metrics[0].Importance)
	assert.Equal(t, insight.CardCurrency, metrics[0].CardType)
	assert.Equal(t, "SUM(revenue)", metrics[0].Calculation)

	assert.Equal(t, "Revenue Growth", metrics[1].Metric)
	assert.Equal(t, insight.CardPercentage, metrics[1].CardType)
	assert.Equal(t, []string{"revenue", "date"}, metrics[1].Columns)
}

func TestRecommendMetricsTotalRecordsAndAverages(t *testing.T) {
	ds, types := salesDataset()
	metrics := RecommendMetrics(ds, types)

	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Metric
	}
	assert.Contains(t, names, "Total Records")
	assert.Contains(t, names, "Average Units")
	// Revenue already has a sum KPI, so no average duplicates it.
	assert.NotContains(t, names, "Average Revenue")
}

func TestRecommendMetricsAverageCap(t *testing.T) {
	ds := &tabular.Dataset{
		Headers: []string{"a", "b", "c", "d", "e"},
		Rows:    [][]string{{"1", "2", "3", "4", "5"}},
	}
	types := tabular.ColumnTypes{
		"a": tabular.TypeInteger, "b": tabular.TypeInteger,
		"c": tabular.TypeInteger, "d": tabular.TypeInteger,
		"e": tabular.TypeInteger,
	}

	averages := 0
	for _, m := range RecommendMetrics(ds, types) {
		if m.CardType == insight.CardNumber && m.Metric != "Total Records" {
			averages++
		}
	}
	assert.Equal(t, averageKPILimit, averages)
}

func TestRecommendMetricsConversion(t *testing.T) {
	ds := &tabular.Dataset{
		Headers: []string{"visits", "conversion_flag"},
		Rows:    [][]string{{"10", "1"}},
	}
	types := tabular.ColumnTypes{
		"visits":          tabular.TypeInteger,
		"conversion_flag": tabular.TypeInteger,
	}

	metrics := RecommendMetrics(ds, types)
	require.NotEmpty(t, metrics)
	assert.Equal(t, "Conversion Rate", metrics[0].Metric)
	assert.Equal(t, insight.ImportanceHigh, metrics[0].Importance)
}

func TestRecommendMetricsSortedByImportance(t *testing.T) {
	ds, types := salesDataset()
	metrics := RecommendMetrics(ds, types)

	for i := 1; i < len(metrics); i++ {
		assert.GreaterOrEqual(t, metrics[i-1].Importance.Weight(), metrics[i].Importance.Weight())
	}
}
