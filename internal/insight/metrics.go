package insight

import (
	"fmt"
	"sort"
	"strings"

	"dashgen/domain/insight"
	"dashgen/domain/tabular"
)

// averageKPILimit caps how many average-value KPIs are added for numeric
// columns not already covered by a revenue metric.
const averageKPILimit = 3

var (
	revenueKeywords    = []string{"revenue", "sales", "income", "earnings"}
	conversionKeywords = []string{"conversion", "success", "completed"}
)

// RecommendMetrics proposes KPI cards for the dataset. The result is sorted
// by importance descending; within equal importance, construction order is
// preserved.
func RecommendMetrics(ds *tabular.Dataset, types tabular.ColumnTypes) []insight.KPIRecommendation {
	var metrics []insight.KPIRecommendation

	numericColumns := types.NumericColumns(ds.Headers)
	dateColumns := types.DateColumns(ds.Headers)
	revenueColumns := columnsMatching(ds.Headers, revenueKeywords)

	for _, col := range revenueColumns {
		metrics = append(metrics, insight.KPIRecommendation{
			Metric:      fmt.Sprintf("Total %s", humanize(col)),
			Description: fmt.Sprintf("Sum of all %s values", strings.ToLower(col)),
			Calculation: fmt.Sprintf("SUM(%s)", col),
			Importance:  insight.ImportanceHigh,
			CardType:    insight.CardCurrency,
			Columns:     []string{col},
		})

		if len(dateColumns) > 0 {
			metrics = append(metrics, insight.KPIRecommendation{
				Metric:      fmt.Sprintf("%s Growth", humanize(col)),
				Description: fmt.Sprintf("Month-over-month growth in %s", strings.ToLower(col)),
				Calculation: fmt.Sprintf("((Current Month %s - Previous Month %s) / Previous Month %s) * 100", col, col, col),
				Importance:  insight.ImportanceHigh,
				CardType:    insight.CardPercentage,
				Columns:     []string{col, dateColumns[0]},
			})
		}
	}

	metrics = append(metrics, insight.KPIRecommendation{
		Metric:      "Total Records",
		Description: "Total number of data entries",
		Calculation: "COUNT(*)",
		Importance:  insight.ImportanceMedium,
		CardType:    insight.CardNumber,
		Columns:     []string{},
	})

	added := 0
	for _, col := range numericColumns {
		if contains(revenueColumns, col) {
			continue
		}
		if added >= averageKPILimit {
			break
		}
		metrics = append(metrics, insight.KPIRecommendation{
			Metric:      fmt.Sprintf("Average %s", humanize(col)),
			Description: fmt.Sprintf("Mean value of %s", strings.ToLower(col)),
			Calculation: fmt.Sprintf("AVG(%s)", col),
			Importance:  insight.ImportanceMedium,
			CardType:    insight.CardNumber,
			Columns:     []string{col},
		})
		added++
	}

	if conversionColumns := columnsMatching(ds.Headers, conversionKeywords); len(conversionColumns) > 0 {
		metrics = append(metrics, insight.KPIRecommendation{
			Metric:      "Conversion Rate",
			Description: "Percentage of successful conversions",
			Calculation: "(SUM(conversions) / COUNT(*)) * 100",
			Importance:  insight.ImportanceHigh,
			CardType:    insight.CardPercentage,
			Columns:     conversionColumns,
		})
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Importance.Weight() > metrics[j].Importance.Weight()
	})
	return metrics
}
