package insight

import (
	"fmt"
	"strings"

	"dashgen/domain/insight"
	"dashgen/domain/tabular"
	"dashgen/internal/logging"
)

// richNumericThreshold: more numeric columns than this earns an advanced
// analytics note in the insights.
const richNumericThreshold = 5

// Engine runs every analyzer over a typed dataset and assembles the
// analytical plan. The analyzers are pure and run sequentially; the engine
// holds no per-request state.
type Engine struct {
	logger *logging.Logger
}

// NewEngine creates an analysis engine.
func NewEngine(logger *logging.Logger) *Engine {
	return &Engine{logger: logger.WithComponent("Analysis")}
}

// Analysis is the full output of one engine run.
type Analysis struct {
	Insights insight.DataInsights `json:"insights"`
	Profiles []ColumnProfile      `json:"profiles"`
	Summary  string               `json:"summary"`
}

// Analyze produces the complete analytical plan for a typed dataset.
// The returned value is owned by the caller and never mutated afterwards.
func (e *Engine) Analyze(ds *tabular.Dataset, types tabular.ColumnTypes) *Analysis {
	businessContext := ClassifyDomain(ds.Headers)
	metrics := RecommendMetrics(ds, types)
	charts := RecommendCharts(ds, types)
	structure := PlanStructure(ds, types)
	issues := AuditQuality(ds, types)
	profiles := ProfileNumericColumns(ds, types)

	e.logger.Info("analyzed dataset: context=%s kpis=%d charts=%d issues=%d",
		businessContext, len(metrics), len(charts), len(issues))

	return &Analysis{
		Insights: insight.DataInsights{
			BusinessContext:      businessContext,
			KeyMetrics:           metrics,
			ChartRecommendations: charts,
			AnalyticalInsights:   analyticalInsights(ds, types, businessContext),
			DashboardStructure:   structure,
			DataQualityIssues:    issues,
		},
		Profiles: profiles,
		Summary:  Summarize(ds, types),
	}
}

// analyticalInsights produces the free-text observations about data volume,
// type distribution, and domain-specific analysis opportunities.
func analyticalInsights(ds *tabular.Dataset, types tabular.ColumnTypes, businessContext string) []string {
	var insights []string

	insights = append(insights, fmt.Sprintf("Dataset contains %d records across %d dimensions",
		ds.RowCount(), ds.ColumnCount()))

	counts := types.CountByType()
	numericCount := counts[tabular.TypeInteger] + counts[tabular.TypeFloat]
	if numericCount > 0 {
		insights = append(insights, fmt.Sprintf("%d numeric columns available for quantitative analysis", numericCount))
	}
	if counts[tabular.TypeDate] > 0 {
		insights = append(insights, fmt.Sprintf("%d date columns enable time-series and trend analysis", counts[tabular.TypeDate]))
	}
	if counts[tabular.TypeString] > 0 {
		insights = append(insights, fmt.Sprintf("%d categorical columns provide grouping and segmentation opportunities", counts[tabular.TypeString]))
	}

	switch businessContext {
	case "sales-commerce":
		insights = append(insights, "Sales data detected - focus on revenue trends, customer segments, and product performance")
	case "web-analytics":
		insights = append(insights, "Web analytics data - emphasize user behavior, conversion funnels, and traffic sources")
	case "human-resources":
		insights = append(insights, "HR data identified - highlight workforce metrics, performance trends, and departmental analysis")
	case "marketing":
		insights = append(insights, "Marketing data found - prioritize campaign performance, ROI analysis, and audience insights")
	default:
		insights = append(insights, "General business data - recommend comprehensive overview with key metrics and trends")
	}

	if numericCount > richNumericThreshold {
		insights = append(insights, "Rich numeric data suggests opportunity for advanced analytics and correlation analysis")
	}

	return insights
}

// Summarize renders a short textual description of the dataset shape,
// attached to results for display and prompting.
func Summarize(ds *tabular.Dataset, types tabular.ColumnTypes) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset contains %d rows and %d columns.\n\n", ds.RowCount(), ds.ColumnCount())
	fmt.Fprintf(&b, "Columns: %s\n\n", strings.Join(ds.Headers, ", "))

	b.WriteString("Data types:\n")
	counts := types.CountByType()
	for _, t := range []tabular.ColumnType{
		tabular.TypeInteger, tabular.TypeFloat, tabular.TypeDate,
		tabular.TypeBoolean, tabular.TypeString, tabular.TypeUnknown,
	} {
		if counts[t] > 0 {
			fmt.Fprintf(&b, "- %d %s column(s)\n", counts[t], t)
		}
	}

	numericCols := types.NumericColumns(ds.Headers)
	dateCols := types.DateColumns(ds.Headers)
	categoryCols := types.CategoryColumns(ds.Headers)

	b.WriteString("\nKey insights:\n")
	if len(numericCols) > 0 {
		fmt.Fprintf(&b, "- %d numeric columns suitable for charts and metrics\n", len(numericCols))
	}
	if len(dateCols) > 0 {
		fmt.Fprintf(&b, "- %d date columns for time-series analysis\n", len(dateCols))
	}
	if len(categoryCols) > 0 {
		fmt.Fprintf(&b, "- %d categorical columns for grouping and filtering\n", len(categoryCols))
	}

	return b.String()
}
