package insight

// Importance ranks how prominently a KPI should be displayed.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Weight returns a sortable rank (higher is more important).
func (i Importance) Weight() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 1
	}
	return 0
}

// CardType describes how a KPI value is formatted on a metric card.
type CardType string

const (
	CardNumber     CardType = "number"
	CardPercentage CardType = "percentage"
	CardCurrency   CardType = "currency"
	CardTrend      CardType = "trend"
	CardComparison CardType = "comparison"
)

// KPIRecommendation is a suggested summary-metric card.
type KPIRecommendation struct {
	Metric      string     `json:"metric"`
	Description string     `json:"description"`
	Calculation string     `json:"calculation"`
	Importance  Importance `json:"importance"`
	CardType    CardType   `json:"cardType"`
	Columns     []string   `json:"columns"`
}

// ChartType enumerates the supported visualization kinds.
type ChartType string

const (
	ChartLine      ChartType = "line"
	ChartBar       ChartType = "bar"
	ChartPie       ChartType = "pie"
	ChartArea      ChartType = "area"
	ChartScatter   ChartType = "scatter"
	ChartHistogram ChartType = "histogram"
	ChartFunnel    ChartType = "funnel"
)

// Aggregation enumerates how chart values are rolled up.
type Aggregation string

const (
	AggSum    Aggregation = "sum"
	AggAvg    Aggregation = "avg"
	AggCount  Aggregation = "count"
	AggMax    Aggregation = "max"
	AggMin    Aggregation = "min"
	AggMedian Aggregation = "median"
)

// ChartRecommendation is a suggested visualization with axes and a priority
// rank. Higher priority means more important.
type ChartRecommendation struct {
	Type        ChartType   `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	XAxis       string      `json:"xAxis"`
	YAxis       []string    `json:"yAxis"`
	GroupBy     string      `json:"groupBy,omitempty"`
	Aggregation Aggregation `json:"aggregation"`
	Reasoning   string      `json:"reasoning"`
	Priority    int         `json:"priority"`
}

// SectionType enumerates dashboard section kinds.
type SectionType string

const (
	SectionKPIRow        SectionType = "kpi-row"
	SectionTrendAnalysis SectionType = "trend-analysis"
	SectionChartGrid     SectionType = "chart-grid"
	SectionDetailedTable SectionType = "detailed-table"
)

// DashboardSection is one ordered region of the dashboard layout.
type DashboardSection struct {
	Title       string      `json:"title"`
	Type        SectionType `json:"type"`
	Position    int         `json:"position"`
	Description string      `json:"description"`
}

// FilterType enumerates interactive filter widgets.
type FilterType string

const (
	FilterDropdown    FilterType = "dropdown"
	FilterDateRange   FilterType = "date-range"
	FilterMultiSelect FilterType = "multi-select"
	FilterSearch      FilterType = "search"
	FilterSlider      FilterType = "slider"
)

// FilterRecommendation is a suggested interactive filter.
type FilterRecommendation struct {
	Column   string     `json:"column"`
	Type     FilterType `json:"type"`
	Priority int        `json:"priority"`
}

// Layout enumerates overall dashboard arrangements.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutGrid         Layout = "grid"
	LayoutMixed        Layout = "mixed"
)

// DashboardStructure is the recommended section/filter layout.
// Filters are sorted by priority descending.
type DashboardStructure struct {
	Layout   Layout                 `json:"layout"`
	Sections []DashboardSection     `json:"sections"`
	Filters  []FilterRecommendation `json:"filters"`
}

// DataInsights is the complete analytical plan for one dataset. It is
// created once per analysis and never mutated afterwards.
type DataInsights struct {
	BusinessContext      string                `json:"businessContext"`
	KeyMetrics           []KPIRecommendation   `json:"keyMetrics"`
	ChartRecommendations []ChartRecommendation `json:"chartRecommendations"`
	AnalyticalInsights   []string              `json:"analyticalInsights"`
	DashboardStructure   DashboardStructure    `json:"dashboardStructure"`
	DataQualityIssues    []string              `json:"dataQualityIssues"`
}
