package insight

import (
	"sort"

	"dashgen/domain/insight"
	"dashgen/domain/tabular"
)

const (
	// detailedTableColumnThreshold: wider datasets get a drill-down table.
	detailedTableColumnThreshold = 8

	// dropdownDistinctLimit: category filters with more distinct values than
	// this become search boxes instead of dropdowns.
	dropdownDistinctLimit = 20

	// gridLayoutNumericThreshold: more numeric columns than this switches the
	// layout from two-column to grid.
	gridLayoutNumericThreshold = 4

	// categoryFilterLimit caps how many category columns become filters.
	categoryFilterLimit = 3
)

// PlanStructure lays out dashboard sections and filters for the dataset.
func PlanStructure(ds *tabular.Dataset, types tabular.ColumnTypes) insight.DashboardStructure {
	numericColumns := types.NumericColumns(ds.Headers)
	categoryColumns := types.CategoryColumns(ds.Headers)
	dateColumns := types.DateColumns(ds.Headers)

	sections := []insight.DashboardSection{{
		Title:       "Key Performance Indicators",
		Type:        insight.SectionKPIRow,
		Position:    1,
		Description: "High-level metrics and performance indicators",
	}}

	if len(dateColumns) > 0 {
		sections = append(sections, insight.DashboardSection{
			Title:       "Trends & Time Analysis",
			Type:        insight.SectionTrendAnalysis,
			Position:    len(sections) + 1,
			Description: "Time-based trends and historical analysis",
		})
	}

	sections = append(sections, insight.DashboardSection{
		Title:       "Analytical Charts",
		Type:        insight.SectionChartGrid,
		Position:    len(sections) + 1,
		Description: "Detailed charts and visualizations",
	})

	if ds.ColumnCount() > detailedTableColumnThreshold {
		sections = append(sections, insight.DashboardSection{
			Title:       "Detailed Data",
			Type:        insight.SectionDetailedTable,
			Position:    len(sections) + 1,
			Description: "Comprehensive data table with filtering",
		})
	}

	var filters []insight.FilterRecommendation
	if len(dateColumns) > 0 {
		filters = append(filters, insight.FilterRecommendation{
			Column:   dateColumns[0],
			Type:     insight.FilterDateRange,
			Priority: 10,
		})
	}
	for i, col := range categoryColumns {
		if i >= categoryFilterLimit {
			break
		}
		filterType := insight.FilterDropdown
		if ds.DistinctCount(col) > dropdownDistinctLimit {
			filterType = insight.FilterSearch
		}
		filters = append(filters, insight.FilterRecommendation{
			Column:   col,
			Type:     filterType,
			Priority: 9 - i,
		})
	}
	sort.SliceStable(filters, func(i, j int) bool {
		return filters[i].Priority > filters[j].Priority
	})

	layout := insight.LayoutTwoColumn
	if len(numericColumns) > gridLayoutNumericThreshold {
		layout = insight.LayoutGrid
	}

	return insight.DashboardStructure{
		Layout:   layout,
		Sections: sections,
		Filters:  filters,
	}
}
