package prompt

import (
	"fmt"
	"strings"

	"dashgen/domain/pattern"
	"dashgen/domain/tabular"
	insightpkg "dashgen/internal/insight"
)

// Caps keep the instruction block bounded regardless of dataset width or
// store size.
const (
	kpiLimit      = 4
	chartLimit    = 4
	filterLimit   = 3
	successLimit  = 5
	mistakeLimit  = 3
	practiceLimit = 3
)

// Instruction is the payload handed to the code-generating consumer: one
// text block plus the exact header list for exact-match column usage.
type Instruction struct {
	Text    string   `json:"text"`
	Headers []string `json:"headers"`
}

// Synthesize merges the analytical plan, retrieved patterns, and the user's
// raw request into one instruction payload. Pure function: no side effects,
// deterministic for the same inputs.
func Synthesize(userPrompt string, ds *tabular.Dataset, analysis *insightpkg.Analysis, patterns []pattern.Scored) Instruction {
	var b strings.Builder
	insights := analysis.Insights

	if strings.TrimSpace(userPrompt) != "" {
		b.WriteString(userPrompt)
		b.WriteString("\n\n")
	}

	b.WriteString("## Intelligent Data Analysis\n\n")
	fmt.Fprintf(&b, "**Business Context**: %s\n\n", insightpkg.DomainDescription(insights.BusinessContext))

	b.WriteString("**Recommended KPIs** (implement these as metric cards):\n")
	for i, kpi := range insights.KeyMetrics {
		if i >= kpiLimit {
			break
		}
		fmt.Fprintf(&b, "%d. **%s**: %s (%s format, calculation: %s)\n",
			i+1, kpi.Metric, kpi.Description, kpi.CardType, kpi.Calculation)
	}
	b.WriteString("\n")

	b.WriteString("**Recommended Charts** (implement these visualizations):\n")
	for i, chart := range insights.ChartRecommendations {
		if i >= chartLimit {
			break
		}
		fmt.Fprintf(&b, "%d. **%s chart**: %s\n", i+1, strings.ToUpper(string(chart.Type)), chart.Title)
		fmt.Fprintf(&b, "   - X-axis: %s, Y-axis: %s\n", chart.XAxis, strings.Join(chart.YAxis, ", "))
		if chart.GroupBy != "" {
			fmt.Fprintf(&b, "   - Group by: %s\n", chart.GroupBy)
		}
		fmt.Fprintf(&b, "   - Reasoning: %s\n", chart.Reasoning)
	}
	b.WriteString("\n")

	b.WriteString("**Dashboard Structure**:\n")
	for i, section := range insights.DashboardStructure.Sections {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, section.Title, section.Description)
	}
	b.WriteString("\n")

	if len(insights.DashboardStructure.Filters) > 0 {
		b.WriteString("**Recommended Filters**:\n")
		for i, filter := range insights.DashboardStructure.Filters {
			if i >= filterLimit {
				break
			}
			fmt.Fprintf(&b, "- %s (%s)\n", filter.Column, filter.Type)
		}
		b.WriteString("\n")
	}

	b.WriteString("**Key Insights**:\n")
	for _, item := range insights.AnalyticalInsights {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\n")

	if len(analysis.Profiles) > 0 {
		b.WriteString("**Numeric Column Profiles**:\n")
		for _, p := range analysis.Profiles {
			fmt.Fprintf(&b, "- %s: n=%d, mean=%.2f, median=%.2f, range %.2f to %.2f\n",
				p.Column, p.Count, p.Mean, p.Median, p.Min, p.Max)
		}
		b.WriteString("\n")
	}

	if len(insights.DataQualityIssues) > 0 {
		b.WriteString("**Data Quality Notes**:\n")
		for _, issue := range insights.DataQualityIssues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}

	writePatternGuidance(&b, patterns)

	b.WriteString("**Implementation Instructions**:\n")
	fmt.Fprintf(&b, "- Use the exact column names from the data: %s\n", strings.Join(ds.Headers, ", "))
	b.WriteString("- Implement responsive design with proper spacing\n")
	b.WriteString("- Add interactive elements like hover effects and tooltips\n")
	b.WriteString("- Use appropriate color schemes for data visualization\n")
	b.WriteString("- Include loading states and error handling\n")
	b.WriteString("- Make the dashboard fully functional with sample data integration\n\n")

	b.WriteString("Please create a comprehensive dashboard that implements these recommendations based on the data analysis.")

	return Instruction{
		Text:    b.String(),
		Headers: append([]string(nil), ds.Headers...),
	}
}

// writePatternGuidance renders deduplicated learnings from similar past
// generations. Nothing is written when no patterns were retrieved.
func writePatternGuidance(b *strings.Builder, patterns []pattern.Scored) {
	if len(patterns) == 0 {
		return
	}

	var successful, mistakes, practices []string
	for _, scored := range patterns {
		successful = append(successful, scored.Record.SuccessfulElements...)
		mistakes = append(mistakes, scored.Record.CommonMistakes...)
		practices = append(practices, scored.Record.BestPractices...)
	}

	b.WriteString("**Learnings From Similar Dashboards**:\n")
	if items := dedupe(successful, successLimit); len(items) > 0 {
		b.WriteString("Components that worked well with similar data:\n")
		for _, item := range items {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
	if items := dedupe(mistakes, mistakeLimit); len(items) > 0 {
		b.WriteString("Common issues to avoid:\n")
		for _, item := range items {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
	if items := dedupe(practices, practiceLimit); len(items) > 0 {
		b.WriteString("Best practices for this type of data:\n")
		for _, item := range items {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
	b.WriteString("\n")
}

// dedupe keeps the first occurrence of each item, capped at limit.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	var unique []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		unique = append(unique, item)
		if len(unique) >= limit {
			break
		}
	}
	return unique
}
