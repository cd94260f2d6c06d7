package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDomain(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected string
	}{
		{"sales", []string{"order_id", "revenue", "region"}, "sales-commerce"},
		{"web analytics", []string{"sessions", "pageviews", "bounce_rate"}, "web-analytics"},
		{"hr", []string{"employee_id", "salary", "department"}, "human-resources"},
		{"inventory", []string{"warehouse", "stock_level"}, "inventory-management"},
		{"support", []string{"ticket_id", "resolution_time"}, "customer-support"},
		{"marketing", []string{"campaign", "impressions", "ctr"}, "marketing"},
		{"financial", []string{"budget", "expense_category"}, "financial"},
		{"projects", []string{"task", "milestone", "deadline"}, "project-management"},
		{"no match", []string{"foo", "bar", "baz"}, DomainGeneralBusiness},
		{"case insensitive", []string{"Total_Revenue"}, "sales-commerce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyDomain(tt.headers))
		})
	}
}

// A dataset matching several keyword groups reports only the first group in
// precedence order.
func TestClassifyDomainPrecedence(t *testing.T) {
	headers := []string{"campaign", "revenue", "budget"}
	assert.Equal(t, "sales-commerce", ClassifyDomain(headers))
}

func TestDomainDescription(t *testing.T) {
	assert.Contains(t, DomainDescription("sales-commerce"), "revenue optimization")
	assert.Contains(t, DomainDescription("something-else"), "General Business")
}
