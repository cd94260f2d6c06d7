package insight

import (
	"strings"
)

// DomainGeneralBusiness is the fallback business context when no keyword
// group matches.
const DomainGeneralBusiness = "general-business"

// domainRule pairs a business-context label with the column-name keywords
// that imply it.
type domainRule struct {
	label       string
	description string
	keywords    []string
}

// domainRules are evaluated in declared order and the first matching group
// wins. A dataset matching several groups (say marketing and financial
// keywords) deliberately reports only the highest-priority one; the order
// here is the precedence contract.
var domainRules = []domainRule{
	{"sales-commerce", "E-commerce/Sales data - Focus on revenue optimization and customer insights",
		[]string{"revenue", "sales", "profit", "orders"}},
	{"web-analytics", "Web Analytics - Emphasize user behavior and conversion optimization",
		[]string{"users", "sessions", "pageviews", "clicks"}},
	{"human-resources", "Human Resources - Highlight workforce analytics and performance metrics",
		[]string{"employee", "salary", "department", "hire"}},
	{"inventory-management", "Inventory Management - Focus on stock levels and supply chain efficiency",
		[]string{"inventory", "stock", "product", "warehouse"}},
	{"customer-support", "Customer Support - Emphasize ticket resolution and satisfaction metrics",
		[]string{"customer", "ticket", "support", "issue"}},
	{"marketing", "Marketing Analytics - Focus on campaign performance and ROI",
		[]string{"campaign", "impressions", "ctr", "conversion"}},
	{"financial", "Financial Data - Emphasize budgets, expenses, and financial health",
		[]string{"expense", "budget", "cost", "accounting"}},
	{"project-management", "Project Management - Focus on timelines, resources, and deliverables",
		[]string{"project", "task", "milestone", "deadline"}},
}

// ClassifyDomain guesses the business context from column names.
func ClassifyDomain(headers []string) string {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}
	for _, rule := range domainRules {
		if matchesAny(lowered, rule.keywords) {
			return rule.label
		}
	}
	return DomainGeneralBusiness
}

// DomainDescription returns the human description for a context label.
func DomainDescription(label string) string {
	for _, rule := range domainRules {
		if rule.label == label {
			return rule.description
		}
	}
	return "General Business Data - Comprehensive overview with key insights"
}

func matchesAny(lowered []string, keywords []string) bool {
	for _, keyword := range keywords {
		for _, name := range lowered {
			if strings.Contains(name, keyword) {
				return true
			}
		}
	}
	return false
}
