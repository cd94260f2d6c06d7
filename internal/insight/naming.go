package insight

import (
	"strings"
)

// humanize turns a raw column name like "unit_price" into "Unit Price" for
// titles and metric names.
func humanize(column string) string {
	words := strings.FieldsFunc(column, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// columnsMatching returns headers whose lowercased name contains any keyword,
// preserving header order.
func columnsMatching(headers []string, keywords []string) []string {
	var matched []string
	for _, header := range headers {
		lowered := strings.ToLower(header)
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				matched = append(matched, header)
				break
			}
		}
	}
	return matched
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
