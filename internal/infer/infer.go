package infer

import (
	"strconv"
	"strings"
	"time"

	"dashgen/domain/tabular"
)

// SampleLimit caps how many non-empty values per column are examined.
const SampleLimit = 100

// Classification is order-sensitive. Rules run in the declared order below
// and the first match wins:
//
//  1. numeric: every sampled value parses as a number; float when any textual
//     form contains a decimal point, integer otherwise
//  2. date: at least one sampled value parses as a date
//  3. boolean: every sampled value is one of true/false/1/0/yes/no
//  4. string: the default
//
// Because numeric runs before date, a column of bare years ("2024") is
// classified as integer, not date. That precedence is part of the contract.
var rules = []struct {
	name     string
	classify func(sample []string) (tabular.ColumnType, bool)
}{
	{"numeric", classifyNumeric},
	{"date", classifyDate},
	{"boolean", classifyBoolean},
}

// InferTypes classifies every column of the dataset. A column with no
// non-empty sampled values is unknown. The result is deterministic for
// identical input.
func InferTypes(ds *tabular.Dataset) tabular.ColumnTypes {
	types := make(tabular.ColumnTypes, len(ds.Headers))
	for _, header := range ds.Headers {
		types[header] = inferColumn(ds, header)
	}
	return types
}

func inferColumn(ds *tabular.Dataset, header string) tabular.ColumnType {
	sample := sampleColumn(ds, header)
	if len(sample) == 0 {
		return tabular.TypeUnknown
	}
	for _, rule := range rules {
		if t, ok := rule.classify(sample); ok {
			return t
		}
	}
	return tabular.TypeString
}

// sampleColumn collects up to SampleLimit non-empty values in row order.
func sampleColumn(ds *tabular.Dataset, header string) []string {
	idx := ds.ColumnIndex(header)
	if idx < 0 {
		return nil
	}
	sample := make([]string, 0, SampleLimit)
	for _, row := range ds.Rows {
		value := strings.TrimSpace(row[idx])
		if value == "" {
			continue
		}
		sample = append(sample, value)
		if len(sample) >= SampleLimit {
			break
		}
	}
	return sample
}

func classifyNumeric(sample []string) (tabular.ColumnType, bool) {
	hasDecimal := false
	for _, value := range sample {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "", false
		}
		if strings.Contains(value, ".") {
			hasDecimal = true
		}
	}
	if hasDecimal {
		return tabular.TypeFloat, true
	}
	return tabular.TypeInteger, true
}

// dateLayouts are tried in order against each sampled value.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-Jan-2006",
}

func classifyDate(sample []string) (tabular.ColumnType, bool) {
	for _, value := range sample {
		if parsesAsDate(value) {
			return tabular.TypeDate, true
		}
	}
	return "", false
}

func parsesAsDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

var booleanTokens = map[string]bool{
	"true": true, "false": true,
	"1": true, "0": true,
	"yes": true, "no": true,
}

func classifyBoolean(sample []string) (tabular.ColumnType, bool) {
	for _, value := range sample {
		if !booleanTokens[strings.ToLower(value)] {
			return "", false
		}
	}
	return tabular.TypeBoolean, true
}
