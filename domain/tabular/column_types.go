package tabular

// ColumnType is the inferred semantic type of a column.
type ColumnType string

const (
	TypeInteger ColumnType = "integer"
	TypeFloat   ColumnType = "float"
	TypeDate    ColumnType = "date"
	TypeBoolean ColumnType = "boolean"
	TypeString  ColumnType = "string"
	TypeUnknown ColumnType = "unknown"
)

// IsNumeric reports whether the type is integer or float.
func (t ColumnType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// ColumnTypes maps each column name to its inferred type.
// Its domain always equals the dataset headers.
type ColumnTypes map[string]ColumnType

// NumericColumns returns numeric column names in header order.
func (ct ColumnTypes) NumericColumns(headers []string) []string {
	var cols []string
	for _, h := range headers {
		if ct[h].IsNumeric() {
			cols = append(cols, h)
		}
	}
	return cols
}

// DateColumns returns date column names in header order.
func (ct ColumnTypes) DateColumns(headers []string) []string {
	var cols []string
	for _, h := range headers {
		if ct[h] == TypeDate {
			cols = append(cols, h)
		}
	}
	return cols
}

// CategoryColumns returns string-typed column names in header order.
// String columns are the grouping/segmentation candidates.
func (ct ColumnTypes) CategoryColumns(headers []string) []string {
	var cols []string
	for _, h := range headers {
		if ct[h] == TypeString {
			cols = append(cols, h)
		}
	}
	return cols
}

// TypeValues returns the distinct set of type labels present in the map.
func (ct ColumnTypes) TypeValues() []string {
	seen := make(map[ColumnType]bool, len(ct))
	var values []string
	for _, t := range ct {
		if !seen[t] {
			seen[t] = true
			values = append(values, string(t))
		}
	}
	return values
}

// CountByType returns how many columns carry each type.
func (ct ColumnTypes) CountByType() map[ColumnType]int {
	counts := make(map[ColumnType]int)
	for _, t := range ct {
		counts[t]++
	}
	return counts
}
