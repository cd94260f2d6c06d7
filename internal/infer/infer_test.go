package infer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"dashgen/domain/tabular"
)

func datasetWithColumn(values ...string) *tabular.Dataset {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}
	return &tabular.Dataset{Headers: []string{"col"}, Rows: rows}
}

func TestInferColumnTypes(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected tabular.ColumnType
	}{
		{"integers", []string{"1", "42", "-7"}, tabular.TypeInteger},
		{"floats", []string{"1.5", "2.0", "3"}, tabular.TypeFloat},
		{"iso dates", []string{"2024-01-15", "2024-02-20"}, tabular.TypeDate},
		{"us dates", []string{"01/15/2024", "3/4/2024"}, tabular.TypeDate},
		{"month names", []string{"Jan 2, 2024", "March 4, 2024"}, tabular.TypeDate},
		{"booleans", []string{"true", "false", "TRUE"}, tabular.TypeBoolean},
		{"yes no", []string{"yes", "no", "Yes"}, tabular.TypeBoolean},
		{"strings", []string{"alpha", "beta"}, tabular.TypeString},
		{"mixed numbers and text", []string{"1", "two"}, tabular.TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types := InferTypes(datasetWithColumn(tt.values...))
			assert.Equal(t, tt.expected, types["col"])
		})
	}
}

// Bare years parse as numbers, and numeric wins over date. A column of "2024"
// style values must come out integer.
func TestInferBareYearsAreInteger(t *testing.T) {
	types := InferTypes(datasetWithColumn("2022", "2023", "2024"))
	assert.Equal(t, tabular.TypeInteger, types["col"])
}

// 1/0 parse as numbers too, so a 1/0 column is integer, not boolean.
func TestInferOneZeroIsInteger(t *testing.T) {
	types := InferTypes(datasetWithColumn("1", "0", "1"))
	assert.Equal(t, tabular.TypeInteger, types["col"])
}

// One date among otherwise textual values is enough to call the column date.
func TestInferDateNeedsOnlyOneMatch(t *testing.T) {
	types := InferTypes(datasetWithColumn("unknown", "2024-06-01", "pending"))
	assert.Equal(t, tabular.TypeDate, types["col"])
}

func TestInferEmptyColumnIsUnknown(t *testing.T) {
	types := InferTypes(datasetWithColumn("", "  ", ""))
	assert.Equal(t, tabular.TypeUnknown, types["col"])
}

func TestInferIgnoresEmptyValues(t *testing.T) {
	types := InferTypes(datasetWithColumn("10", "", "20", " "))
	assert.Equal(t, tabular.TypeInteger, types["col"])
}

// Values past the sample limit must not change the classification.
func TestInferSampleLimit(t *testing.T) {
	values := make([]string, 0, SampleLimit+1)
	for i := 0; i < SampleLimit; i++ {
		values = append(values, fmt.Sprintf("%d", i))
	}
	values = append(values, "not a number")

	types := InferTypes(datasetWithColumn(values...))
	assert.Equal(t, tabular.TypeInteger, types["col"])
}

func TestInferDeterministic(t *testing.T) {
	ds := &tabular.Dataset{
		Headers: []string{"name", "amount", "when", "flag"},
		Rows: [][]string{
			{"a", "1.5", "2024-01-01", "yes"},
			{"b", "2.5", "2024-01-02", "no"},
		},
	}

	first := InferTypes(ds)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, InferTypes(ds))
	}
	assert.Equal(t, tabular.TypeString, first["name"])
	assert.Equal(t, tabular.TypeFloat, first["amount"])
	assert.Equal(t, tabular.TypeDate, first["when"])
	assert.Equal(t, tabular.TypeBoolean, first["flag"])
}
