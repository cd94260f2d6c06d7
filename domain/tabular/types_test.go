package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Headers: []string{"name", "amount", "when"},
		Rows: [][]string{
			{"a", "10", "2024-01-01"},
			{"b", "", "2024-01-02"},
			{"a", "30", ""},
		},
	}
}

func TestDatasetValidate(t *testing.T) {
	assert.NoError(t, sampleDataset().Validate())

	blank := &Dataset{Headers: []string{"a", " "}, Rows: nil}
	assert.ErrorContains(t, blank.Validate(), "blank column name")

	dup := &Dataset{Headers: []string{"a", "a"}, Rows: nil}
	assert.ErrorContains(t, dup.Validate(), "duplicate column name")

	ragged := &Dataset{Headers: []string{"a", "b"}, Rows: [][]string{{"1"}}}
	assert.ErrorContains(t, ragged.Validate(), "row 0 has 1 cells")
}

func TestDatasetColumn(t *testing.T) {
	ds := sampleDataset()
	assert.Equal(t, []string{"a", "b", "a"}, ds.Column("name"))
	assert.Nil(t, ds.Column("missing"))
	assert.Equal(t, 1, ds.ColumnIndex("amount"))
	assert.Equal(t, -1, ds.ColumnIndex("missing"))
}

func TestDatasetDistinctCount(t *testing.T) {
	ds := sampleDataset()
	assert.Equal(t, 2, ds.DistinctCount("name"))
	// Empty cells never count as a distinct value.
	assert.Equal(t, 2, ds.DistinctCount("amount"))
	assert.Equal(t, 0, ds.DistinctCount("missing"))
}

func TestDatasetMissingFraction(t *testing.T) {
	ds := sampleDataset()
	assert.InDelta(t, 1.0/3.0, ds.MissingFraction("amount"), 1e-9)
	assert.InDelta(t, 0.0, ds.MissingFraction("name"), 1e-9)
	assert.InDelta(t, 0.0, (&Dataset{Headers: []string{"a"}}).MissingFraction("a"), 1e-9)
}

func TestColumnTypesSelectors(t *testing.T) {
	headers := []string{"name", "amount", "price", "when", "flag"}
	types := ColumnTypes{
		"name":   TypeString,
		"amount": TypeInteger,
		"price":  TypeFloat,
		"when":   TypeDate,
		"flag":   TypeBoolean,
	}

	assert.Equal(t, []string{"amount", "price"}, types.NumericColumns(headers))
	assert.Equal(t, []string{"when"}, types.DateColumns(headers))
	assert.Equal(t, []string{"name"}, types.CategoryColumns(headers))

	counts := types.CountByType()
	assert.Equal(t, 1, counts[TypeInteger])
	assert.Equal(t, 1, counts[TypeFloat])

	values := types.TypeValues()
	assert.Len(t, values, 5)
	assert.Contains(t, values, "integer")
}

func TestColumnTypeIsNumeric(t *testing.T) {
	assert.True(t, TypeInteger.IsNumeric())
	assert.True(t, TypeFloat.IsNumeric())
	assert.False(t, TypeDate.IsNumeric())
	assert.False(t, TypeString.IsNumeric())
}
