package ingest

import (
	"bytes"
	"encoding/csv"
	"strings"

	"dashgen/domain/tabular"
	"dashgen/internal/errors"
)

// CSVParser reads comma-separated content with a header row. Empty lines are
// skipped; ragged rows are padded or truncated to the header width.
type CSVParser struct{}

// NewCSVParser creates a CSV parser.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse implements ports.TabularParser.
func (p *CSVParser) Parse(content []byte) (*tabular.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseFailure("csv", err)
	}
	if len(records) == 0 {
		return &tabular.Dataset{}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for _, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}
		rows = append(rows, normalizeRow(record, len(headers)))
	}

	return &tabular.Dataset{Headers: headers, Rows: rows}, nil
}
