package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"dashgen/domain/tabular"
	"dashgen/internal/errors"
)

// ExcelParser reads the first sheet of a spreadsheet. The first row is the
// header row; fully empty rows are skipped.
type ExcelParser struct{}

// NewExcelParser creates a spreadsheet parser.
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// Parse implements ports.TabularParser.
func (p *ExcelParser) Parse(content []byte) (*tabular.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.ParseFailure("spreadsheet", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ParseFailure("spreadsheet", fmt.Errorf("workbook has no sheets"))
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseFailure("spreadsheet", err)
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
