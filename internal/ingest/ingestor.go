package ingest

import (
	"path/filepath"
	"strings"

	"dashgen/domain/tabular"
	"dashgen/internal/errors"
	"dashgen/internal/logging"
	"dashgen/ports"
)

// Ingestor normalizes uploaded file bytes into a Dataset. Parsers are held
// in a registry keyed by file extension, so new formats register here without
// touching call sites.
type Ingestor struct {
	parsers map[string]ports.TabularParser
	logger  *logging.Logger
}

// NewIngestor creates an ingestor with the built-in csv/json/xlsx/xls parsers.
func NewIngestor(logger *logging.Logger) *Ingestor {
	ing := &Ingestor{
		parsers: make(map[string]ports.TabularParser),
		logger:  logger.WithComponent("Ingest"),
	}

	excel := NewExcelParser()
	ing.Register("csv", NewCSVParser())
	ing.Register("json", NewJSONParser())
	ing.Register("xlsx", excel)
	ing.Register("xls", excel)
	return ing
}

// Register binds a parser to a file extension (without the dot).
func (ing *Ingestor) Register(extension string, parser ports.TabularParser) {
	ing.parsers[strings.ToLower(extension)] = parser
}

// IngestFile derives the extension from a file name and ingests the content.
func (ing *Ingestor) IngestFile(filename string, content []byte) (*tabular.Dataset, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return ing.Ingest(ext, content)
}

// Ingest parses content declared to be of the given extension and enforces
// the dataset invariants: unique non-blank headers, fixed row width, and at
// least one data row.
func (ing *Ingestor) Ingest(extension string, content []byte) (*tabular.Dataset, error) {
	ext := strings.ToLower(extension)
	parser, ok := ing.parsers[ext]
	if !ok {
		return nil, errors.UnsupportedFormat(ext)
	}

	ds, err := parser.Parse(content)
	if err != nil {
		ing.logger.Warn("parse failed for .%s upload: %v", ext, err)
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		return nil, errors.ParseFailure(ext, err)
	}
	if ds.RowCount() == 0 {
		return nil, errors.EmptyDataset(ext)
	}

	ing.logger.Info("ingested .%s upload (%d columns, %d rows)", ext, ds.ColumnCount(), ds.RowCount())
	return ds, nil
}

// normalizeRow pads or truncates a raw row so its width matches the headers.
func normalizeRow(row []string, width int) []string {
	normalized := make([]string, width)
	for i := 0; i < width && i < len(row); i++ {
		normalized[i] = strings.TrimSpace(row[i])
	}
	return normalized
}

// isEmptyRow reports whether every cell of a raw row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
