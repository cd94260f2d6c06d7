package pattern

import (
	"strings"

	"dashgen/domain/core"
	"dashgen/domain/tabular"
)

// SchemaFingerprint is the similarity key for pattern retrieval: the set of
// column names and the set of column-type labels of a dataset.
type SchemaFingerprint struct {
	ColumnNames []string `json:"columnNames"`
	ColumnTypes []string `json:"columnTypes"`
}

// NewSchemaFingerprint builds a fingerprint from headers and inferred types.
func NewSchemaFingerprint(headers []string, types tabular.ColumnTypes) SchemaFingerprint {
	return SchemaFingerprint{
		ColumnNames: append([]string(nil), headers...),
		ColumnTypes: types.TypeValues(),
	}
}

// NameSet returns the lowercased column-name set.
func (f SchemaFingerprint) NameSet() map[string]bool {
	set := make(map[string]bool, len(f.ColumnNames))
	for _, name := range f.ColumnNames {
		set[strings.ToLower(name)] = true
	}
	return set
}

// TypeSet returns the column-type label set.
func (f SchemaFingerprint) TypeSet() map[string]bool {
	set := make(map[string]bool, len(f.ColumnTypes))
	for _, t := range f.ColumnTypes {
		set[t] = true
	}
	return set
}

// Record is a stored outcome of a past generation, keyed by dataset schema.
// Records are append-only: the analysis core never mutates or deletes them.
type Record struct {
	ID                 core.PatternID    `json:"id"`
	Fingerprint        SchemaFingerprint `json:"schemaFingerprint"`
	OriginalIntent     string            `json:"originalIntent"`
	SuccessfulElements []string          `json:"successfulElements"`
	CommonMistakes     []string          `json:"commonMistakes"`
	BestPractices      []string          `json:"bestPractices"`
	CreatedAt          core.Timestamp    `json:"createdAt"`
}

// Context carries the current dataset's schema and user intent into
// pattern store and retrieval calls.
type Context struct {
	Fingerprint SchemaFingerprint
	UserPrompt  string
}

// Scored pairs a record with its similarity to the current context.
type Scored struct {
	Record     *Record
	Similarity float64
}
