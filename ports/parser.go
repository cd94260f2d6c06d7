package ports

import (
	"dashgen/domain/tabular"
)

// TabularParser turns raw uploaded bytes of one file format into a Dataset.
// Implementations are registered per extension; adding a format never touches
// ingestion call sites.
type TabularParser interface {
	Parse(content []byte) (*tabular.Dataset, error)
}
