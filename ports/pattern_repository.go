package ports

import (
	"context"

	"dashgen/domain/pattern"
)

// PatternRepository is the persistence collaborator for generation-outcome
// records. The store is append-only; retention is not this core's concern.
type PatternRepository interface {
	// Append persists one record.
	Append(ctx context.Context, record *pattern.Record) error

	// QueryRecent returns up to limit records created within the last
	// windowDays days, newest first.
	QueryRecent(ctx context.Context, windowDays, limit int) ([]*pattern.Record, error)
}
