package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"dashgen/domain/core"
	"dashgen/domain/pattern"
	"dashgen/ports"
)

// patternRepository implements the PatternRepository interface on postgres.
// Records are append-only; no update or delete statements exist here.
type patternRepository struct {
	db *sqlx.DB
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(db *sqlx.DB) ports.PatternRepository {
	return &patternRepository{db: db}
}

// EnsureSchema creates the pattern table and its index when missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS dashboard_patterns (
		id TEXT PRIMARY KEY,
		column_names JSONB NOT NULL,
		column_types JSONB NOT NULL,
		user_intent TEXT NOT NULL DEFAULT '',
		successful_elements JSONB NOT NULL DEFAULT '[]',
		common_mistakes JSONB NOT NULL DEFAULT '[]',
		best_practices JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_dashboard_patterns_created_at
		ON dashboard_patterns (created_at DESC)`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure pattern schema: %w", err)
	}
	return nil
}

// Append inserts one pattern record.
func (r *patternRepository) Append(ctx context.Context, record *pattern.Record) error {
	names, err := json.Marshal(record.Fingerprint.ColumnNames)
	if err != nil {
		return fmt.Errorf("failed to marshal column names: %w", err)
	}
	types, err := json.Marshal(record.Fingerprint.ColumnTypes)
	if err != nil {
		return fmt.Errorf("failed to marshal column types: %w", err)
	}
	successful, err := json.Marshal(emptyIfNil(record.SuccessfulElements))
	if err != nil {
		return fmt.Errorf("failed to marshal successful elements: %w", err)
	}
	mistakes, err := json.Marshal(emptyIfNil(record.CommonMistakes))
	if err != nil {
		return fmt.Errorf("failed to marshal common mistakes: %w", err)
	}
	practices, err := json.Marshal(emptyIfNil(record.BestPractices))
	if err != nil {
		return fmt.Errorf("failed to marshal best practices: %w", err)
	}

	query := `INSERT INTO dashboard_patterns (
		id, column_names, column_types, user_intent,
		successful_elements, common_mistakes, best_practices, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		record.ID.String(), names, types, record.OriginalIntent,
		successful, mistakes, practices, record.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to append pattern: %w", err)
	}
	return nil
}

// QueryRecent returns up to limit records from the last windowDays days,
// newest first.
func (r *patternRepository) QueryRecent(ctx context.Context, windowDays, limit int) ([]*pattern.Record, error) {
	query := `SELECT
		id, column_names, column_types, user_intent,
		successful_elements, common_mistakes, best_practices, created_at
	FROM dashboard_patterns
	WHERE created_at >= now() - make_interval(days => $1)
	ORDER BY created_at DESC
	LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, windowDays, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()

	var records []*pattern.Record
	for rows.Next() {
		var (
			id         string
			names      []byte
			types      []byte
			intent     string
			successful []byte
			mistakes   []byte
			practices  []byte
			createdAt  time.Time
		)
		if err := rows.Scan(&id, &names, &types, &intent, &successful, &mistakes, &practices, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}

		record := &pattern.Record{
			ID:             core.PatternID(id),
			OriginalIntent: intent,
			CreatedAt:      core.NewTimestamp(createdAt),
		}
		if err := json.Unmarshal(names, &record.Fingerprint.ColumnNames); err != nil {
			return nil, fmt.Errorf("failed to unmarshal column names: %w", err)
		}
		if err := json.Unmarshal(types, &record.Fingerprint.ColumnTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal column types: %w", err)
		}
		if err := json.Unmarshal(successful, &record.SuccessfulElements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal successful elements: %w", err)
		}
		if err := json.Unmarshal(mistakes, &record.CommonMistakes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal common mistakes: %w", err)
		}
		if err := json.Unmarshal(practices, &record.BestPractices); err != nil {
			return nil, fmt.Errorf("failed to unmarshal best practices: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patterns: %w", err)
	}
	return records, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
