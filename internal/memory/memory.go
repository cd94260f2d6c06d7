package memory

import (
	"context"
	"sort"

	"dashgen/domain/core"
	"dashgen/domain/pattern"
	"dashgen/internal/config"
	"dashgen/internal/errors"
	"dashgen/internal/logging"
	"dashgen/ports"
)

// Weights of the two Jaccard components in the similarity score. Column
// names carry more signal than the type mix.
const (
	nameWeight = 0.7
	typeWeight = 0.3
)

// Service stores and retrieves generation-outcome patterns. Every store
// failure is logged and swallowed and every retrieval failure degrades to an
// empty result: a pattern-store outage never blocks a generation.
type Service struct {
	repo   ports.PatternRepository
	cfg    config.MemoryConfig
	logger *logging.Logger
}

// NewService creates a pattern memory backed by repo. A nil repo is allowed
// and behaves as an always-empty store, which is how the CLI runs.
func NewService(repo ports.PatternRepository, cfg config.MemoryConfig, logger *logging.Logger) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger.WithComponent("Memory"),
	}
}

// Store appends one outcome record built from the current dataset schema and
// intent. Best-effort: the calling flow proceeds regardless of the result.
func (s *Service) Store(ctx context.Context, pctx pattern.Context, successfulElements, commonMistakes, bestPractices []string) {
	if s.repo == nil {
		s.logger.Debug("no pattern store configured, skipping write")
		return
	}

	record := &pattern.Record{
		ID:                 core.NewPatternID(),
		Fingerprint:        pctx.Fingerprint,
		OriginalIntent:     pctx.UserPrompt,
		SuccessfulElements: successfulElements,
		CommonMistakes:     commonMistakes,
		BestPractices:      bestPractices,
		CreatedAt:          core.Now(),
	}

	if err := s.repo.Append(ctx, record); err != nil {
		s.logger.Warn("%v", errors.MemoryUnavailable("append", err))
		return
	}
	s.logger.Debug("stored pattern %s (%d columns)", record.ID, len(record.Fingerprint.ColumnNames))
}

// Retrieve returns the most similar recent patterns for the current schema:
// up to FetchLimit records from the last WindowDays days are scored, records
// above MinSimilarity are kept, and the top UseLimit by similarity are
// returned. Ties preserve recency order.
func (s *Service) Retrieve(ctx context.Context, pctx pattern.Context) []pattern.Scored {
	if s.repo == nil {
		return nil
	}

	records, err := s.repo.QueryRecent(ctx, s.cfg.WindowDays, s.cfg.FetchLimit)
	if err != nil {
		s.logger.Warn("%v", errors.MemoryUnavailable("query", err))
		return nil
	}

	var scored []pattern.Scored
	for _, record := range records {
		similarity := Similarity(pctx.Fingerprint, record.Fingerprint)
		if similarity > s.cfg.MinSimilarity {
			scored = append(scored, pattern.Scored{Record: record, Similarity: similarity})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	if len(scored) > s.cfg.UseLimit {
		scored = scored[:s.cfg.UseLimit]
	}

	s.logger.Debug("retrieved %d relevant patterns of %d fetched", len(scored), len(records))
	return scored
}

// Similarity scores two schema fingerprints as a weighted sum of the Jaccard
// similarity over lowercased column names and over type labels. A fingerprint
// compared with itself scores 1.0.
func Similarity(a, b pattern.SchemaFingerprint) float64 {
	return nameWeight*jaccard(a.NameSet(), b.NameSet()) +
		typeWeight*jaccard(a.TypeSet(), b.TypeSet())
}

func jaccard(a, b map[string]bool) float64 {
	union := len(b)
	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
