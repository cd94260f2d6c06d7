package app

import (
	"context"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"dashgen/domain/core"
	"dashgen/domain/pattern"
	"dashgen/domain/tabular"
	"dashgen/internal/errors"
	"dashgen/internal/infer"
	"dashgen/internal/ingest"
	insightpkg "dashgen/internal/insight"
	"dashgen/internal/logging"
	"dashgen/internal/memory"
	"dashgen/internal/prompt"
)

// Upload is one uploaded file handed in by the transport layer.
type Upload struct {
	Filename string
	Content  []byte
}

// GenerationResult is everything a consumer needs after one analysis run:
// the typed dataset shape, the analytical plan, and the synthesized
// instruction payload.
type GenerationResult struct {
	Dataset         *tabular.Dataset     `json:"-"`
	ColumnTypes     tabular.ColumnTypes  `json:"columnTypes"`
	Analysis        *insightpkg.Analysis `json:"analysis"`
	Instruction     prompt.Instruction   `json:"instruction"`
	PatternsApplied int                  `json:"patternsApplied"`
}

// OutcomeReport describes how a finished generation went, for pattern memory.
type OutcomeReport struct {
	Headers            []string          `json:"headers"`
	ColumnTypes        map[string]string `json:"columnTypes"`
	UserPrompt         string            `json:"userPrompt"`
	SuccessfulElements []string          `json:"successfulElements"`
	CommonMistakes     []string          `json:"commonMistakes"`
	BestPractices      []string          `json:"bestPractices"`
}

// cachedAnalysis is one LRU entry: the parsed dataset, its types, and the
// engine output. Pattern retrieval is never cached since the store changes
// between requests.
type cachedAnalysis struct {
	dataset  *tabular.Dataset
	types    tabular.ColumnTypes
	analysis *insightpkg.Analysis
}

// GenerationService orchestrates the pipeline: ingest, infer, analyze,
// retrieve similar patterns, synthesize the instruction payload. The pattern
// store arrives as an explicit dependency through the memory service, never
// as a process-wide singleton.
type GenerationService struct {
	ingestor *ingest.Ingestor
	engine   *insightpkg.Engine
	memory   *memory.Service
	cache    *lru.Cache[string, cachedAnalysis]
	logger   *logging.Logger
}

// NewGenerationService wires the pipeline. cacheSize bounds the analysis
// cache keyed by uploaded content hash.
func NewGenerationService(ingestor *ingest.Ingestor, engine *insightpkg.Engine, mem *memory.Service, cacheSize int, logger *logging.Logger) (*GenerationService, error) {
	cache, err := lru.New[string, cachedAnalysis](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create analysis cache")
	}
	return &GenerationService{
		ingestor: ingestor,
		engine:   engine,
		memory:   mem,
		cache:    cache,
		logger:   logger.WithComponent("Generation"),
	}, nil
}

// Generate runs the full pipeline for one upload. Ingestion failures abort
// with their structured error; pattern-store failures never do.
func (s *GenerationService) Generate(ctx context.Context, upload Upload, userPrompt string) (*GenerationResult, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(upload.Filename)), ".")
	key := core.NewDatasetHash(ext, upload.Content).String()

	entry, ok := s.cache.Get(key)
	if !ok {
		ds, err := s.ingestor.Ingest(ext, upload.Content)
		if err != nil {
			return nil, err
		}
		types := infer.InferTypes(ds)
		entry = cachedAnalysis{
			dataset:  ds,
			types:    types,
			analysis: s.engine.Analyze(ds, types),
		}
		s.cache.Add(key, entry)
	} else {
		s.logger.Debug("analysis cache hit for %s", upload.Filename)
	}

	pctx := pattern.Context{
		Fingerprint: pattern.NewSchemaFingerprint(entry.dataset.Headers, entry.types),
		UserPrompt:  userPrompt,
	}
	patterns := s.memory.Retrieve(ctx, pctx)
	instruction := prompt.Synthesize(userPrompt, entry.dataset, entry.analysis, patterns)

	return &GenerationResult{
		Dataset:         entry.dataset,
		ColumnTypes:     entry.types,
		Analysis:        entry.analysis,
		Instruction:     instruction,
		PatternsApplied: len(patterns),
	}, nil
}

// RecordOutcome feeds a finished generation back into pattern memory.
// The write itself is best-effort; only an unusable report is an error.
func (s *GenerationService) RecordOutcome(ctx context.Context, report OutcomeReport) error {
	if len(report.Headers) == 0 {
		return errors.InvalidInput("outcome report has no columns")
	}

	types := make(tabular.ColumnTypes, len(report.ColumnTypes))
	for col, t := range report.ColumnTypes {
		types[col] = tabular.ColumnType(t)
	}

	pctx := pattern.Context{
		Fingerprint: pattern.NewSchemaFingerprint(report.Headers, types),
		UserPrompt:  report.UserPrompt,
	}
	s.memory.Store(ctx, pctx, report.SuccessfulElements, report.CommonMistakes, report.BestPractices)
	return nil
}
