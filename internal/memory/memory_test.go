package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dashgen/domain/core"
	"dashgen/domain/pattern"
	"dashgen/internal/config"
	"dashgen/internal/logging"
)

type MockPatternRepository struct {
	mock.Mock
}

func (m *MockPatternRepository) Append(ctx context.Context, record *pattern.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPatternRepository) QueryRecent(ctx context.Context, windowDays, limit int) ([]*pattern.Record, error) {
	args := m.Called(ctx, windowDays, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pattern.Record), args.Error(1)
}

func testConfig() config.MemoryConfig {
	return config.MemoryConfig{
		WindowDays:    30,
		FetchLimit:    20,
		UseLimit:      5,
		MinSimilarity: 0.3,
	}
}

func testLogger() *logging.Logger {
	return logging.New(logging.LevelError, "Test")
}

func fingerprint(names []string, types []string) pattern.SchemaFingerprint {
	return pattern.SchemaFingerprint{ColumnNames: names, ColumnTypes: types}
}

func record(names []string, types []string) *pattern.Record {
	return &pattern.Record{
		ID:          core.NewPatternID(),
		Fingerprint: fingerprint(names, types),
		CreatedAt:   core.Now(),
	}
}

func TestSimilarityIdenticalSchemas(t *testing.T) {
	fp := fingerprint([]string{"date", "revenue"}, []string{"date", "float"})
	assert.InDelta(t, 1.0, Similarity(fp, fp), 1e-9)
}

func TestSimilarityCaseInsensitiveNames(t *testing.T) {
	a := fingerprint([]string{"Revenue", "Date"}, []string{"float", "date"})
	b := fingerprint([]string{"revenue", "date"}, []string{"float", "date"})
	assert.InDelta(t, 1.0, Similarity(a, b), 1e-9)
}

func TestSimilarityDisjoint(t *testing.T) {
	a := fingerprint([]string{"a", "b"}, []string{"integer"})
	b := fingerprint([]string{"c", "d"}, []string{"string"})
	assert.InDelta(t, 0.0, Similarity(a, b), 1e-9)
}

// Disjoint names with identical types score exactly the type weight, which
// sits on the cutoff and must be excluded by the strict comparison.
func TestSimilarityTypeOnlyMatchIsCutoff(t *testing.T) {
	a := fingerprint([]string{"a", "b"}, []string{"integer", "string"})
	b := fingerprint([]string{"c", "d"}, []string{"integer", "string"})
	assert.InDelta(t, 0.3, Similarity(a, b), 1e-9)
}

func TestSimilarityEmptyFingerprints(t *testing.T) {
	empty := fingerprint(nil, nil)
	assert.InDelta(t, 0.0, Similarity(empty, empty), 1e-9)
}

func TestRetrieveRanksAndFilters(t *testing.T) {
	repo := new(MockPatternRepository)
	exact := record([]string{"date", "revenue", "region"}, []string{"date", "float", "string"})
	partial := record([]string{"date", "cost"}, []string{"date", "float", "string"})
	unrelated := record([]string{"ticket", "agent"}, []string{"integer"})
	repo.On("QueryRecent", mock.Anything, 30, 20).
		Return([]*pattern.Record{partial, unrelated, exact}, nil)

	svc := NewService(repo, testConfig(), testLogger())
	pctx := pattern.Context{
		Fingerprint: fingerprint([]string{"date", "revenue", "region"}, []string{"date", "float", "string"}),
	}

	scored := svc.Retrieve(context.Background(), pctx)
	require.Len(t, scored, 2)
	assert.Equal(t, exact.ID, scored[0].Record.ID)
	assert.InDelta(t, 1.0, scored[0].Similarity, 1e-9)
	assert.Equal(t, partial.ID, scored[1].Record.ID)
	assert.Greater(t, scored[0].Similarity, scored[1].Similarity)
}

func TestRetrieveCapsAtUseLimit(t *testing.T) {
	repo := new(MockPatternRepository)
	records := make([]*pattern.Record, 8)
	for i := range records {
		records[i] = record([]string{"date", "revenue"}, []string{"date", "float"})
	}
	repo.On("QueryRecent", mock.Anything, 30, 20).Return(records, nil)

	svc := NewService(repo, testConfig(), testLogger())
	pctx := pattern.Context{
		Fingerprint: fingerprint([]string{"date", "revenue"}, []string{"date", "float"}),
	}

	scored := svc.Retrieve(context.Background(), pctx)
	assert.Len(t, scored, 5)
}

func TestRetrieveDegradesOnRepoError(t *testing.T) {
	repo := new(MockPatternRepository)
	repo.On("QueryRecent", mock.Anything, 30, 20).
		Return(nil, fmt.Errorf("connection refused"))

	svc := NewService(repo, testConfig(), testLogger())
	scored := svc.Retrieve(context.Background(), pattern.Context{
		Fingerprint: fingerprint([]string{"a"}, []string{"string"}),
	})

	assert.Empty(t, scored)
}

func TestRetrieveWithNilRepo(t *testing.T) {
	svc := NewService(nil, testConfig(), testLogger())
	scored := svc.Retrieve(context.Background(), pattern.Context{
		Fingerprint: fingerprint([]string{"a"}, []string{"string"}),
	})
	assert.Empty(t, scored)
}

func TestStoreAppendsRecord(t *testing.T) {
	repo := new(MockPatternRepository)
	repo.On("Append", mock.Anything, mock.MatchedBy(func(r *pattern.Record) bool {
		return r.ID != "" &&
			len(r.Fingerprint.ColumnNames) == 2 &&
			r.OriginalIntent == "show revenue trends" &&
			len(r.SuccessfulElements) == 1
	})).Return(nil)

	svc := NewService(repo, testConfig(), testLogger())
	svc.Store(context.Background(), pattern.Context{
		Fingerprint: fingerprint([]string{"date", "revenue"}, []string{"date", "float"}),
		UserPrompt:  "show revenue trends",
	}, []string{"line chart"}, nil, nil)

	repo.AssertExpectations(t)
}

// A failed write is logged and swallowed; the caller never sees it.
func TestStoreSwallowsRepoError(t *testing.T) {
	repo := new(MockPatternRepository)
	repo.On("Append", mock.Anything, mock.Anything).
		Return(fmt.Errorf("disk full"))

	svc := NewService(repo, testConfig(), testLogger())
	assert.NotPanics(t, func() {
		svc.Store(context.Background(), pattern.Context{
			Fingerprint: fingerprint([]string{"a"}, []string{"string"}),
		}, nil, nil, nil)
	})
}

func TestStoreWithNilRepo(t *testing.T) {
	svc := NewService(nil, testConfig(), testLogger())
	assert.NotPanics(t, func() {
		svc.Store(context.Background(), pattern.Context{
			Fingerprint: fingerprint([]string{"a"}, []string{"string"}),
		}, nil, nil, nil)
	})
}
