package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashgen/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dashgen_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Memory.WindowDays)
	assert.Equal(t, 20, cfg.Memory.FetchLimit)
	assert.Equal(t, 5, cfg.Memory.UseLimit)
	assert.InDelta(t, 0.3, cfg.Memory.MinSimilarity, 1e-9)
	assert.Equal(t, 128, cfg.Cache.Size)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dashgen_test")
	t.Setenv("PORT", "9090")
	t.Setenv("MEMORY_WINDOW_DAYS", "7")
	t.Setenv("MEMORY_MIN_SIMILARITY", "0.5")
	t.Setenv("ANALYSIS_CACHE_SIZE", "16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Memory.WindowDays)
	assert.InDelta(t, 0.5, cfg.Memory.MinSimilarity, 1e-9)
	assert.Equal(t, 16, cfg.Cache.Size)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsFetchBelowUse(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dashgen_test")
	t.Setenv("MEMORY_FETCH_LIMIT", "2")
	t.Setenv("MEMORY_USE_LIMIT", "5")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsNonPositiveCache(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dashgen_test")
	t.Setenv("ANALYSIS_CACHE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dashgen_test")
	t.Setenv("MEMORY_WINDOW_DAYS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Memory.WindowDays)
}
