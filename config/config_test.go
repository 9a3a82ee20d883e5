package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/tsp"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, tsp.DefaultThreshold, cfg.Solver.Threshold)
	require.True(t, cfg.Solver.ExactEnabled)
	require.Equal(t, int64(2000), cfg.Solver.TimeLimitMs)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := config.Parse(`
[solver]
threshold     = 10
exact_enabled = false
policy        = "best"
time_limit_ms = 500

[log]
level = "debug"

[batch]
workers = 2
`)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Solver.Threshold)
	require.False(t, cfg.Solver.ExactEnabled)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 2, cfg.Batch.Workers)
	// Untouched keys keep their defaults.
	require.Equal(t, tsp.DefaultMaxPasses, cfg.Solver.MaxPasses)

	o, err := tsp.NewOptimizer(cfg.Solver.Options()...)
	require.NoError(t, err)
	got := o.Config()
	require.Equal(t, 10, got.Threshold)
	require.False(t, got.ExactEnabled)
	require.Equal(t, tsp.BestImprovement, got.Policy)
	require.Equal(t, 500*time.Millisecond, got.TimeLimit)
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, doc := range []string{
		"[solver]\npolicy = \"random\"",
		"[batch]\nworkers = 0",
		"[solver]\ntime_limit_ms = -1",
		"[solver\nthreshold = 1",
	} {
		_, err := config.Parse(doc)
		require.Error(t, err, doc)
	}

	_, err := config.Parse("[batch]\nworkers = -3")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvroute.toml")
	require.NoError(t, os.WriteFile(path, []byte("[solver]\nthreshold = 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Solver.Threshold)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
