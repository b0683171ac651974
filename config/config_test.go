package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joseias/StrMean/config"
	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/median"
	"github.com/joseias/StrMean/opstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap is a lookup over a fixed map.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	opts, err := config.Resolve(cfg)
	require.NoError(t, err)
	def := median.DefaultOptions()
	assert.Equal(t, def.Precision, opts.Precision)
	assert.Equal(t, def.PruneNonPositiveQuality, opts.PruneNonPositiveQuality)
	assert.Equal(t, edit.ConstCost{Ins: 1, Del: 1, Sub: 1}, edit.ConstCost{
		Ins: opts.CostModel.Insertion('a'),
		Del: opts.CostModel.Deletion('a'),
		Sub: opts.CostModel.Substitution('a', 'b'),
	})
}

func TestValidate_CustomTags(t *testing.T) {
	// Each custom tag must be registered: an undefined tag panics in Struct.
	for _, name := range opstats.Comparators.Names() {
		cfg := config.Default()
		cfg.Comparator = name
		assert.NoError(t, cfg.Validate(), name)
	}
	for _, name := range opstats.Aggregators.Names() {
		cfg := config.Default()
		cfg.Aggregator = name
		assert.NoError(t, cfg.Validate(), name)
	}
	for _, name := range edit.CostModels.Names() {
		cfg := config.Default()
		cfg.Cost.Model = name
		assert.NoError(t, cfg.Validate(), name)
	}

	cfg := config.Default()
	cfg.Cost.Model = "levenshtein"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := writeFile(t, "strmean.yaml", `
precision: 2
max_epochs: 5
comparator: quality-cost
aggregator: gain
prune_non_positive: false
cost:
  model: table
  insertion: 2
  deletion: 2
  substitution: 3
  substitutions: {ab: 0.5}
`)
	cfg, err := config.Load(path, envMap(map[string]string{
		"STRMEAN_MAX_OPS":        "7",
		"STRMEAN_TRACE_REJECTED": "true",
		"STRMEAN_PRECISION":      "",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Precision, "empty variables are ignored")
	assert.Equal(t, 5, cfg.MaxEpochs)
	assert.Equal(t, 7, cfg.MaxOps)
	assert.True(t, cfg.TraceRejected)
	assert.False(t, cfg.PruneNonPositive)
	assert.Equal(t, "quality-cost", cfg.Comparator)

	opts, err := config.Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.5, opts.CostModel.Substitution('a', 'b'))
	assert.Equal(t, 3.0, opts.CostModel.Substitution('b', 'a'))
	assert.Equal(t, 2.0, opts.CostModel.Insertion('z'))
	assert.Equal(t, 7, opts.MaxOperationsPerEpoch)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{"unknown comparator", "comparator: fastest\n", nil},
		{"unknown aggregator", "aggregator: mode\n", nil},
		{"unknown cost model", "cost: {model: levenshtein}\n", nil},
		{"negative epochs", "max_epochs: -1\n", nil},
		{"precision", "precision: 40\n", nil},
		{"log level", "log_level: loud\n", nil},
		{"negative cost", "cost: {model: unit, insertion: -1}\n", nil},
		{"pair key", "cost: {model: table, substitutions: {abc: 1}}\n", nil},
		{"symbol key", "cost: {model: table, deletions: {ab: 1}}\n", nil},
		{"env comparator", "", map[string]string{"STRMEAN_COMPARATOR": "nope"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "c.yaml", tc.yaml)
			_, err := config.Load(path, envMap(tc.env))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "c.yaml", "max_epoch: 1\n"), envMap(nil))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnv_BadValues(t *testing.T) {
	cfg := config.Default()
	err := config.FromEnv(&cfg, envMap(map[string]string{
		"STRMEAN_MAX_EPOCHS":         "ten",
		"STRMEAN_PRUNE_NON_POSITIVE": "maybe",
		"STRMEAN_COST_INSERTION":     "1,5",
	}))
	require.ErrorIs(t, err, config.ErrBadEnv)
	assert.Contains(t, err.Error(), "STRMEAN_MAX_EPOCHS")
	assert.Contains(t, err.Error(), "STRMEAN_PRUNE_NON_POSITIVE")
	assert.Contains(t, err.Error(), "STRMEAN_COST_INSERTION")
}

func TestEnvLookup_DotEnv(t *testing.T) {
	path := writeFile(t, ".env", "STRMEAN_MAX_EPOCHS=3\nSTRMEAN_LOG_LEVEL=debug\n")
	t.Setenv("STRMEAN_LOG_LEVEL", "warn")

	lookup, err := config.EnvLookup(path)
	require.NoError(t, err)

	cfg, err := config.Load("", lookup)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxEpochs)
	assert.Equal(t, "warn", cfg.LogLevel, "process environment wins")
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	_, err = config.EnvLookup(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
