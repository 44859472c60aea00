package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, &want, cfg)
	assert.Equal(t, 40, cfg.MinLanguageCount)
	assert.Equal(t, ";;", cfg.Separator)
	assert.Equal(t, int64(2), cfg.WeightThreshold)
	assert.Equal(t, 10, cfg.RandomWalkCount)
	assert.InDelta(t, 0.1, cfg.SmoothingFactor, 1e-12)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colexnet.yaml")
	body := "min_language_count: 5\nseparator: \"|\"\nrandom_walk_length: 4\nformat: YAML\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("COLEXNET_SEED", "42")
	t.Setenv("COLEXNET_RANDOM_WALK_LENGTH", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MinLanguageCount)
	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 7, cfg.RandomWalkLength, "environment beats the file")
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "networks", cfg.OutputDir)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("COLEXNET_SMOOTHING_FACTOR", "1.5")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	mutate := []func(*config.Config){
		func(c *config.Config) { c.MinLanguageCount = -1 },
		func(c *config.Config) { c.WeightThreshold = -1 },
		func(c *config.Config) { c.RandomWalkCount = 0 },
		func(c *config.Config) { c.RandomWalkLength = 0 },
		func(c *config.Config) { c.SmoothingFactor = -0.1 },
		func(c *config.Config) { c.Workers = -2 },
		func(c *config.Config) { c.Format = "xml" },
	}
	for i, m := range mutate {
		c := config.Default()
		m(&c)
		require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig, "case %d", i)
	}
	require.NoError(t, config.Default().Validate())
}
