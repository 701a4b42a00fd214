package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planegraph/builder"
	"github.com/katalvlaran/planegraph/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, builder.DefaultRadius, cfg.Radius)
	assert.Equal(t, builder.DefaultSide, cfg.Side)
	assert.Equal(t, config.DefaultStorageDir, cfg.StorageDir)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("radius: 5\nseed: 42\njitter: 0.5\nstorage_dir: out\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Radius)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.5, cfg.Jitter)
	assert.Equal(t, "out", cfg.StorageDir)
	assert.Equal(t, builder.DefaultSide, cfg.Side, "absent keys keep defaults")
	assert.Equal(t, builder.DefaultEdgeAttempts, cfg.EdgeAttempts)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name, yaml string
		field      string
	}{
		{"zero radius", "radius: 0\n", "radius"},
		{"side below radius", "radius: 50\nside: 40\n", "side"},
		{"jitter one", "jitter: 1\n", "jitter"},
		{"no attempts", "edge_attempts: 0\n", "edge_attempts"},
		{"empty dir", "storage_dir: \"\"\n", "storage_dir"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	_, err := config.Decode(strings.NewReader("radius: 5\ncolour: red\n"))
	assert.Error(t, err, "unknown keys are rejected")
	assert.NotErrorIs(t, err, config.ErrInvalid)

	_, err = config.Decode(strings.NewReader("radius: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBuilderOptions_MatchExplicit(t *testing.T) {
	cfg := config.Default()
	cfg.Radius, cfg.Side, cfg.Jitter = 8, 400, 0.3

	a, err := builder.BuildGraph(nil, cfg.BuilderOptions(17), builder.Planar(15))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(17), builder.WithRadius(8), builder.WithSide(400), builder.WithJitter(0.3),
	}, builder.Planar(15))
	require.NoError(t, err)

	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}
