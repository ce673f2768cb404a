package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointfield/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8.0, cfg.HitRadius)
	assert.Zero(t, cfg.MaxPathDistance)
	assert.Equal(t, config.FormatConsole, cfg.Log.Format)

	lvl, err := cfg.Log.ParseLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pointfield.yaml")
	doc := "hit_radius: 12.5\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.HitRadius)
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset fields keep defaults")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"bad yaml", "hit_radius: [", config.ErrParse},
		{"wrong type", "hit_radius: far", config.ErrParse},
		{"zero radius", "hit_radius: 0", config.ErrInvalid},
		{"negative radius", "hit_radius: -3", config.ErrInvalid},
		{"negative cap", "max_path_distance: -1", config.ErrInvalid},
		{"unknown level", "log:\n  level: loud", config.ErrInvalid},
		{"unknown format", "log:\n  format: xml", config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			err := config.Parse([]byte(tc.doc), &cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
