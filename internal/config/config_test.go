package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Sim.Cylinders)
	assert.Equal(t, 2000.0, cfg.Sim.RPM)
	assert.Equal(t, 1.0, cfg.Sim.TimeScale)
	assert.Equal(t, 640, cfg.Render.Width)
	assert.Equal(t, 30.0, cfg.Render.FPS)
	assert.Greater(t, cfg.Render.Workers, 0)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"sim": {"cylinders": 8, "rpm": 6500}, "render": {"fps": 60}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Sim.Cylinders)
	assert.Equal(t, 6500.0, cfg.Sim.RPM)
	assert.Equal(t, 60.0, cfg.Render.FPS)
	// Untouched keys keep defaults.
	assert.Equal(t, 60.0, cfg.Sim.SpeedKph)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestResolveFlagPrecedence(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Resolve(Flags{
		Cylinders: 6,
		RPM:       0, // explicit zero wins over the default
		SpeedKph:  -1,
		TimeScale: -1,
		FPS:       24,
		Output:    "out.webp",
	})

	assert.Equal(t, 6, cfg.Sim.Cylinders)
	assert.Zero(t, cfg.Sim.RPM)
	assert.Equal(t, 60.0, cfg.Sim.SpeedKph, "unset flag keeps config value")
	assert.Equal(t, 24.0, cfg.Render.FPS)
	assert.Equal(t, "out.webp", cfg.Output.WebP)
}
