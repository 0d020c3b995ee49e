package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engine-motion-renderer/internal/sim"
	"engine-motion-renderer/internal/texture"
)

func smallConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		OutputDir:   t.TempDir(),
		TexResolver: texture.NewCache(""),
		Width:       64,
		Height:      40,
		Supersample: 1,
		FPS:         10,
		DurationSec: 0.3,
		Workers:     2,
		Log:         zerolog.Nop(),
	}
}

func TestRenderPreset(t *testing.T) {
	cfg := smallConfig(t)
	p := Preset{Name: "cruise", Sim: sim.Params{Cylinders: 4, RPM: 2000, SpeedKph: 60, TimeScale: 1}}

	res := RenderPreset(cfg, p)
	require.True(t, res.Success, "render failed: %s", res.Error)
	assert.Equal(t, 3, res.Frames)

	info, err := os.Stat(res.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, "cruise.webp", filepath.Base(res.Path))
}

func TestRenderPresetZeroDuration(t *testing.T) {
	cfg := smallConfig(t)
	cfg.DurationSec = 0

	res := RenderPreset(cfg, Preset{Name: "empty", Sim: sim.Params{Cylinders: 4, RPM: 1000, TimeScale: 1}})
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestRunAll(t *testing.T) {
	cfg := smallConfig(t)
	presets := []Preset{
		{Name: "a", Sim: sim.Params{Cylinders: 2, RPM: 1000, SpeedKph: 30, TimeScale: 1}},
		{Name: "b", Sim: sim.Params{Cylinders: 3, RPM: 1500, SpeedKph: 50, TimeScale: 1}},
	}

	results := Run(cfg, presets)
	require.Len(t, results, 2)
	for i, r := range results {
		assert.True(t, r.Success, "preset %s: %s", presets[i].Name, r.Error)
		assert.Equal(t, presets[i].Name, r.Name)
	}
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "one", "sim": {"cylinders": 4, "rpm": 2000, "speed_kph": 60, "time_scale": 1}},
		{"name": "two", "sim": {"cylinders": 6, "rpm": 3000, "speed_kph": 90, "time_scale": 0.5}}
	]`), 0644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "one", presets[0].Name)
	assert.Equal(t, 6, presets[1].Sim.Cylinders)
	assert.Equal(t, 0.5, presets[1].Sim.TimeScale)
}

func TestLoadPresetsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPresets(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadPresets(bad)
	assert.Error(t, err)

	unnamed := filepath.Join(dir, "unnamed.json")
	require.NoError(t, os.WriteFile(unnamed, []byte(`[{"sim": {"cylinders": 4}}]`), 0644))
	_, err = LoadPresets(unnamed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestDefaultPresetsValid(t *testing.T) {
	presets := DefaultPresets()
	require.NotEmpty(t, presets)
	seen := make(map[string]bool)
	for _, p := range presets {
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.Name], "duplicate preset name %s", p.Name)
		seen[p.Name] = true

		clean := p.Sim.Sanitize()
		assert.Equal(t, p.Sim, clean, "preset %s should survive sanitization unchanged", p.Name)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	presets := []Preset{
		{Name: "ok", Sim: sim.Params{Cylinders: 4, RPM: 2000, SpeedKph: 60, TimeScale: 1}},
		{Name: "failed", Sim: sim.Params{Cylinders: 6, RPM: 3000, SpeedKph: 90, TimeScale: 1}},
	}
	results := []Result{
		{Name: "ok", Path: "ok.webp", Frames: 90, Success: true},
		{Name: "failed", Error: "boom"},
	}

	require.NoError(t, WriteManifest(path, presets, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1, "failed renders stay out of the manifest")
	assert.Equal(t, "ok", entries[0].Name)
	assert.Equal(t, "ok.webp", entries[0].Image)
	assert.Equal(t, 90, entries[0].Frames)
	assert.Equal(t, 4, entries[0].Cylinders)
}
