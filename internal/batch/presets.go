package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"engine-motion-renderer/internal/sim"
)

// Preset names one parameter combination to render.
type Preset struct {
	Name string     `json:"name"`
	Sim  sim.Params `json:"sim"`
}

// LoadPresets reads a JSON preset list.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	for i, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("batch: preset %d has no name", i)
		}
	}
	return presets, nil
}

// DefaultPresets covers the interesting corners of the parameter space:
// idle, cruise, highway and redline, at common cylinder counts.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "idle-4cyl", Sim: sim.Params{Cylinders: 4, RPM: 800, SpeedKph: 0, TimeScale: 1}},
		{Name: "cruise-4cyl", Sim: sim.Params{Cylinders: 4, RPM: 2200, SpeedKph: 60, TimeScale: 1}},
		{Name: "highway-6cyl", Sim: sim.Params{Cylinders: 6, RPM: 3000, SpeedKph: 120, TimeScale: 1}},
		{Name: "redline-8cyl", Sim: sim.Params{Cylinders: 8, RPM: 8000, SpeedKph: 250, TimeScale: 1}},
		{Name: "slowmo-v12", Sim: sim.Params{Cylinders: 12, RPM: 6000, SpeedKph: 200, TimeScale: 0.25}},
	}
}
