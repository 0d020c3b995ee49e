package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one rendered preset in the output manifest.
type ManifestEntry struct {
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Cylinders int     `json:"cylinders"`
	RPM       float64 `json:"rpm"`
	SpeedKph  float64 `json:"speed_kph"`
	TimeScale float64 `json:"time_scale"`
	Frames    int     `json:"frames"`
}

// WriteManifest writes manifest.json describing the successful renders.
func WriteManifest(path string, presets []Preset, results []Result) error {
	entries := make([]ManifestEntry, 0, len(presets))
	for i, p := range presets {
		if !results[i].Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:      p.Name,
			Image:     fmt.Sprintf("%s.webp", p.Name),
			Cylinders: p.Sim.Cylinders,
			RPM:       p.Sim.RPM,
			SpeedKph:  p.Sim.SpeedKph,
			TimeScale: p.Sim.TimeScale,
			Frames:    results[i].Frames,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
