package sim

import "math"

// Defaults applied by Sanitize when a field is missing or out of range.
const (
	DefaultCylinders = 4
	DefaultTimeScale = 1.0

	MaxCylinders = 12
	MaxRPM       = 8000
	MaxSpeedKph  = 300
	MaxTimeScale = 3.0
)

// Params holds the live user parameters of the simulation.
// Cylinders is structural: changing it forces a full engine rebuild.
// The other three only affect per-frame derived quantities.
type Params struct {
	Cylinders int     `json:"cylinders"`
	RPM       float64 `json:"rpm"`
	SpeedKph  float64 `json:"speed_kph"`
	TimeScale float64 `json:"time_scale"`
}

// Sanitize clamps the parameters into their supported ranges and replaces
// non-finite values. The simulation core assumes already-sanitized inputs;
// this is the single boundary where raw user values are made safe.
func (p Params) Sanitize() Params {
	if p.Cylinders < 1 {
		p.Cylinders = DefaultCylinders
	}
	if p.Cylinders > MaxCylinders {
		p.Cylinders = MaxCylinders
	}
	p.RPM = clampFinite(p.RPM, 0, MaxRPM, 0)
	p.SpeedKph = clampFinite(p.SpeedKph, 0, MaxSpeedKph, 0)
	p.TimeScale = clampFinite(p.TimeScale, 0, MaxTimeScale, DefaultTimeScale)
	return p
}

// clampFinite clamps v into [lo, hi], substituting def for NaN/Inf.
func clampFinite(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
