package sim

import "math"

// StrokeLength is the full piston travel in world units. Offsets swing
// between ±StrokeLength/2 around the resting position.
const StrokeLength = 1.0

// Visual-RPM remap constants. Above the threshold the apparent rotation
// rate is compressed 10:1 so the oscillation frequency stays below the
// display refresh Nyquist limit (no stroboscopic reversal at high RPM).
const (
	visualRPMThreshold   = 1000.0
	visualRPMCompression = 0.1
)

// CylinderSpec fixes a cylinder's identity and crank phase. Specs are
// immutable once built; a cylinder-count change builds a fresh set.
type CylinderSpec struct {
	Index int
	Phase float64 // radians
}

// BuildCylinders returns count specs with phases 2πi/count, evenly
// distributing strokes across one crank revolution. count must be ≥ 1.
func BuildCylinders(count int) []CylinderSpec {
	specs := make([]CylinderSpec, count)
	for i := range specs {
		specs[i] = CylinderSpec{
			Index: i,
			Phase: 2 * math.Pi * float64(i) / float64(count),
		}
	}
	return specs
}

// VisualRPM remaps raw RPM to the rate actually animated: identity up to
// the threshold, then 10:1 compression above it. Monotonic in rpm.
func VisualRPM(rpm float64) float64 {
	if rpm <= visualRPMThreshold {
		return rpm
	}
	return visualRPMThreshold + (rpm-visualRPMThreshold)*visualRPMCompression
}

// AngularVelocity converts raw RPM to visual crank angular velocity in
// radians per second.
func AngularVelocity(rpm float64) float64 {
	return VisualRPM(rpm) * 2 * math.Pi / 60
}

// ComputeOffsets returns one axial offset per cylinder for the given crank
// angle. Pure; allocates the result slice.
func ComputeOffsets(crankAngle float64, cylinders []CylinderSpec) []float64 {
	out := make([]float64, len(cylinders))
	ComputeOffsetsInto(out, crankAngle, cylinders)
	return out
}

// ComputeOffsetsInto writes one axial offset per cylinder into dst, which
// must have len(cylinders) entries. Used on the frame path to avoid
// per-frame allocation.
func ComputeOffsetsInto(dst []float64, crankAngle float64, cylinders []CylinderSpec) {
	for i, c := range cylinders {
		dst[i] = (StrokeLength / 2) * math.Sin(crankAngle+c.Phase)
	}
}
