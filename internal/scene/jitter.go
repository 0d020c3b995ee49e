package scene

import (
	"math/rand"

	"engine-motion-renderer/internal/mathutil"
	"engine-motion-renderer/internal/sim"
)

// maxVibration bounds the body shake at redline, in world units.
const maxVibration = 0.02

// Vibration returns a random body offset for one frame, scaled by RPM.
// Cosmetic only: each component stays within ±maxVibration·rpm/maxRPM.
func Vibration(rng *rand.Rand, rpm float64) mathutil.Vec3 {
	amp := maxVibration * rpm / sim.MaxRPM
	return mathutil.Vec3{
		(rng.Float64()*2 - 1) * amp,
		(rng.Float64()*2 - 1) * amp,
		(rng.Float64()*2 - 1) * amp,
	}
}
