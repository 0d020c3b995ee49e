package sim

// LaneMeters is the real-world length in meters represented by one unit
// of road texture repeat.
const LaneMeters = 10.0

const kphToMps = 1.0 / 3.6

// FlowDistanceZ returns the distance in meters the vehicle covers during
// one frame, which is also how far trail samples flow rearward.
func FlowDistanceZ(speedKph, deltaTime, timeScale float64) float64 {
	return speedKph * kphToMps * deltaTime * timeScale
}

// RoadOffsetDelta returns the road-texture offset advance for one frame,
// in texture-repeat units. The caller accumulates the delta; wrapping is
// left to the consumer's texture-repeat semantics.
func RoadOffsetDelta(speedKph, deltaTime, timeScale float64) float64 {
	return FlowDistanceZ(speedKph, deltaTime, timeScale) / LaneMeters
}
