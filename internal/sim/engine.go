package sim

import "engine-motion-renderer/internal/mathutil"

// Piston bank layout in world units. Cylinders sit in a row along X,
// centered on the origin, oscillating along Y.
const (
	cylinderSpacing = 0.8
	pistonRestY     = 1.2
)

// PistonRest returns the resting world position of cylinder index out of
// count. Trail histories are seeded here on (re)build.
func PistonRest(index, count int) mathutil.Vec3 {
	x := (float64(index) - float64(count-1)/2) * cylinderSpacing
	return mathutil.Vec3{x, pistonRestY, 0}
}

// Engine is the simulation context: it owns the live parameters, the
// crank-angle and road-offset accumulators and the per-cylinder state.
// A single driver loop mutates it once per frame; there is no internal
// locking.
type Engine struct {
	params Params

	cylinders []CylinderSpec
	offsets   []float64
	trails    []*TrailHistory

	crankAngle float64
	roadOffset float64
}

// NewEngine builds an engine for the given (raw) parameters. Params are
// sanitized at this boundary.
func NewEngine(p Params) *Engine {
	e := &Engine{params: p.Sanitize()}
	e.rebuild()
	return e
}

// SetParams applies a parameter change. A cylinder-count change tears
// down and rebuilds all per-cylinder state atomically before the next
// Step; rpm/speed/timeScale changes take effect on the next frame with
// no structural work.
func (e *Engine) SetParams(p Params) {
	p = p.Sanitize()
	rebuild := p.Cylinders != e.params.Cylinders
	e.params = p
	if rebuild {
		e.rebuild()
	}
}

// rebuild drops the whole cylinder/trail collection and reallocates it,
// seeding every trail at its cylinder's resting position. All-or-nothing:
// no frame ever observes a partially rebuilt set.
func (e *Engine) rebuild() {
	n := e.params.Cylinders
	e.cylinders = BuildCylinders(n)
	e.offsets = make([]float64, n)
	e.trails = make([]*TrailHistory, n)
	for i := range e.trails {
		e.trails[i] = NewTrailHistory(PistonRest(i, n))
	}
	ComputeOffsetsInto(e.offsets, e.crankAngle, e.cylinders)
}

// Step advances the simulation by deltaTime seconds of wall-clock time:
// crank integration, piston offsets, trail advance, road scroll — in that
// order, synchronously.
func (e *Engine) Step(deltaTime float64) {
	e.crankAngle += AngularVelocity(e.params.RPM) * deltaTime * e.params.TimeScale
	ComputeOffsetsInto(e.offsets, e.crankAngle, e.cylinders)

	flowZ := FlowDistanceZ(e.params.SpeedKph, deltaTime, e.params.TimeScale)
	for i, t := range e.trails {
		head := PistonRest(i, e.params.Cylinders)
		head[1] += e.offsets[i]
		t.Advance(head, flowZ)
	}

	e.roadOffset += RoadOffsetDelta(e.params.SpeedKph, deltaTime, e.params.TimeScale)
}

// Restart resets the accumulators and reseeds the trails without touching
// the parameters. This is the only path that resets the crank angle.
func (e *Engine) Restart() {
	e.crankAngle = 0
	e.roadOffset = 0
	for i, t := range e.trails {
		t.Reset(PistonRest(i, e.params.Cylinders))
	}
	ComputeOffsetsInto(e.offsets, e.crankAngle, e.cylinders)
}

// Params returns the current sanitized parameters.
func (e *Engine) Params() Params { return e.params }

// Cylinders returns the current cylinder specs. Read-only to callers.
func (e *Engine) Cylinders() []CylinderSpec { return e.cylinders }

// Offsets returns the per-cylinder axial offsets computed by the last
// Step (or the build). Read-only to callers; overwritten every frame.
func (e *Engine) Offsets() []float64 { return e.offsets }

// Trail returns cylinder i's history.
func (e *Engine) Trail(i int) *TrailHistory { return e.trails[i] }

// CrankAngle returns the accumulated crank angle in radians. It grows
// unbounded; only its sine is ever taken.
func (e *Engine) CrankAngle() float64 { return e.crankAngle }

// RoadOffset returns the accumulated road-texture offset in repeat units.
func (e *Engine) RoadOffset() float64 { return e.roadOffset }
