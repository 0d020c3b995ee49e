package scene

import (
	"math"

	"engine-motion-renderer/internal/geom"
	"engine-motion-renderer/internal/mathutil"
	"engine-motion-renderer/internal/sim"
)

// Layout constants for the illustration, in world units.
const (
	crankY      = 0.0
	crankThrow  = sim.StrokeLength / 2
	pistonSize  = 0.45
	rodRadius   = 0.05
	shaftRadius = 0.07
	trailWidth  = 0.12

	roadWidth = 8.0
	roadDepth = 40.0
	roadFarZ  = -10.0
)

// RoadTexture is the texture name the road plane asks the resolver for.
const RoadTexture = "road"

var (
	colBlock  = [4]uint8{70, 78, 88, 255}
	colPiston = [4]uint8{200, 205, 215, 255}
	colRod    = [4]uint8{150, 155, 165, 255}
	colShaft  = [4]uint8{110, 115, 125, 255}
	colBody   = [4]uint8{160, 60, 55, 255}
	colTrail  = [4]uint8{255, 140, 40, 200}
)

// Frame carries everything the scene needs from one simulation step.
// Trails are the per-cylinder point sequences, newest first.
type Frame struct {
	Cylinders  []sim.CylinderSpec
	Offsets    []float64
	Trails     [][]mathutil.Vec3
	CrankAngle float64
	RoadOffset float64
	Jitter     mathutil.Vec3
}

// Build assembles the renderable meshes for one frame: road plane, car
// body and engine block (shaken by the jitter offset), per-cylinder
// piston/rod/crank linkage, and additive trail ribbons. Opaque meshes
// come first; additive ones last so the renderer can layer them.
func Build(f Frame) []geom.Mesh {
	n := len(f.Cylinders)
	meshes := make([]geom.Mesh, 0, 4+4*n)

	// Road scrolls toward the viewer as the offset accumulates. The
	// accumulator grows unbounded; wrap here so UV float32 precision
	// holds up over long animations.
	meshes = append(meshes, geom.PlaneXZ(
		mathutil.Vec3{0, -0.8, roadFarZ},
		roadWidth, roadDepth,
		RoadTexture,
		roadDepth/sim.LaneMeters,
		math.Mod(f.RoadOffset, 1),
	))

	bankWidth := float64(n)*0.8 + 0.4

	body := geom.Box(
		mathutil.Vec3{0, -0.35, 0},
		mathutil.Vec3{bankWidth + 1.2, 0.5, 2.4},
		colBody,
	)
	body.Translate(f.Jitter)
	meshes = append(meshes, body)

	block := geom.Box(
		mathutil.Vec3{0, 0.55, 0},
		mathutil.Vec3{bankWidth, 0.9, 1.0},
		colBlock,
	)
	block.Translate(f.Jitter)
	meshes = append(meshes, block)

	// Crankshaft main axis across the bank.
	shaft := geom.Tube(
		mathutil.Vec3{-bankWidth / 2, crankY, 0},
		mathutil.Vec3{bankWidth / 2, crankY, 0},
		shaftRadius, 10, colShaft,
	)
	shaft.Translate(f.Jitter)
	meshes = append(meshes, shaft)

	for i, c := range f.Cylinders {
		rest := sim.PistonRest(i, n)
		pistonPos := rest
		pistonPos[1] += f.Offsets[i]

		piston := geom.Box(
			pistonPos,
			mathutil.Vec3{pistonSize, pistonSize, pistonSize},
			colPiston,
		)
		piston.Translate(f.Jitter)
		meshes = append(meshes, piston)

		pinBase := mathutil.Vec3{rest[0], crankY, 0}
		pin := CrankPin(pinBase, f.CrankAngle+c.Phase, crankThrow)

		web := geom.Tube(pinBase, pin, rodRadius, 8, colShaft)
		web.Translate(f.Jitter)
		meshes = append(meshes, web)

		rodTop := pistonPos
		rodTop[1] -= pistonSize / 2
		rod := geom.Tube(pin, rodTop, rodRadius, 8, colRod)
		rod.Translate(f.Jitter)
		meshes = append(meshes, rod)
	}

	// Trails render last, additively, and do not shake with the body.
	for _, points := range f.Trails {
		meshes = append(meshes, geom.Ribbon(points, trailWidth, colTrail))
	}

	return meshes
}
