package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engine-motion-renderer/internal/mathutil"
	"engine-motion-renderer/internal/sim"
)

func TestCrankPinTracksOffsetLaw(t *testing.T) {
	base := mathutil.Vec3{1.5, 0, 0}
	throw := 0.5

	for angle := 0.0; angle < 4*math.Pi; angle += 0.1 {
		pin := CrankPin(base, angle, throw)
		// The pin's vertical travel is the piston offset law.
		assert.InDelta(t, base[1]+throw*math.Sin(angle), pin[1], 1e-9, "angle %v", angle)
		// X stays on the cylinder axis, the pin orbits in Y-Z.
		assert.InDelta(t, base[0], pin[0], 1e-9)
		radial := mathutil.Vec3{0, pin[1] - base[1], pin[2] - base[2]}.Len()
		assert.InDelta(t, throw, radial, 1e-9)
	}
}

func TestWorldMatricesChaining(t *testing.T) {
	parts := []Part{
		{Parent: -1, Local: mathutil.FromMat3Translation(mathutil.Mat3Identity(), mathutil.Vec3{1, 0, 0})},
		{Parent: 0, Local: mathutil.FromMat3Translation(mathutil.Mat3Identity(), mathutil.Vec3{0, 2, 0})},
		{Parent: 1, Local: mathutil.FromMat3Translation(mathutil.Mat3Identity(), mathutil.Vec3{0, 0, 3})},
	}
	worlds := WorldMatrices(parts)
	p := worlds[2].MulPoint(mathutil.Vec3{})
	assert.Equal(t, mathutil.Vec3{1, 2, 3}, p)
}

func TestVibrationBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		j := Vibration(rng, sim.MaxRPM)
		for k := 0; k < 3; k++ {
			assert.LessOrEqual(t, math.Abs(j[k]), maxVibration)
		}
	}

	// No shake when the engine is off.
	off := Vibration(rng, 0)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, 0, off[k], 0)
	}
}

func TestVibrationScalesWithRPM(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	half := maxVibration / 2
	for i := 0; i < 1000; i++ {
		j := Vibration(rng, sim.MaxRPM/2)
		for k := 0; k < 3; k++ {
			assert.LessOrEqual(t, math.Abs(j[k]), half)
		}
	}
}

func TestCameraProjectCentersTarget(t *testing.T) {
	cam := DefaultCamera(4)
	px, py, _ := cam.Project([]mathutil.Vec3{cam.Center}, 640, 400)
	assert.InDelta(t, 320, px[0], 1e-9)
	assert.InDelta(t, 200, py[0], 1e-9)
}

func TestCameraProjectYUp(t *testing.T) {
	cam := DefaultCamera(4)
	above := cam.Center
	above[1] += 1
	_, py, _ := cam.Project([]mathutil.Vec3{cam.Center, above}, 640, 400)
	assert.Less(t, py[1], py[0], "higher world Y maps to smaller screen Y")
}

func TestBuildMeshCounts(t *testing.T) {
	for _, n := range []int{1, 4, 12} {
		f := testFrame(n)
		meshes := Build(f)

		// road + body + block + shaft, then piston/web/rod per cylinder,
		// then one trail ribbon per cylinder.
		require.Len(t, meshes, 4+4*n, "cylinders=%d", n)

		additive := 0
		for _, m := range meshes {
			if m.Additive {
				additive++
			}
		}
		assert.Equal(t, n, additive, "one additive ribbon per cylinder")
	}
}

func TestBuildPistonFollowsOffset(t *testing.T) {
	f := testFrame(4)
	f.Offsets[2] = 0.37
	meshes := Build(f)

	// Mesh order: 4 fixed, then [piston, web, rod] per cylinder.
	piston := meshes[4+3*2]
	var sum mathutil.Vec3
	for _, v := range piston.Verts {
		sum = sum.Add(v)
	}
	center := sum.Scale(1.0 / float64(len(piston.Verts)))

	rest := sim.PistonRest(2, 4)
	assert.InDelta(t, rest[1]+0.37, center[1], 1e-9)
	assert.InDelta(t, rest[0], center[0], 1e-9)
}

func TestBuildJitterShakesBodyNotTrails(t *testing.T) {
	f := testFrame(2)
	g := testFrame(2)
	g.Jitter = mathutil.Vec3{0.01, -0.01, 0.005}

	still := Build(f)
	shaken := Build(g)

	// The body moved…
	assert.NotEqual(t, still[1].Verts[0], shaken[1].Verts[0])
	// …the trail ribbons did not.
	last := len(still) - 1
	assert.Equal(t, still[last].Verts, shaken[last].Verts)
}

func testFrame(n int) Frame {
	cyls := sim.BuildCylinders(n)
	offsets := make([]float64, n)
	trails := make([][]mathutil.Vec3, n)
	for i := range trails {
		rest := sim.PistonRest(i, n)
		pts := make([]mathutil.Vec3, sim.TrailLength)
		for k := range pts {
			pts[k] = rest
			pts[k][2] -= float64(k) * 0.05
		}
		trails[i] = pts
	}
	return Frame{
		Cylinders: cyls,
		Offsets:   offsets,
		Trails:    trails,
	}
}
