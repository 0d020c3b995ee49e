package scene

import (
	"engine-motion-renderer/internal/mathutil"
)

// Camera defines the orthographic framing of the illustration.
type Camera struct {
	YawDeg   float64 // orbit around Y
	PitchDeg float64 // tilt around X, negative looks down
	Center   mathutil.Vec3
	Span     float64 // world units mapped to the frame height
}

// DefaultCamera frames the whole engine bank plus some trail runway,
// widening with cylinder count.
func DefaultCamera(cylinders int) Camera {
	span := 4.0 + 0.8*float64(cylinders)
	return Camera{
		YawDeg:   28,
		PitchDeg: -18,
		Center:   mathutil.Vec3{0, 0.8, -1.5},
		Span:     span,
	}
}

// ViewMatrix builds the 3×3 view rotation from the orbit angles. Euler
// angles route through a quaternion so combined yaw/pitch stays
// well-behaved.
func (c Camera) ViewMatrix() mathutil.Mat3 {
	q := mathutil.EulerToQuat(
		mathutil.Deg2Rad(c.PitchDeg),
		mathutil.Deg2Rad(c.YawDeg),
		0,
	)
	return mathutil.QuatToMat3(q)
}

// Project transforms world vertices to screen coordinates for a w×h
// frame. Returns screen X, screen Y (top-left origin) and view-space
// depth for z-buffering.
func (c Camera) Project(verts []mathutil.Vec3, w, h int) (px, py, pz []float64) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	R := c.ViewMatrix()
	center := R.MulVec3(c.Center)

	short := h
	if w < short {
		short = w
	}
	margin := short / 16
	scale := float64(short-2*margin) / c.Span
	halfW := float64(w) / 2
	halfH := float64(h) / 2

	for i, v := range verts {
		t := R.MulVec3(v)
		px[i] = (t[0]-center[0])*scale + halfW
		py[i] = -(t[1]-center[1])*scale + halfH
		pz[i] = t[2]
	}
	return px, py, pz
}
