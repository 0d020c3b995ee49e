package geom

import (
	"math"

	"engine-motion-renderer/internal/mathutil"
)

// Box returns an axis-aligned box mesh centered at center.
func Box(center, size mathutil.Vec3, color [4]uint8) Mesh {
	hx, hy, hz := size[0]/2, size[1]/2, size[2]/2
	verts := []mathutil.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	for i := range verts {
		verts[i] = verts[i].Add(center)
	}

	quads := [6][4]int{
		{0, 1, 2, 3}, // back
		{5, 4, 7, 6}, // front
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	tris := make([]Tri, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Tri{VI: [3]int{q[0], q[1], q[2]}},
			Tri{VI: [3]int{q[0], q[2], q[3]}},
		)
	}

	return Mesh{Verts: verts, Tris: tris, Color: color}
}

// Tube returns a cylinder mesh of the given radius from p0 to p1, with an
// open-ended ring of segments sides. Degenerate spans collapse to a point
// and produce no triangles.
func Tube(p0, p1 mathutil.Vec3, radius float64, segments int, color [4]uint8) Mesh {
	axis := p1.Sub(p0)
	length := axis.Len()
	if length < 1e-9 || segments < 3 {
		return Mesh{Color: color}
	}
	axis = axis.Scale(1 / length)

	// Build an orthonormal frame around the axis.
	ref := mathutil.Vec3{0, 1, 0}
	if math.Abs(axis.Dot(ref)) > 0.99 {
		ref = mathutil.Vec3{1, 0, 0}
	}
	u := axis.Cross(ref).Normalize()
	v := axis.Cross(u)

	verts := make([]mathutil.Vec3, 0, segments*2)
	for s := 0; s < segments; s++ {
		a := 2 * math.Pi * float64(s) / float64(segments)
		rim := u.Scale(radius * math.Cos(a)).Add(v.Scale(radius * math.Sin(a)))
		verts = append(verts, p0.Add(rim), p1.Add(rim))
	}

	tris := make([]Tri, 0, segments*2)
	for s := 0; s < segments; s++ {
		i0 := s * 2
		i1 := i0 + 1
		j0 := ((s + 1) % segments) * 2
		j1 := j0 + 1
		tris = append(tris,
			Tri{VI: [3]int{i0, j0, j1}},
			Tri{VI: [3]int{i0, j1, i1}},
		)
	}

	return Mesh{Verts: verts, Tris: tris, Color: color}
}

// PlaneXZ returns a ground plane centered at center spanning width along X
// and depth along Z, textured with tex. The V coordinate runs along Z with
// vRepeat repeats across the plane, shifted by vOffset — shifting vOffset
// scrolls the texture toward the viewer.
func PlaneXZ(center mathutil.Vec3, width, depth float64, tex string, vRepeat, vOffset float64) Mesh {
	hx, hz := width/2, depth/2
	verts := []mathutil.Vec3{
		center.Add(mathutil.Vec3{-hx, 0, -hz}),
		center.Add(mathutil.Vec3{hx, 0, -hz}),
		center.Add(mathutil.Vec3{hx, 0, hz}),
		center.Add(mathutil.Vec3{-hx, 0, hz}),
	}
	uvs := [][2]float32{
		{0, float32(vOffset)},
		{1, float32(vOffset)},
		{1, float32(vOffset + vRepeat)},
		{0, float32(vOffset + vRepeat)},
	}
	tris := []Tri{
		{VI: [3]int{0, 1, 2}, TI: [3]int{0, 1, 2}},
		{VI: [3]int{0, 2, 3}, TI: [3]int{0, 2, 3}},
	}
	return Mesh{Verts: verts, UVs: uvs, Tris: tris, Tex: tex, Color: [4]uint8{90, 90, 95, 255}}
}

// Ribbon returns an additive streak mesh following points (newest first),
// extruded width wide along X. Face intensity falls off linearly from the
// head so the streak fades with sample age.
func Ribbon(points []mathutil.Vec3, width float64, color [4]uint8) Mesh {
	n := len(points)
	if n < 2 {
		return Mesh{Color: color, Additive: true}
	}
	half := width / 2

	verts := make([]mathutil.Vec3, 0, n*2)
	for _, p := range points {
		verts = append(verts,
			p.Add(mathutil.Vec3{-half, 0, 0}),
			p.Add(mathutil.Vec3{half, 0, 0}),
		)
	}

	tris := make([]Tri, 0, (n-1)*2)
	faceColors := make([][4]uint8, 0, (n-1)*2)
	for s := 0; s < n-1; s++ {
		i0, i1 := s*2, s*2+1
		j0, j1 := i0+2, i1+2
		tris = append(tris,
			Tri{VI: [3]int{i0, i1, j1}},
			Tri{VI: [3]int{i0, j1, j0}},
		)

		fade := 1 - float64(s)/float64(n-1)
		fc := [4]uint8{
			uint8(float64(color[0]) * fade),
			uint8(float64(color[1]) * fade),
			uint8(float64(color[2]) * fade),
			color[3],
		}
		faceColors = append(faceColors, fc, fc)
	}

	return Mesh{Verts: verts, Tris: tris, Color: color, FaceColors: faceColors, Additive: true}
}
