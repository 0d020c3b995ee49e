package geom

import "engine-motion-renderer/internal/mathutil"

// Tri holds index triples into the mesh vertex and texcoord arrays.
type Tri struct {
	VI [3]int
	TI [3]int
}

// Mesh holds renderable geometry for one scene part.
type Mesh struct {
	Verts []mathutil.Vec3
	UVs   [][2]float32
	Tris  []Tri

	// Tex names a texture for the sampler; empty means flat Color.
	Tex   string
	Color [4]uint8

	// FaceColors overrides Color per triangle when non-nil (parallel to
	// Tris). Used for intensity falloff along trail ribbons.
	FaceColors [][4]uint8

	// Additive meshes are blended on top without z-buffer writes.
	Additive bool
}

// Transform applies a 4×4 affine transform to every vertex in place.
func (m *Mesh) Transform(t mathutil.Mat4) {
	for i := range m.Verts {
		m.Verts[i] = t.MulPoint(m.Verts[i])
	}
}

// Translate shifts every vertex by d in place.
func (m *Mesh) Translate(d mathutil.Vec3) {
	for i := range m.Verts {
		m.Verts[i] = m.Verts[i].Add(d)
	}
}
