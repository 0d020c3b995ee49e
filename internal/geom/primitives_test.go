package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engine-motion-renderer/internal/mathutil"
)

func TestBox(t *testing.T) {
	m := Box(mathutil.Vec3{1, 2, 3}, mathutil.Vec3{2, 4, 6}, [4]uint8{1, 2, 3, 255})
	require.Len(t, m.Verts, 8)
	require.Len(t, m.Tris, 12)
	assert.False(t, m.Additive)

	// Vertex average is the center, extents span the size.
	var sum mathutil.Vec3
	for _, v := range m.Verts {
		sum = sum.Add(v)
	}
	center := sum.Scale(1.0 / 8)
	assert.InDelta(t, 1, center[0], 1e-12)
	assert.InDelta(t, 2, center[1], 1e-12)
	assert.InDelta(t, 3, center[2], 1e-12)

	for _, v := range m.Verts {
		assert.InDelta(t, 1, absf(v[0]-1), 1e-12)
		assert.InDelta(t, 2, absf(v[1]-2), 1e-12)
		assert.InDelta(t, 3, absf(v[2]-3), 1e-12)
	}
}

func TestTube(t *testing.T) {
	m := Tube(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 2, 0}, 0.5, 8, [4]uint8{9, 9, 9, 255})
	require.Len(t, m.Verts, 16)
	require.Len(t, m.Tris, 16)

	// Every rim vertex sits at the radius from the axis.
	for _, v := range m.Verts {
		d := mathutil.Vec3{v[0], 0, v[2]}.Len()
		assert.InDelta(t, 0.5, d, 1e-9)
	}
}

func TestTubeDegenerate(t *testing.T) {
	p := mathutil.Vec3{1, 1, 1}
	m := Tube(p, p, 0.5, 8, [4]uint8{})
	assert.Empty(t, m.Tris)
}

func TestPlaneXZScrollOffset(t *testing.T) {
	m := PlaneXZ(mathutil.Vec3{}, 10, 40, "road", 4, 0.25)
	require.Len(t, m.Verts, 4)
	require.Len(t, m.UVs, 4)
	assert.Equal(t, "road", m.Tex)

	// Near edge starts at the offset; far edge adds the repeat count.
	assert.InDelta(t, 0.25, float64(m.UVs[0][1]), 1e-6)
	assert.InDelta(t, 4.25, float64(m.UVs[2][1]), 1e-6)
}

func TestRibbonFade(t *testing.T) {
	points := []mathutil.Vec3{{0, 0, 0}, {0, 0, -1}, {0, 0, -2}, {0, 0, -3}}
	m := Ribbon(points, 0.2, [4]uint8{200, 100, 50, 255})

	require.Len(t, m.Verts, 8)
	require.Len(t, m.Tris, 6)
	require.Len(t, m.FaceColors, 6)
	assert.True(t, m.Additive)

	// Intensity never increases with sample age.
	for i := 2; i < len(m.FaceColors); i += 2 {
		assert.LessOrEqual(t, m.FaceColors[i][0], m.FaceColors[i-2][0])
	}
	// Head segment carries full intensity, the tail is clearly dimmer.
	assert.Equal(t, uint8(200), m.FaceColors[0][0])
	assert.Less(t, m.FaceColors[len(m.FaceColors)-1][0], uint8(100))
}

func TestRibbonTooShort(t *testing.T) {
	m := Ribbon([]mathutil.Vec3{{1, 2, 3}}, 0.2, [4]uint8{})
	assert.Empty(t, m.Tris)
	assert.True(t, m.Additive)
}

func TestMeshTranslate(t *testing.T) {
	m := Box(mathutil.Vec3{}, mathutil.Vec3{1, 1, 1}, [4]uint8{})
	m.Translate(mathutil.Vec3{5, 0, 0})
	for _, v := range m.Verts {
		assert.InDelta(t, 5, v[0], 0.51)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
