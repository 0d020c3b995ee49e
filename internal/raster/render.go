package raster

import (
	"image"

	"engine-motion-renderer/internal/geom"
	"engine-motion-renderer/internal/scene"
	"engine-motion-renderer/internal/texture"
)

// Background gradient for the illustration.
var (
	bgTop    = [3]uint8{24, 28, 38}
	bgBottom = [3]uint8{48, 52, 60}
)

// RenderScene rasterizes the scene meshes to an NRGBA frame of
// width×height, supersampled by the given factor. Opaque meshes go
// through the z-buffered shaded path; additive meshes (trail ribbons)
// are layered on top afterwards so they glow over the geometry.
func RenderScene(
	meshes []geom.Mesh,
	cam scene.Camera,
	texResolver texture.Resolver,
	width, height int,
	supersample int,
) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	rw := width * supersample
	rh := height * supersample

	fb := NewFrameBuffer(rw, rh)
	fb.FillVerticalGradient(bgTop, bgBottom)
	lc := DefaultLightConfig()

	for _, pass := range [2]bool{false, true} {
		for mi := range meshes {
			mesh := &meshes[mi]
			if mesh.Additive != pass || len(mesh.Verts) == 0 {
				continue
			}

			px, py, pz := cam.Project(mesh.Verts, rw, rh)

			var tex *image.NRGBA
			if mesh.Tex != "" && texResolver != nil {
				tex = texResolver.Resolve(mesh.Tex)
			}

			for ti, tri := range mesh.Tris {
				base := mesh.Color
				if mesh.FaceColors != nil {
					base = mesh.FaceColors[ti]
				}
				if mesh.Additive {
					RasterizeTriangleAdditive(fb, px, py, pz, tri.VI, base)
				} else {
					RasterizeTriangle(fb, px, py, pz, mesh.UVs, tri.VI, tri.TI, tex, base, &lc)
				}
			}
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, rw, rh))
	copy(img.Pix, fb.Color)
	return img
}
