package raster

import (
	"image"
	"math"
)

// RasterizeTriangle rasterizes a single triangle with optional texture
// mapping, z-buffer, flat shading and the sRGB→linear→ACES→sRGB pipeline.
//
// This is the HOT PATH — designed for zero allocation in the inner loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float32,
	vi [3]int, ti [3]int,
	tex *image.NRGBA,
	base [4]uint8,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	nuv := len(uvs)
	hasUV := tex != nil
	for _, i := range ti {
		if i < 0 || i >= nuv {
			hasUV = false
			break
		}
	}

	var u0, v0uv, u1, v1uv, u2, v2uv float64
	if hasUV {
		u0, v0uv = float64(uvs[ti[0]][0]), float64(uvs[ti[0]][1])
		u1, v1uv = float64(uvs[ti[1]][0]), float64(uvs[ti[1]][1])
		u2, v2uv = float64(uvs[ti[2]][0]), float64(uvs[ti[2]][1])
	}

	shade, ok := faceShade(x0, y0, z0, x1, y1, z1, x2, y2, z2, lc)
	if !ok {
		return
	}

	minX, maxX, minY, maxY, ok := clipBounds(fb, x0, y0, x1, y1, x2, y2)
	if !ok {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	exposure := lc.Exposure
	invGamma := lc.InvGamma
	width := fb.Width

	// Pixel loop — zero allocations
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := base[0], base[1], base[2], base[3]
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0uv + w1*v1uv + w2*v2uv
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode → shade → ACES → sRGB encode
			sr := srgbToLinear[cr] * shade * exposure
			sg := srgbToLinear[cg] * shade * exposure
			sb := srgbToLinear[cb] * shade * exposure

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math.Pow(ACESTonemap(sr), invGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math.Pow(ACESTonemap(sg), invGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math.Pow(ACESTonemap(sb), invGamma) * 255)
			fb.Color[pxIdx+3] = 255
		}
	}
}

// RasterizeTriangleAdditive renders a triangle with additive blending.
// No z-buffer check/write — the face color is ADDED to existing pixels,
// weighted by its alpha. Used for the motion-trail ribbons.
func RasterizeTriangleAdditive(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	base [4]uint8,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0 := px[vi[0]], py[vi[0]]
	x1, y1 := px[vi[1]], py[vi[1]]
	x2, y2 := px[vi[2]], py[vi[2]]

	minX, maxX, minY, maxY, ok := clipBounds(fb, x0, y0, x1, y1, x2, y2)
	if !ok {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	weight := float64(base[3]) / 255.0
	addR := float64(base[0]) * weight
	addG := float64(base[1]) * weight
	addB := float64(base[2]) * weight
	width := fb.Width

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			pxIdx := (rowOff + sx) * 4
			fb.Color[pxIdx] = addSat(fb.Color[pxIdx], addR)
			fb.Color[pxIdx+1] = addSat(fb.Color[pxIdx+1], addG)
			fb.Color[pxIdx+2] = addSat(fb.Color[pxIdx+2], addB)
			fb.Color[pxIdx+3] = 255
		}
	}
}

// faceShade computes the flat-shading scalar from the face normal.
// Returns ok=false for degenerate faces.
func faceShade(x0, y0, z0, x1, y1, z1, x2, y2, z2 float64, lc *LightConfig) (float64, bool) {
	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return 0, false
	}
	invNL := 1.0 / nl
	nx *= invNL
	ny *= invNL
	nz *= invNL

	ndlMain := math.Abs(nx*lc.LightDir[0] + ny*lc.LightDir[1] + nz*lc.LightDir[2])
	ndlRim := math.Abs(nx*lc.RimDir[0] + ny*lc.RimDir[1] + nz*lc.RimDir[2])
	hemi := (1.0-math.Abs(ny))*0.5 + 0.5
	ndh := nx*lc.HalfMain[0] + ny*lc.HalfMain[1] + nz*lc.HalfMain[2]
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec, true
}

// clipBounds intersects the triangle's bounding box with the framebuffer.
// Returns ok=false when the triangle lies fully outside.
func clipBounds(fb *FrameBuffer, x0, y0, x1, y1, x2, y2 float64) (minX, maxX, minY, maxY int, ok bool) {
	minX = int(math.Min(math.Min(x0, x1), x2))
	maxX = int(math.Max(math.Max(x0, x1), x2)) + 1
	minY = int(math.Min(math.Min(y0, y1), y2))
	maxY = int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return 0, 0, 0, 0, false
	}
	return minX, maxX, minY, maxY, true
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func addSat(c uint8, add float64) uint8 {
	v := float64(c) + add
	if v > 255 {
		return 255
	}
	return uint8(v)
}
