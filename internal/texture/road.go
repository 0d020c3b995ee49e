package texture

import (
	"image"
	"math/rand"
)

// Road texture layout, in texel fractions of the tile width.
const (
	roadTileSize  = 256
	laneLineWidth = 0.02
	laneLineHalfV = 0.35 // dashed: line drawn for v in [0, laneLineHalfV)
	edgeLinePos   = 0.06
	asphaltNoise  = 14
)

// GenerateRoad synthesizes one repeatable asphalt tile: noisy gray base,
// solid edge lines and a dashed center line. One vertical repeat of the
// tile represents LaneMeters of real road, so the dash cadence reads as
// distance. Deterministic: the noise uses a fixed seed.
func GenerateRoad() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, roadTileSize, roadTileSize))
	rng := rand.New(rand.NewSource(42))

	for y := 0; y < roadTileSize; y++ {
		v := float64(y) / roadTileSize
		for x := 0; x < roadTileSize; x++ {
			u := float64(x) / roadTileSize

			// Asphalt base with speckle
			g := 72 + rng.Intn(asphaltNoise)
			r, gb, b := uint8(g), uint8(g), uint8(g+4)

			// Solid edge lines
			if u < edgeLinePos || u > 1-edgeLinePos {
				r, gb, b = 230, 230, 225
			}

			// Dashed center line
			if u > 0.5-laneLineWidth && u < 0.5+laneLineWidth && v < laneLineHalfV {
				r, gb, b = 235, 215, 120
			}

			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = gb
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}
