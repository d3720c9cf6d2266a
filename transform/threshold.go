package transform

import "picdither/raster"

// Luminance is the plain channel sum, on a 0..765 scale.
func Luminance(r, g, b uint8) int {
	return int(r) + int(g) + int(b)
}

// lumaMidpoint splits the 0..765 luminance scale in half. Pixels strictly
// above it become white.
const lumaMidpoint = 383

// Binarize maps every pixel to pure black or pure white by luminance.
func Binarize(r *raster.Raster) {
	for y := range r.Height() {
		for x := range r.Width() {
			if Luminance(r.RGBAt(x, y)) > lumaMidpoint {
				r.SetRGB(x, y, 0xFF, 0xFF, 0xFF)
			} else {
				r.SetRGB(x, y, 0, 0, 0)
			}
		}
	}
}
