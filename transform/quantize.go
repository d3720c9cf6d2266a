package transform

import (
	"picdither/palette"
	"picdither/raster"
)

// Quantize replaces every pixel with its nearest color in pal.
func Quantize(r *raster.Raster, pal palette.Registry) error {
	if len(pal) == 0 {
		return palette.ErrEmptyRegistry
	}

	for y := range r.Height() {
		for x := range r.Width() {
			c := pal[pal.Index(r.RGBAt(x, y))]
			r.SetRGB(x, y, c.R, c.G, c.B)
		}
	}
	return nil
}
