package transform

import (
	"fmt"

	"picdither/raster"
)

// Overflow decides what happens when diffused error pushes a channel out of
// the 0..255 range.
type Overflow int

const (
	// Clamp saturates the channel.
	Clamp Overflow = iota
	// Wrap keeps the low byte of the sum, like a raw truncating cast.
	Wrap
)

func (o Overflow) String() string {
	switch o {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	}
	return Clamp, fmt.Errorf("unknown overflow policy %q", s)
}

func (o Overflow) add(v uint8, delta int) uint8 {
	sum := int(v) + delta
	if o == Wrap {
		return uint8(sum)
	}
	return uint8(min(max(sum, 0), 0xFF))
}

type diffusion struct {
	dx, dy int
	weight int
}

// floydSteinberg only targets pixels not yet visited in a row-major sweep.
var floydSteinberg = [...]diffusion{
	{dx: 1, dy: 0, weight: 7},
	{dx: -1, dy: 1, weight: 3},
	{dx: 0, dy: 1, weight: 5},
	{dx: 1, dy: 1, weight: 1},
}

const floydSteinbergDivisor = 16

// ditherMidpoint is compared against the channel average.
const ditherMidpoint = 128.0

// FloydSteinberg reduces r to black and white, diffusing the quantization
// error of each pixel onto its unvisited neighbors. Error aimed outside the
// raster is dropped.
func FloydSteinberg(r *raster.Raster, overflow Overflow) {
	w, h := r.Width(), r.Height()
	for y := range h {
		for x := range w {
			red, g, b := r.RGBAt(x, y)

			var level uint8
			if (float64(red)+float64(g)+float64(b))/3 > ditherMidpoint {
				level = 0xFF
			}
			r.SetRGB(x, y, level, level, level)

			er := int(red) - int(level)
			eg := int(g) - int(level)
			eb := int(b) - int(level)
			if er == 0 && eg == 0 && eb == 0 {
				continue
			}

			for _, d := range floydSteinberg {
				nx, ny := x+d.dx, y+d.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}

				// Go integer division truncates toward zero.
				nr, ng, nb := r.RGBAt(nx, ny)
				r.SetRGB(nx, ny,
					overflow.add(nr, er*d.weight/floydSteinbergDivisor),
					overflow.add(ng, eg*d.weight/floydSteinbergDivisor),
					overflow.add(nb, eb*d.weight/floydSteinbergDivisor),
				)
			}
		}
	}
}
