package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	ErrInvalidColorCount = errors.New("color count must be at least 1")
	ErrEmptyRegistry     = errors.New("empty palette registry")
)

// Color is a named RGB triple.
type Color struct {
	Name    string
	R, G, B uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("%s(#%02x%02x%02x)", c.Name, c.R, c.G, c.B)
}

// Registry is an ordered list of reference colors. Order matters: it is both
// the truncation order of Active and the tie-break order of Index.
type Registry []Color

var builtin = Registry{
	{Name: "black", R: 0, G: 0, B: 0},
	{Name: "grey", R: 127, G: 127, B: 127},
	{Name: "white", R: 255, G: 255, B: 255},
	{Name: "red", R: 255, G: 0, B: 0},
	{Name: "green", R: 0, G: 255, B: 0},
	{Name: "blue", R: 0, G: 0, B: 255},
	{Name: "yellow", R: 255, G: 255, B: 0},
	{Name: "cyan", R: 0, G: 255, B: 255},
	{Name: "magenta", R: 255, G: 0, B: 255},
}

// Default returns a copy of the built-in nine color registry.
func Default() Registry {
	return append(Registry(nil), builtin...)
}

// Active returns the first n colors. n above the registry size is clamped.
func (p Registry) Active(n int) (Registry, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColorCount, n)
	}
	if len(p) == 0 {
		return nil, ErrEmptyRegistry
	}

	n = min(n, len(p))
	return append(Registry(nil), p[:n]...), nil
}

// Index returns the position of the nearest color by squared RGB distance.
// Ties keep the earlier color.
func (p Registry) Index(r, g, b uint8) int {
	ret, bestSum := 0, math.MaxInt
	for i, v := range p {
		dr := int(r) - int(v.R)
		dg := int(g) - int(v.G)
		db := int(b) - int(v.B)
		sum := dr*dr + dg*dg + db*db
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// colors converts the registry for use with the standard image packages.
func (p Registry) colors() color.Palette {
	pal := make(color.Palette, len(p))
	for i, c := range p {
		pal[i] = c
	}
	return pal
}

// FromPalette builds a registry from arbitrary colors, naming each entry
// after its hex value. Alpha is dropped.
func FromPalette(pal color.Palette) Registry {
	reg := make(Registry, 0, len(pal))
	for _, col := range pal {
		c := color.NRGBAModel.Convert(col).(color.NRGBA)
		reg = append(reg, Color{
			Name: fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			R:    c.R,
			G:    c.G,
			B:    c.B,
		})
	}
	return reg
}
