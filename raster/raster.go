package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// bytes per pixel: r, g, b
const bpp = 3

// Raster is a dense, mutable RGB image whose bounds start at (0, 0).
type Raster struct {
	// Pix holds the image's pixels in R, G, B order. The pixel at (x, y)
	// starts at Pix[y*Stride + x*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

var _ image.Image = &Raster{}

func New(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	return &Raster{
		Pix:    make([]uint8, width*height*bpp),
		Stride: width * bpp,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// FromImage copies img into a new raster anchored at the origin. Alpha is
// discarded: the unpremultiplied color channels are kept as they are.
func FromImage(img image.Image) *Raster {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())

	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect != dr {
		src = image.NewNRGBA(dr)
		draw.Draw(src, dr, img, sr.Min, draw.Src)
	}

	r := New(dr.Dx(), dr.Dy())
	for y := range dr.Dy() {
		in := src.Pix[y*src.Stride : y*src.Stride+dr.Dx()*4]
		out := r.Pix[y*r.Stride : y*r.Stride+dr.Dx()*bpp]
		for x := range dr.Dx() {
			copy(out[x*bpp:x*bpp+bpp], in[x*4:x*4+3])
		}
	}
	return r
}

func (r *Raster) Width() int  { return r.Rect.Dx() }
func (r *Raster) Height() int { return r.Rect.Dy() }

func (r *Raster) ColorModel() color.Model { return color.RGBAModel }

func (r *Raster) Bounds() image.Rectangle { return r.Rect }

func (r *Raster) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(r.Rect)) {
		return color.RGBA{}
	}
	red, g, b := r.RGBAt(x, y)
	return color.RGBA{R: red, G: g, B: b, A: 0xFF}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return y*r.Stride + x*bpp
}

func (r *Raster) RGBAt(x, y int) (red, g, b uint8) {
	i := r.PixOffset(x, y)
	s := r.Pix[i : i+bpp : i+bpp]
	return s[0], s[1], s[2]
}

func (r *Raster) SetRGB(x, y int, red, g, b uint8) {
	i := r.PixOffset(x, y)
	s := r.Pix[i : i+bpp : i+bpp]
	s[0], s[1], s[2] = red, g, b
}

// Fill sets every pixel to the same color.
func (r *Raster) Fill(red, g, b uint8) {
	for i := 0; i < len(r.Pix); i += bpp {
		r.Pix[i], r.Pix[i+1], r.Pix[i+2] = red, g, b
	}
}

// Opaque reports that the raster has no transparent pixels, which lets
// encoders such as image/png skip the alpha channel.
func (r *Raster) Opaque() bool { return true }
