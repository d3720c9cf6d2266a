package raster

import (
	"image"
	"image/color"
	"testing"
)

func makeTestImage(rect image.Rectangle) *image.RGBA {
	img := image.NewRGBA(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x * 17) ^ (y * 31)),
				G: uint8((x * 43) + (y * 13)),
				B: uint8((x * 7) ^ (y * 11)),
				A: 255,
			})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	for _, tc := range []struct {
		name string
		rect image.Rectangle
	}{
		{name: "origin", rect: image.Rect(0, 0, 13, 7)},
		{name: "offset", rect: image.Rect(5, -3, 12, 9)},
		{name: "single", rect: image.Rect(0, 0, 1, 1)},
		{name: "empty", rect: image.Rect(0, 0, 0, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := makeTestImage(tc.rect)
			r := FromImage(src)

			if got, want := r.Bounds(), image.Rect(0, 0, tc.rect.Dx(), tc.rect.Dy()); got != want {
				t.Fatalf("bounds mismatch: got %v want %v", got, want)
			}
			for y := range r.Height() {
				for x := range r.Width() {
					want := src.RGBAAt(tc.rect.Min.X+x, tc.rect.Min.Y+y)
					red, g, b := r.RGBAt(x, y)
					if red != want.R || g != want.G || b != want.B {
						t.Fatalf("pixel (%d,%d) = %d,%d,%d want %v", x, y, red, g, b, want)
					}
				}
			}
		})
	}
}

func TestFromImage_DropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0x40})

	r := FromImage(src)
	if red, g, b := r.RGBAt(0, 0); red != 200 || g != 100 || b != 50 {
		t.Fatalf("pixel = %d,%d,%d want 200,100,50", red, g, b)
	}
	if got := r.At(0, 0).(color.RGBA); got.A != 0xFF {
		t.Fatalf("alpha = %d, want 255", got.A)
	}
}

func TestFromImage_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(1, 0, color.Gray{Y: 77})

	r := FromImage(src)
	if red, g, b := r.RGBAt(1, 0); red != 77 || g != 77 || b != 77 {
		t.Fatalf("pixel = %d,%d,%d want 77,77,77", red, g, b)
	}
}

func TestSetRGB(t *testing.T) {
	r := New(3, 2)
	r.SetRGB(2, 1, 1, 2, 3)

	if red, g, b := r.RGBAt(2, 1); red != 1 || g != 2 || b != 3 {
		t.Fatalf("pixel = %d,%d,%d want 1,2,3", red, g, b)
	}
	if red, g, b := r.RGBAt(1, 1); red != 0 || g != 0 || b != 0 {
		t.Fatalf("neighbor changed: %d,%d,%d", red, g, b)
	}
	if got := r.At(5, 5); got != (color.RGBA{}) {
		t.Fatalf("out of bounds At = %v, want zero", got)
	}
}

func TestFill(t *testing.T) {
	r := New(4, 3)
	r.Fill(9, 8, 7)
	for y := range r.Height() {
		for x := range r.Width() {
			if red, g, b := r.RGBAt(x, y); red != 9 || g != 8 || b != 7 {
				t.Fatalf("pixel (%d,%d) = %d,%d,%d", x, y, red, g, b)
			}
		}
	}
}

func TestNew_NegativeSize(t *testing.T) {
	r := New(-1, 4)
	if r.Width() != 0 || r.Height() != 4 || len(r.Pix) != 0 {
		t.Fatalf("New(-1, 4) = %dx%d, %d bytes", r.Width(), r.Height(), len(r.Pix))
	}
}
