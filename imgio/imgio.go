package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"picdither/raster"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Formats lists the encoders understood by Encode.
var Formats = []string{"png", "gif", "jpeg", "bmp", "tiff"}

var extFormats = map[string]string{
	".png":  "png",
	".gif":  "gif",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
}

// FormatFor resolves the encoder for path. An empty or "auto" override picks
// it from the file extension.
func FormatFor(path, override string) (string, error) {
	if override != "" && override != "auto" {
		for _, f := range Formats {
			if f == override {
				return f, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, override)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: no encoder for extension %q", ErrUnsupportedFormat, ext)
}

// Decode reads the image at path into a raster. It also returns the name of
// the decoded format.
func Decode(path string) (*raster.Raster, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "name", path, "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}

	return raster.FromImage(img), format, nil
}

// Encode writes img to path in the given format. The image is first written
// to a temporary file next to path, which is only renamed over path once
// fully written and flushed.
func Encode(img image.Image, path, format string) (err error) {
	destDir, destName := filepath.Split(path)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	tmpName := outFile.Name()
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				slog.Error("could not remove temporary destination", "name", tmpName, "error", rmErr)
			}
		}
	}()

	if err = write(outFile, img, format); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("could not encode %s destination %q: %w", strings.ToUpper(format), path, err)
	}

	if err = outFile.Sync(); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("could not flush temporary destination %q: %w", tmpName, err)
	}
	if err = outFile.Close(); err != nil {
		return fmt.Errorf("could not close temporary destination %q: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("could not rename destination file %q: %w", path, err)
	}
	return nil
}

func write(w io.Writer, img image.Image, format string) error {
	switch format {
	case "gif":
		if pm, ok := exactPaletted(img); ok {
			img = pm
		}
		return gif.Encode(w, img, nil)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// exactPaletted indexes img against its own colors so the GIF encoder does
// not requantize it. It fails when img has more than 256 distinct colors.
func exactPaletted(img image.Image) (*image.Paletted, bool) {
	b := img.Bounds()
	dst := image.NewPaletted(b, nil)
	index := make(map[color.RGBA]uint8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			i, ok := index[c]
			if !ok {
				if len(dst.Palette) == 256 {
					return nil, false
				}
				i = uint8(len(dst.Palette))
				index[c] = i
				dst.Palette = append(dst.Palette, c)
			}
			dst.SetColorIndex(x, y, i)
		}
	}

	if len(dst.Palette) == 0 {
		dst.Palette = color.Palette{color.Black}
	}
	return dst, true
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
