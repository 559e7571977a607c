package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// LoadImage loads a PNG or JPEG image from the given file path and returns
// it as an a8r8g8b8 buffer.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a PNG or JPEG stream into an a8r8g8b8 buffer.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	buf := FromStdImage(img)
	if buf == nil {
		return nil, ErrEmptyData
	}
	return buf, nil
}

// SavePNG writes the image to path as PNG.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG encodes the image as PNG.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage converts a standard library image to an a8r8g8b8 buffer.
// Returns nil for empty images.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), FormatA8R8G8B8)
	if err != nil {
		return nil
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds() != bounds {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}

	// image.RGBA is premultiplied R, G, B, A bytes.
	for y := range buf.height {
		src := rgba.Pix[y*rgba.Stride:]
		row := buf.RowBytes(y)
		for x := range buf.width {
			p := src[x*4:]
			FormatA8R8G8B8.Store(row, x, PackARGB(p[3], p[0], p[1], p[2]))
		}
	}
	return buf
}

// ToStdImage converts the buffer to a premultiplied *image.RGBA.
func (b *ImageBuf) ToStdImage() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		dst := rgba.Pix[y*rgba.Stride:]
		for x := range b.width {
			a, r, g, bl := UnpackARGB(b.Pixel(x, y))
			dst[x*4] = r
			dst[x*4+1] = g
			dst[x*4+2] = bl
			dst[x*4+3] = a
		}
	}
	return rgba
}
