package image

import (
	"errors"

	"github.com/gogpu/scanline/internal/fixed"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not a storage format.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrSingularTransform is returned when a transform cannot be inverted.
	ErrSingularTransform = errors.New("image: singular transform")
)

// Repeat selects how sample coordinates outside the image are handled.
type Repeat uint8

const (
	// RepeatNone treats everything outside the image as transparent.
	RepeatNone Repeat = iota
	// RepeatNormal tiles the image.
	RepeatNormal
	// RepeatPad extends the edge pixels.
	RepeatPad
	// RepeatReflect tiles the image, mirroring every other tile.
	RepeatReflect

	// RepeatCover is never stored on an image. Pipelines pass it to samplers
	// when every sample is known to fall inside the image.
	RepeatCover Repeat = 0xff
)

// String returns the repeat name.
func (r Repeat) String() string {
	switch r {
	case RepeatNone:
		return "none"
	case RepeatNormal:
		return "normal"
	case RepeatPad:
		return "pad"
	case RepeatReflect:
		return "reflect"
	case RepeatCover:
		return "cover"
	default:
		return "unknown"
	}
}

// Filter selects the sampling filter.
type Filter uint8

const (
	// FilterNearest picks the pixel containing the sample point.
	FilterNearest Filter = iota
	// FilterBilinear blends the four pixels around the sample point.
	FilterBilinear
)

// String returns the filter name.
func (f Filter) String() string {
	if f == FilterBilinear {
		return "bilinear"
	}
	return "nearest"
}

// ImageBuf describes a rectangular pixel image: storage, stride, pixel
// format and the sampling attributes (transform, filter, repeat) used when
// it acts as a source or mask.
//
// A solid image has no storage; every sample returns its color.
//
// Thread safety: ImageBuf is safe for concurrent read access. Setters and
// pixel writes require external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format

	transform *fixed.Transform
	filter    Filter
	repeat    Repeat

	solid bool
	color uint32
}

// NewImageBuf creates a new image buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	return NewImageBufWithStride(width, height, format, format.RowBytes(width))
}

// NewImageBufWithStride creates a new image buffer with custom stride for alignment.
// Stride must be at least format.RowBytes(width).
func NewImageBufWithStride(width, height int, format Format, stride int) (*ImageBuf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}
	// The last row only needs its pixel bytes.
	required := stride*(height-1) + format.RowBytes(width)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func validate(width, height int, format Format, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return ErrInvalidStride
	}
	return nil
}

// NewSolid returns a solid image of the given premultiplied a8r8g8b8 color.
// Solid images report a 1x1 size and ignore transform, filter and repeat.
func NewSolid(color uint32) *ImageBuf {
	return &ImageBuf{
		width:  1,
		height: 1,
		format: FormatA8R8G8B8,
		repeat: RepeatNormal,
		solid:  true,
		color:  color,
	}
}

// Clone creates a deep copy of the image buffer, including its attributes.
func (b *ImageBuf) Clone() *ImageBuf {
	c := *b
	if b.data != nil {
		c.data = make([]byte, len(b.data))
		copy(c.data, b.data)
	}
	if b.transform != nil {
		t := *b.transform
		c.transform = &t
	}
	return &c
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes between the starts of adjacent rows.
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the underlying pixel storage. Nil for solid images.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns the storage of row y, starting at its first pixel.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if b.solid || y < 0 || y >= b.height {
		return nil
	}
	return b.data[y*b.stride:]
}

// Pixel returns the working pixel at (x, y), or 0 outside the image.
func (b *ImageBuf) Pixel(x, y int) uint32 {
	if b.solid {
		return b.color
	}
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.format.Load(b.data[y*b.stride:], x)
}

// SetPixel stores the working pixel v at (x, y).
func (b *ImageBuf) SetPixel(x, y int, v uint32) error {
	if b.solid || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return ErrOutOfBounds
	}
	b.format.Store(b.data[y*b.stride:], x, v)
	return nil
}

// Clear sets all pixels to zero.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets every pixel to the working pixel v.
func (b *ImageBuf) Fill(v uint32) {
	if b.solid {
		b.color = v
		return
	}
	for y := range b.height {
		row := b.data[y*b.stride:]
		for x := range b.width {
			b.format.Store(row, x, v)
		}
	}
}

// SubImage returns a view into a rectangular region of the image.
// The returned ImageBuf shares the underlying data with the original.
// Returns nil if the bounds are invalid or outside the image.
func (b *ImageBuf) SubImage(x, y, width, height int) *ImageBuf {
	if b.solid || x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	offset := y*b.stride + x*bpp
	end := (y+height-1)*b.stride + (x+width)*bpp
	return &ImageBuf{
		data:   b.data[offset:end],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
		filter: b.filter,
		repeat: b.repeat,
	}
}

// IsSolid reports whether the image is a solid color.
func (b *ImageBuf) IsSolid() bool {
	return b.solid
}

// SolidColor returns the color of a solid image.
func (b *ImageBuf) SolidColor() uint32 {
	return b.color
}

// Transform returns the image's sampling transform, or nil for identity.
func (b *ImageBuf) Transform() *fixed.Transform {
	return b.transform
}

// SetTransform sets the transform mapping destination space to image
// space. A nil or identity transform clears it.
func (b *ImageBuf) SetTransform(t *fixed.Transform) error {
	if t == nil || t.IsIdentity() {
		b.transform = nil
		return nil
	}
	if _, ok := t.Invert(); !ok {
		return ErrSingularTransform
	}
	c := *t
	b.transform = &c
	return nil
}

// Filter returns the sampling filter.
func (b *ImageBuf) Filter() Filter {
	return b.filter
}

// SetFilter sets the sampling filter.
func (b *ImageBuf) SetFilter(f Filter) {
	b.filter = f
}

// Repeat returns the repeat mode.
func (b *ImageBuf) Repeat() Repeat {
	return b.repeat
}

// SetRepeat sets the repeat mode. RepeatCover is rejected silently.
func (b *ImageBuf) SetRepeat(r Repeat) {
	if r > RepeatReflect {
		return
	}
	b.repeat = r
}

// IsOpaque reports whether every sample of the image is opaque. Sampling
// with RepeatNone outside the image produces transparent pixels, so only
// formats without alpha under a covering repeat count.
func (b *ImageBuf) IsOpaque() bool {
	if b.solid {
		return b.color>>24 == 0xff
	}
	return b.format.IsOpaque() && b.repeat != RepeatNone
}

// ByteSize returns the total size of the image data in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
