package scanline

import (
	stdimage "image"
	"io"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/scanline/internal/blend"
	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
)

// Image is a pixel image with the sampling attributes used when it is a
// source or mask: transform, filter and repeat mode.
type Image = image.ImageBuf

// Format is a pixel storage format.
type Format = image.Format

// Storage formats.
const (
	FormatA8R8G8B8 = image.FormatA8R8G8B8
	FormatX8R8G8B8 = image.FormatX8R8G8B8
	FormatA8B8G8R8 = image.FormatA8B8G8R8
	FormatX8B8G8R8 = image.FormatX8B8G8R8
	FormatR5G6B5   = image.FormatR5G6B5
	FormatB5G6R5   = image.FormatB5G6R5
	FormatA1R5G5B5 = image.FormatA1R5G5B5
	FormatX1R5G5B5 = image.FormatX1R5G5B5
	FormatA4R4G4B4 = image.FormatA4R4G4B4
	FormatA8       = image.FormatA8
)

// Repeat selects how samples outside a source image are handled.
type Repeat = image.Repeat

// Repeat modes.
const (
	RepeatNone    = image.RepeatNone
	RepeatNormal  = image.RepeatNormal
	RepeatPad     = image.RepeatPad
	RepeatReflect = image.RepeatReflect
)

// Filter selects the resampling filter.
type Filter = image.Filter

// Filters.
const (
	FilterNearest  = image.FilterNearest
	FilterBilinear = image.FilterBilinear
)

// Operator is a compositing operator.
type Operator = blend.Op

// Operators.
const (
	OpClear       = blend.Clear
	OpSrc         = blend.Src
	OpDst         = blend.Dst
	OpOver        = blend.Over
	OpOverReverse = blend.OverReverse
	OpIn          = blend.In
	OpInReverse   = blend.InReverse
	OpOut         = blend.Out
	OpOutReverse  = blend.OutReverse
	OpAtop        = blend.Atop
	OpAtopReverse = blend.AtopReverse
	OpXor         = blend.Xor
	OpAdd         = blend.Add
	OpMultiply    = blend.Multiply
	OpScreen      = blend.Screen
	OpOverlay     = blend.Overlay
	OpDarken      = blend.Darken
	OpLighten     = blend.Lighten
	OpColorDodge  = blend.ColorDodge
	OpColorBurn   = blend.ColorBurn
	OpHardLight   = blend.HardLight
	OpSoftLight   = blend.SoftLight
	OpDifference  = blend.Difference
	OpExclusion   = blend.Exclusion
	OpHue         = blend.Hue
	OpSaturation  = blend.Saturation
	OpColor       = blend.Color
	OpLuminosity  = blend.Luminosity
)

// Fixed is a 16.16 fixed-point number.
type Fixed = fixed.Fixed

// Transform is an affine transform from destination to source space.
type Transform = fixed.Transform

// FixedOne is 1.0 in Fixed.
const FixedOne = fixed.One

// FixedFromInt converts an integer to Fixed.
func FixedFromInt(i int) Fixed { return fixed.FromInt(i) }

// FixedFromFloat converts a float64 to Fixed.
func FixedFromFloat(f float64) Fixed { return fixed.FromFloat(f) }

// Identity returns the identity transform.
func Identity() Transform { return fixed.Identity() }

// Translate returns a translation by (tx, ty).
func Translate(tx, ty Fixed) Transform { return fixed.Translate(tx, ty) }

// Scale returns a scale by (sx, sy) around the origin.
func Scale(sx, sy Fixed) Transform { return fixed.Scale(sx, sy) }

// TransformFromAff3 converts a float affine matrix to a Transform.
func TransformFromAff3(m f64.Aff3) Transform { return fixed.FromAff3(m) }

// NewImage allocates a zeroed image.
func NewImage(width, height int, format Format) (*Image, error) {
	return image.NewImageBuf(width, height, format)
}

// NewImageFromData wraps existing pixel storage. stride is the number of
// bytes between row starts; zero uses the tightest stride.
func NewImageFromData(data []byte, width, height int, format Format, stride int) (*Image, error) {
	if stride == 0 {
		stride = format.RowBytes(width)
	}
	return image.FromRaw(data, width, height, format, stride)
}

// NewSolid returns an image that samples as color everywhere.
func NewSolid(color uint32) *Image {
	return image.NewSolid(color)
}

// LoadImage decodes a PNG or JPEG file into an a8r8g8b8 image.
func LoadImage(path string) (*Image, error) {
	return image.LoadImage(path)
}

// DecodeImage decodes a PNG or JPEG stream into an a8r8g8b8 image.
func DecodeImage(r io.Reader) (*Image, error) {
	return image.Decode(r)
}

// FromImage converts a standard library image to an a8r8g8b8 image.
func FromImage(img stdimage.Image) *Image {
	return image.FromStdImage(img)
}

// ParseFormat returns the format with the given name, as printed by
// Format.String.
func ParseFormat(name string) (Format, bool) {
	return image.ParseFormat(name)
}
