// Package image provides the pixel storage layer consumed by the compositing
// core: pixel formats, image descriptors with stride, per-format scanline
// accessors and scratch-buffer pooling.
//
// Every format stores premultiplied alpha. The working representation used
// by samplers and combiners is a premultiplied a8r8g8b8 uint32.
package image

import "strings"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatA8R8G8B8 is 32-bit ARGB stored as a little-endian uint32
	// (bytes B, G, R, A in memory).
	FormatA8R8G8B8 Format = iota

	// FormatX8R8G8B8 is FormatA8R8G8B8 with the alpha byte ignored.
	FormatX8R8G8B8

	// FormatA8B8G8R8 is 32-bit ABGR (bytes R, G, B, A in memory).
	FormatA8B8G8R8

	// FormatX8B8G8R8 is FormatA8B8G8R8 with the alpha byte ignored.
	FormatX8B8G8R8

	// FormatR5G6B5 is 16-bit RGB.
	FormatR5G6B5

	// FormatB5G6R5 is 16-bit BGR.
	FormatB5G6R5

	// FormatA1R5G5B5 is 16-bit ARGB with a 1-bit alpha.
	FormatA1R5G5B5

	// FormatX1R5G5B5 is FormatA1R5G5B5 with the alpha bit ignored.
	FormatX1R5G5B5

	// FormatA4R4G4B4 is 16-bit ARGB with 4 bits per channel.
	FormatA4R4G4B4

	// FormatA8 is 8-bit alpha only.
	FormatA8

	// formatCount is the number of storage formats (for internal use).
	formatCount
)

// Pseudo formats used by fast-path tables. They never describe storage.
const (
	// FormatNull matches an absent mask.
	FormatNull Format = 0xf0 + iota

	// FormatSolid matches a solid-color image.
	FormatSolid

	// FormatAny matches every image, including solid ones.
	FormatAny

	// FormatAny32 matches any 32 bits-per-pixel storage format.
	FormatAny32

	// FormatAny16 matches any 16 bits-per-pixel storage format.
	FormatAny16

	// FormatAny8 matches any 8 bits-per-pixel storage format.
	FormatAny8
)

// Layout describes the channel order of a format.
type Layout uint8

const (
	// LayoutARGB has red in the high color bits.
	LayoutARGB Layout = iota
	// LayoutABGR has blue in the high color bits.
	LayoutABGR
	// LayoutA has only an alpha channel.
	LayoutA
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BitsPerPixel is the storage size of one pixel.
	BitsPerPixel int

	// ABits, RBits, GBits, BBits are the channel widths.
	ABits, RBits, GBits, BBits int

	// Layout is the channel order.
	Layout Layout

	// HasAlpha indicates if alpha is stored (X formats have padding instead).
	HasAlpha bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatA8R8G8B8: {BitsPerPixel: 32, ABits: 8, RBits: 8, GBits: 8, BBits: 8, Layout: LayoutARGB, HasAlpha: true},
	FormatX8R8G8B8: {BitsPerPixel: 32, RBits: 8, GBits: 8, BBits: 8, Layout: LayoutARGB},
	FormatA8B8G8R8: {BitsPerPixel: 32, ABits: 8, RBits: 8, GBits: 8, BBits: 8, Layout: LayoutABGR, HasAlpha: true},
	FormatX8B8G8R8: {BitsPerPixel: 32, RBits: 8, GBits: 8, BBits: 8, Layout: LayoutABGR},
	FormatR5G6B5:   {BitsPerPixel: 16, RBits: 5, GBits: 6, BBits: 5, Layout: LayoutARGB},
	FormatB5G6R5:   {BitsPerPixel: 16, RBits: 5, GBits: 6, BBits: 5, Layout: LayoutABGR},
	FormatA1R5G5B5: {BitsPerPixel: 16, ABits: 1, RBits: 5, GBits: 5, BBits: 5, Layout: LayoutARGB, HasAlpha: true},
	FormatX1R5G5B5: {BitsPerPixel: 16, RBits: 5, GBits: 5, BBits: 5, Layout: LayoutARGB},
	FormatA4R4G4B4: {BitsPerPixel: 16, ABits: 4, RBits: 4, GBits: 4, BBits: 4, Layout: LayoutARGB, HasAlpha: true},
	FormatA8:       {BitsPerPixel: 8, ABits: 8, Layout: LayoutA, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BitsPerPixel / 8
}

// HasAlpha returns true if this format stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsOpaque returns true if every pixel of this format is fully opaque.
func (f Format) IsOpaque() bool {
	return f.IsValid() && !f.HasAlpha()
}

// HasColor returns true if the format stores color channels.
func (f Format) HasColor() bool {
	return f.Info().RBits > 0
}

// IsValid returns true if the format is a storage format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// Matches reports whether the table pattern f accepts the concrete format
// other. Storage formats match only themselves.
func (f Format) Matches(other Format) bool {
	switch f {
	case FormatAny:
		return true
	case FormatAny32:
		return other.IsValid() && other.BitsPerPixel() == 32
	case FormatAny16:
		return other.IsValid() && other.BitsPerPixel() == 16
	case FormatAny8:
		return other.IsValid() && other.BitsPerPixel() == 8
	default:
		return f == other
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatA8R8G8B8:
		return "a8r8g8b8"
	case FormatX8R8G8B8:
		return "x8r8g8b8"
	case FormatA8B8G8R8:
		return "a8b8g8r8"
	case FormatX8B8G8R8:
		return "x8b8g8r8"
	case FormatR5G6B5:
		return "r5g6b5"
	case FormatB5G6R5:
		return "b5g6r5"
	case FormatA1R5G5B5:
		return "a1r5g5b5"
	case FormatX1R5G5B5:
		return "x1r5g5b5"
	case FormatA4R4G4B4:
		return "a4r4g4b4"
	case FormatA8:
		return "a8"
	case FormatNull:
		return "null"
	case FormatSolid:
		return "solid"
	case FormatAny:
		return "any"
	case FormatAny32:
		return "any32"
	case FormatAny16:
		return "any16"
	case FormatAny8:
		return "any8"
	default:
		return "unknown"
	}
}

// ParseFormat returns the storage format with the given name
// (case-insensitive, as printed by String).
func ParseFormat(name string) (Format, bool) {
	for f := range formatCount {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}
