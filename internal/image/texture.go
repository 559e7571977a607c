package image

import "github.com/gogpu/gputypes"

// TextureFormat returns the GPU texture format with the same memory layout
// as f, or gputypes.TextureFormatUndefined when none exists.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatA8R8G8B8, FormatX8R8G8B8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatA8B8G8R8, FormatX8B8G8R8:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatA8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatFromTexture maps a GPU texture format to the storage format sharing
// its layout.
func FormatFromTexture(t gputypes.TextureFormat) (Format, bool) {
	switch t {
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatA8R8G8B8, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatA8B8G8R8, true
	case gputypes.TextureFormatR8Unorm:
		return FormatA8, true
	default:
		return 0, false
	}
}
