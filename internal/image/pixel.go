package image

import "encoding/binary"

// PackARGB packs premultiplied channels into an a8r8g8b8 working pixel.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits an a8r8g8b8 working pixel into its channels.
func UnpackARGB(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Premultiply converts straight-alpha channels to a premultiplied pixel.
func Premultiply(r, g, b, a uint8) uint32 {
	if a == 255 {
		return PackARGB(a, r, g, b)
	}
	return PackARGB(a, mul8(r, a), mul8(g, a), mul8(b, a))
}

// Unpremultiply converts a premultiplied pixel back to straight alpha.
func Unpremultiply(p uint32) (r, g, b, a uint8) {
	a, r, g, b = UnpackARGB(p)
	switch a {
	case 0:
		return 0, 0, 0, 0
	case 255:
		return r, g, b, a
	}
	return div8(r, a), div8(g, a), div8(b, a), a
}

func mul8(c, a uint8) uint8 {
	t := uint32(c)*uint32(a) + 0x80
	return uint8((t + t>>8) >> 8)
}

func div8(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func swapRB(v uint32) uint32 {
	return v&0xff00ff00 | v>>16&0xff | v&0xff<<16
}

func expand565(s uint32) uint32 {
	r := s>>8&0xf8 | s>>13&0x7
	g := s>>3&0xfc | s>>9&0x3
	b := s<<3&0xf8 | s>>2&0x7
	return 0xff000000 | r<<16 | g<<8 | b
}

func pack565(v uint32) uint16 {
	return uint16(v>>8&0xf800 | v>>5&0x07e0 | v>>3&0x001f)
}

func expand1555(s uint32) uint32 {
	var a uint32
	if s&0x8000 != 0 {
		a = 0xff
	}
	r := s >> 10 & 0x1f
	g := s >> 5 & 0x1f
	b := s & 0x1f
	r = r<<3 | r>>2
	g = g<<3 | g>>2
	b = b<<3 | b>>2
	return a<<24 | r<<16 | g<<8 | b
}

func pack1555(v uint32) uint16 {
	return uint16(v>>31<<15 | v>>9&0x7c00 | v>>6&0x03e0 | v>>3&0x001f)
}

func expand4444(s uint32) uint32 {
	a := s >> 12 & 0xf
	r := s >> 8 & 0xf
	g := s >> 4 & 0xf
	b := s & 0xf
	return (a*0x11)<<24 | (r*0x11)<<16 | (g*0x11)<<8 | b*0x11
}

func pack4444(v uint32) uint16 {
	return uint16(v>>16&0xf000 | v>>12&0x0f00 | v>>8&0x00f0 | v>>4&0x000f)
}

// Load reads pixel x of row (a slice starting at the row's first byte) and
// converts it to a premultiplied a8r8g8b8 working pixel.
func (f Format) Load(row []byte, x int) uint32 {
	switch f {
	case FormatA8R8G8B8:
		return binary.LittleEndian.Uint32(row[x*4:])
	case FormatX8R8G8B8:
		return binary.LittleEndian.Uint32(row[x*4:]) | 0xff000000
	case FormatA8B8G8R8:
		return swapRB(binary.LittleEndian.Uint32(row[x*4:]))
	case FormatX8B8G8R8:
		return swapRB(binary.LittleEndian.Uint32(row[x*4:])) | 0xff000000
	case FormatR5G6B5:
		return expand565(uint32(binary.LittleEndian.Uint16(row[x*2:])))
	case FormatB5G6R5:
		return swapRB(expand565(uint32(binary.LittleEndian.Uint16(row[x*2:]))))
	case FormatA1R5G5B5:
		return expand1555(uint32(binary.LittleEndian.Uint16(row[x*2:])))
	case FormatX1R5G5B5:
		return expand1555(uint32(binary.LittleEndian.Uint16(row[x*2:]))) | 0xff000000
	case FormatA4R4G4B4:
		return expand4444(uint32(binary.LittleEndian.Uint16(row[x*2:])))
	case FormatA8:
		return uint32(row[x]) << 24
	}
	return 0
}

// Store converts the working pixel v to the format and writes it at pixel x
// of row. Channels absent from the format are dropped.
func (f Format) Store(row []byte, x int, v uint32) {
	switch f {
	case FormatA8R8G8B8:
		binary.LittleEndian.PutUint32(row[x*4:], v)
	case FormatX8R8G8B8:
		binary.LittleEndian.PutUint32(row[x*4:], v|0xff000000)
	case FormatA8B8G8R8:
		binary.LittleEndian.PutUint32(row[x*4:], swapRB(v))
	case FormatX8B8G8R8:
		binary.LittleEndian.PutUint32(row[x*4:], swapRB(v)|0xff000000)
	case FormatR5G6B5:
		binary.LittleEndian.PutUint16(row[x*2:], pack565(v))
	case FormatB5G6R5:
		binary.LittleEndian.PutUint16(row[x*2:], pack565(swapRB(v)))
	case FormatA1R5G5B5:
		binary.LittleEndian.PutUint16(row[x*2:], pack1555(v))
	case FormatX1R5G5B5:
		binary.LittleEndian.PutUint16(row[x*2:], pack1555(v|0xff000000))
	case FormatA4R4G4B4:
		binary.LittleEndian.PutUint16(row[x*2:], pack4444(v))
	case FormatA8:
		row[x] = uint8(v >> 24)
	}
}

// LoadRow converts n pixels starting at pixel x of row into dst.
func (f Format) LoadRow(dst []uint32, row []byte, x int) {
	switch f {
	case FormatA8R8G8B8:
		for i := range dst {
			dst[i] = binary.LittleEndian.Uint32(row[(x+i)*4:])
		}
	case FormatA8:
		for i := range dst {
			dst[i] = uint32(row[x+i]) << 24
		}
	default:
		for i := range dst {
			dst[i] = f.Load(row, x+i)
		}
	}
}

// StoreRow converts len(src) working pixels and writes them starting at
// pixel x of row.
func (f Format) StoreRow(row []byte, x int, src []uint32) {
	switch f {
	case FormatA8R8G8B8:
		for i, v := range src {
			binary.LittleEndian.PutUint32(row[(x+i)*4:], v)
		}
	case FormatA8:
		for i, v := range src {
			row[x+i] = uint8(v >> 24)
		}
	default:
		for i, v := range src {
			f.Store(row, x+i, v)
		}
	}
}

// Reader fetches one working pixel from a row. Samplers are generic over
// Reader so the per-format conversion can be inlined into their loops.
type Reader interface {
	Load(row []byte, x int) uint32
}

// ReadA8R8G8B8 reads a8r8g8b8 pixels.
type ReadA8R8G8B8 struct{}

// Load implements Reader.
func (ReadA8R8G8B8) Load(row []byte, x int) uint32 {
	return binary.LittleEndian.Uint32(row[x*4:])
}

// ReadX8R8G8B8 reads x8r8g8b8 pixels.
type ReadX8R8G8B8 struct{}

// Load implements Reader.
func (ReadX8R8G8B8) Load(row []byte, x int) uint32 {
	return binary.LittleEndian.Uint32(row[x*4:]) | 0xff000000
}

// ReadR5G6B5 reads r5g6b5 pixels.
type ReadR5G6B5 struct{}

// Load implements Reader.
func (ReadR5G6B5) Load(row []byte, x int) uint32 {
	return expand565(uint32(binary.LittleEndian.Uint16(row[x*2:])))
}

// ReadA8 reads a8 pixels.
type ReadA8 struct{}

// Load implements Reader.
func (ReadA8) Load(row []byte, x int) uint32 {
	return uint32(row[x]) << 24
}

// ReadFormat reads any storage format through Format.Load.
type ReadFormat struct {
	Format Format
}

// Load implements Reader.
func (r ReadFormat) Load(row []byte, x int) uint32 {
	return r.Format.Load(row, x)
}
