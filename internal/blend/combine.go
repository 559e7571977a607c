package blend

// Combine applies op across a scanline: dst[i] = op(src[i]·m[i], dst[i]),
// where m[i] is the alpha of mask[i]. A nil mask means fully opaque.
//
// src and mask, when present, must be at least as long as dst. Clear and
// Src never read dst.
func Combine(op Op, dst, src, mask []uint32) {
	switch op {
	case Clear:
		clear(dst)
		return
	case Dst:
		return
	case Src:
		if mask == nil {
			copy(dst, src[:len(dst)])
			return
		}
		for i := range dst {
			dst[i] = scale(src[i], byte(mask[i]>>24))
		}
		return
	case Over:
		combineOver(dst, src, mask)
		return
	case Add:
		combineAdd(dst, src, mask)
		return
	}

	fn := Lookup(op)
	for i := range dst {
		s := src[i]
		if mask != nil {
			s = scale(s, byte(mask[i]>>24))
		}
		sr, sg, sb, sa := split(s)
		dr, dg, db, da := split(dst[i])
		dst[i] = join(fn(sr, sg, sb, sa, dr, dg, db, da))
	}
}

func combineOver(dst, src, mask []uint32) {
	for i := range dst {
		s := src[i]
		if mask != nil {
			s = scale(s, byte(mask[i]>>24))
		}
		switch s >> 24 {
		case 0:
			if s == 0 {
				continue
			}
		case 0xff:
			dst[i] = s
			continue
		}
		dst[i] = OverPixel(s, dst[i])
	}
}

func combineAdd(dst, src, mask []uint32) {
	for i := range dst {
		s := src[i]
		if mask != nil {
			s = scale(s, byte(mask[i]>>24))
		}
		if s == 0 {
			continue
		}
		dst[i] = AddPixel(s, dst[i])
	}
}

// OverPixel returns s OVER d for premultiplied a8r8g8b8 pixels.
func OverPixel(s, d uint32) uint32 {
	sr, sg, sb, sa := split(s)
	dr, dg, db, da := split(d)
	return join(blendOver(sr, sg, sb, sa, dr, dg, db, da))
}

// AddPixel returns the saturating sum of s and d.
func AddPixel(s, d uint32) uint32 {
	sr, sg, sb, sa := split(s)
	dr, dg, db, da := split(d)
	return join(blendAdd(sr, sg, sb, sa, dr, dg, db, da))
}

// InPixel returns p scaled by the alpha m.
func InPixel(p uint32, m byte) uint32 {
	return scale(p, m)
}
