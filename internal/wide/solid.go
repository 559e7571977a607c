package wide

// OverSolid composites the premultiplied color over every pixel of dst,
// optionally scaled per pixel by the alpha of mask.
//
// Full batches are processed 16 lanes at a time; the tail goes through
// the same arithmetic one pixel at a time.
func OverSolid(dst []uint32, color uint32, mask []uint32) {
	sr := SplatU16(uint16(color >> 16 & 0xff))
	sg := SplatU16(uint16(color >> 8 & 0xff))
	sb := SplatU16(uint16(color & 0xff))
	sa := SplatU16(uint16(color >> 24))

	n := len(dst) / BatchSize * BatchSize
	var b BatchState
	for off := 0; off < n; off += BatchSize {
		b.SR, b.SG, b.SB, b.SA = sr, sg, sb, sa
		if mask != nil {
			b.MaskSrc(mask[off:])
		}
		b.LoadDst(dst[off:])
		inv := b.SA.Inv()
		b.DR = b.SR.Add(b.DR.MulDiv255(inv)).Clamp(255)
		b.DG = b.SG.Add(b.DG.MulDiv255(inv)).Clamp(255)
		b.DB = b.SB.Add(b.DB.MulDiv255(inv)).Clamp(255)
		b.DA = b.SA.Add(b.DA.MulDiv255(inv)).Clamp(255)
		b.StoreDst(dst[off:])
	}

	for i := n; i < len(dst); i++ {
		s := color
		if mask != nil {
			s = scale(s, mask[i]>>24)
		}
		dst[i] = over(s, dst[i])
	}
}

func mul(a, b uint32) uint32 {
	t := a*b + 0x80
	return (t + t>>8) >> 8
}

func scale(p, m uint32) uint32 {
	return mul(p>>24, m)<<24 | mul(p>>16&0xff, m)<<16 | mul(p>>8&0xff, m)<<8 | mul(p&0xff, m)
}

func over(s, d uint32) uint32 {
	inv := 255 - s>>24
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		c := s>>shift&0xff + mul(d>>shift&0xff, inv)
		out |= min(c, 255) << shift
	}
	return out
}
