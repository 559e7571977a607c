package blend

// mulDiv255 returns a*b/255 rounded to nearest without a division.
// t + t>>8 folds the 1/256 error of the shift back in.
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 0x80
	return byte((t + t>>8) >> 8) // #nosec G115
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	return byte(min(uint16(a)+uint16(b), 255)) // #nosec G115
}

// unpremul divides a premultiplied channel by its alpha, returning 0-255.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	return byte(min(uint16(c)*255/uint16(a), 255)) // #nosec G115
}

func split(p uint32) (r, g, b, a byte) {
	return byte(p >> 16), byte(p >> 8), byte(p), byte(p >> 24)
}

func join(r, g, b, a byte) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// scale multiplies every channel of p by m/255.
func scale(p uint32, m byte) uint32 {
	switch m {
	case 0:
		return 0
	case 0xff:
		return p
	}
	r, g, b, a := split(p)
	return join(mulDiv255(r, m), mulDiv255(g, m), mulDiv255(b, m), mulDiv255(a, m))
}
