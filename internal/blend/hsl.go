package blend

import "math"

// Non-separable blend modes operate on the whole RGB triplet in floating
// point, following section 8 of W3C Compositing and Blending Level 1.

// lum returns the BT.601 luminance of a normalized color.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// sat returns max - min of a normalized color.
func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor pulls out-of-range components toward the luminance.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat rescales the color to saturation s keeping the ordering of its
// components. Gray input stays gray.
func setSat(r, g, b, s float32) (float32, float32, float32) {
	c := [3]*float32{&r, &g, &b}
	// Sort the pointers so *c[0] <= *c[1] <= *c[2].
	if *c[0] > *c[1] {
		c[0], c[1] = c[1], c[0]
	}
	if *c[1] > *c[2] {
		c[1], c[2] = c[2], c[1]
	}
	if *c[0] > *c[1] {
		c[0], c[1] = c[1], c[0]
	}
	lo, mid, hi := *c[0], *c[1], *c[2]
	if hi > lo {
		*c[1] = (mid - lo) * s / (hi - lo)
		*c[2] = s
		*c[0] = 0
	}
	return r, g, b
}

type hslFunc func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32)

func hslHue(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
	return setLum(r, g, b, lum(dr, dg, db))
}

func hslSaturation(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
	return setLum(r, g, b, lum(dr, dg, db))
}

func hslColor(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(sr, sg, sb, lum(dr, dg, db))
}

func hslLuminosity(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(dr, dg, db, lum(sr, sg, sb))
}

// nonSeparable composites B(Cs, Cb) with the same formula as separable.
func nonSeparable(sr, sg, sb, sa, dr, dg, db, da byte, fn hslFunc) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	fs, fd := float32(sa), float32(da)
	br, bg, bb := fn(
		float32(sr)/fs, float32(sg)/fs, float32(sb)/fs,
		float32(dr)/fd, float32(dg)/fd, float32(db)/fd,
	)

	invSa := 255 - sa
	invDa := 255 - da
	k := fs * fd / 255
	ch := func(s, d byte, v float32) byte {
		c := addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa))
		bv := math.Round(float64(min(max(v, 0), 1) * k))
		return addClamp(c, byte(bv))
	}
	return ch(sr, dr, br), ch(sg, dg, bg), ch(sb, db, bb), addClamp(sa, mulDiv255(da, invSa))
}

func blendHue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, hslHue)
}

func blendSaturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, hslSaturation)
}

func blendColor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, hslColor)
}

func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, hslLuminosity)
}
