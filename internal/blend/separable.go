package blend

import "math"

// separable applies a per-channel blend function B to unpremultiplied
// channels and composites the result:
//
//	Result = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//	Alpha  = Sa + Da*(1 - Sa)
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	ch := func(s, d byte) byte {
		b := fn(unpremul(s, sa), unpremul(d, da))
		c := addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa))
		return addClamp(c, mulDiv255(saDa, b))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), addClamp(sa, mulDiv255(da, invSa))
}

// blendMultiply: B = Cb*Cs
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// blendScreen: B = 1 - (1-Cb)*(1-Cs)
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChan is Multiply(Cb, 2Cs) below half and Screen(Cb, 2Cs-1) above.
func hardLightChan(s, d byte) byte {
	if s <= 127 {
		return byte(min(uint32(mulDiv255(s, d))*2, 255)) // #nosec G115
	}
	return 255 - byte(min(uint32(mulDiv255(255-s, 255-d))*2, 255)) // #nosec G115
}

// blendOverlay is HardLight with the layers swapped.
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte { return min(s, d) })
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte { return max(s, d) })
}

// blendColorDodge: B = min(1, Cb / (1 - Cs)), 1 when Cs == 1.
func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 0 {
			return 0
		}
		if s == 255 {
			return 255
		}
		return byte(min(uint32(d)*255/uint32(255-s), 255)) // #nosec G115
	})
}

// blendColorBurn: B = 1 - min(1, (1 - Cb) / Cs), 0 when Cs == 0.
func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		return 255 - byte(min(uint32(255-d)*255/uint32(s), 255)) // #nosec G115
	})
}

// blendSoftLight uses the W3C soft-light curve in floating point.
func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		cs := float64(s) / 255
		cb := float64(d) / 255

		var r float64
		if cs <= 0.5 {
			r = cb - (1-2*cs)*cb*(1-cb)
		} else {
			var dx float64
			if cb <= 0.25 {
				dx = ((16*cb-12)*cb + 4) * cb
			} else {
				dx = math.Sqrt(cb)
			}
			r = cb + (2*cs-1)*(dx-cb)
		}
		return byte(math.Round(min(max(r, 0), 1) * 255))
	})
}

// blendDifference: B = |Cb - Cs|
func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return max(s, d) - min(s, d)
	})
}

// blendExclusion: B = Cb + Cs - 2*Cb*Cs
func blendExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		v := int(s) + int(d) - 2*int(mulDiv255(s, d))
		return byte(min(max(v, 0), 255)) // #nosec G115
	})
}
