// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fixed

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is a 3x3 matrix of fixed-point entries mapping destination
// coordinates to source coordinates:
//
//	| xx  xy  x0 |
//	| yx  yy  y0 |
//	| 0   0   1  |
//
// Only affine matrices are supported; the bottom row is kept so callers can
// check for projective input.
type Transform struct {
	M [3][3]Fixed
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M: [3][3]Fixed{
		{One, 0, 0},
		{0, One, 0},
		{0, 0, One},
	}}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty Fixed) Transform {
	t := Identity()
	t.M[0][2] = tx
	t.M[1][2] = ty
	return t
}

// Scale returns a scale by (sx, sy) around the origin.
func Scale(sx, sy Fixed) Transform {
	t := Identity()
	t.M[0][0] = sx
	t.M[1][1] = sy
	return t
}

// FromFloats builds a transform from the affine coefficients
// x' = a*x + b*y + c, y' = d*x + e*y + f.
func FromFloats(a, b, c, d, e, f float64) Transform {
	return Transform{M: [3][3]Fixed{
		{FromFloat(a), FromFloat(b), FromFloat(c)},
		{FromFloat(d), FromFloat(e), FromFloat(f)},
		{0, 0, One},
	}}
}

// FromAff3 converts a float affine matrix to fixed point.
func FromAff3(m f64.Aff3) Transform {
	return FromFloats(m[0], m[1], m[2], m[3], m[4], m[5])
}

// Aff3 returns the affine part as floats.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.M[0][0].Float(), t.M[0][1].Float(), t.M[0][2].Float(),
		t.M[1][0].Float(), t.M[1][1].Float(), t.M[1][2].Float(),
	}
}

// IsAffine reports whether the bottom row is (0, 0, 1).
func (t Transform) IsAffine() bool {
	return t.M[2][0] == 0 && t.M[2][1] == 0 && t.M[2][2] == One
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsIntegerTranslation reports whether t only translates by whole pixels.
func (t Transform) IsIntegerTranslation() bool {
	return t.IsAffine() &&
		t.M[0][0] == One && t.M[0][1] == 0 &&
		t.M[1][0] == 0 && t.M[1][1] == One &&
		t.M[0][2].Frac() == 0 && t.M[1][2].Frac() == 0
}

// IsScale reports whether t has no shear, so the source x coordinate depends
// only on destination x and source y only on destination y.
func (t Transform) IsScale() bool {
	return t.IsAffine() && t.M[0][1] == 0 && t.M[1][0] == 0
}

// XUnitPositive reports whether stepping one destination pixel right moves
// the source position right and keeps it on the same row.
func (t Transform) XUnitPositive() bool {
	return t.M[0][0] > 0 && t.M[1][0] == 0
}

// YUnitZero reports whether the source row is constant along a destination
// scanline.
func (t Transform) YUnitZero() bool {
	return t.M[1][0] == 0
}

// Unit returns the per-destination-pixel source increment along a scanline.
func (t Transform) Unit() (ux, uy Fixed) {
	return t.M[0][0], t.M[1][0]
}

// Point maps (x, y) through the affine part using 64-bit intermediates.
func (t Transform) Point(x, y Fixed) (Fixed, Fixed) {
	px := (int64(t.M[0][0])*int64(x)+int64(t.M[0][1])*int64(y))>>Bits + int64(t.M[0][2])
	py := (int64(t.M[1][0])*int64(x)+int64(t.M[1][1])*int64(y))>>Bits + int64(t.M[1][2])
	return Fixed(px), Fixed(py) // #nosec G115
}

// ScanlineStart returns the source position of the centre of destination
// pixel (x, y).
//
// The integer and fractional parts of the centre are multiplied separately:
// the fractional products go through a 64-bit intermediate and are rounded,
// the integer products stay 32-bit.
func (t Transform) ScanlineStart(x, y int) (Fixed, Fixed) {
	offset := FromInt(x) + Half
	line := FromInt(y) + Half
	return t.startComponent(0, offset, line), t.startComponent(1, offset, line)
}

func (t Transform) startComponent(row int, offset, line Fixed) Fixed {
	m := t.M[row]
	lo := int64(m[0])*int64(offset&fracMask) + int64(m[1])*int64(line&fracMask)
	v := Fixed((lo + 0x8000) >> Bits) // #nosec G115
	v += m[0] * (offset >> Bits)
	v += m[1] * (line >> Bits)
	v += m[2]
	return v
}

// Multiply returns t * u (u is applied first).
func (t Transform) Multiply(u Transform) Transform {
	var r Transform
	for i := range 3 {
		for j := range 3 {
			var s int64
			for k := range 3 {
				s += int64(t.M[i][k]) * int64(u.M[k][j])
			}
			r.M[i][j] = Fixed(s >> Bits) // #nosec G115
		}
	}
	return r
}

// Invert returns the inverse of the affine part. It reports false when the
// matrix is singular.
func (t Transform) Invert() (Transform, bool) {
	m := t.Aff3()
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-10 {
		return Transform{}, false
	}
	inv := 1 / det
	return FromFloats(
		m[4]*inv, -m[1]*inv, (m[1]*m[5]-m[2]*m[4])*inv,
		-m[3]*inv, m[0]*inv, (m[2]*m[3]-m[0]*m[5])*inv,
	), true
}
