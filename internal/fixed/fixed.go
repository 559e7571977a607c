// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixed implements the 16.16 fixed-point coordinate model shared by
// every sampler and by the zone resolver.
//
// All source-position math is done in Fixed. A scanline is walked by adding a
// per-pixel increment to a start position; multiplication is only used once
// per scanline to find that start position (see Transform.ScanlineStart).
package fixed

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

const (
	// Bits is the number of fractional bits.
	Bits = 16

	// One is 1.0.
	One Fixed = 1 << Bits

	// Half is 0.5.
	Half Fixed = One / 2

	// E is the smallest representable step (epsilon).
	E Fixed = 1

	// Max and Min bound the representable range.
	Max Fixed = math.MaxInt32
	Min Fixed = math.MinInt32

	fracMask = One - 1
)

// FromInt converts an integer to Fixed.
func FromInt(i int) Fixed {
	return Fixed(int32(i) << Bits) // #nosec G115 -- coordinates fit 16 integer bits
}

// FromFloat converts a float64 to Fixed, truncating toward zero.
func FromFloat(f float64) Fixed {
	return Fixed(int32(f * float64(One))) // #nosec G115
}

// FromInt26_6 converts a 26.6 fixed-point value (as produced by font
// rasterizers) to 16.16.
func FromInt26_6(v fixed.Int26_6) Fixed {
	return Fixed(int32(v) << (Bits - 6))
}

// Int returns the integer part, rounding toward negative infinity.
func (f Fixed) Int() int {
	return int(f >> Bits)
}

// Frac returns the fractional part as a Fixed in [0, One).
func (f Fixed) Frac() Fixed {
	return f & fracMask
}

// Float returns f as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / float64(One)
}

// Ceil returns the smallest integer >= f.
func (f Fixed) Ceil() int {
	return int((int64(f) + int64(fracMask)) >> Bits)
}

// Mul multiplies two fixed-point values using a 64-bit intermediate.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed((int64(f) * int64(g)) >> Bits)
}

// Abs returns the absolute value of f.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Step returns x + n*ux as a 64-bit position. Runs can be long enough for the
// 32-bit sum to wrap, so callers that look ahead use this instead of
// repeated addition.
func Step(x, ux Fixed, n int) int64 {
	return int64(x) + int64(n)*int64(ux)
}
