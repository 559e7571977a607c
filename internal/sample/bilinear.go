// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/zone"
)

// BilinearBits is the precision of the interpolation weights.
const BilinearBits = 7

const (
	bilinearOne  = 1 << BilinearBits
	weightShift  = fixed.Bits - BilinearBits
	weightMask   = bilinearOne - 1
	lanes        = 0x00ff00ff
	pass2Shift   = 2 * BilinearBits
	lowLaneMask  = 0xffff
	lowWordMask  = 0xffffffff
	highLaneBits = 16
)

// Granule is the pixel count accumulator rows are rounded up to.
const Granule = 16

// Weight returns the BilinearBits interpolation weight of position p.
func Weight(p int64) uint32 {
	return uint32(p>>weightShift) & weightMask
}

// Lerp interpolates two working pixels by weight d on [0, 128) and returns
// the accumulator pair: alpha|green and red|blue in 16-bit lanes, each
// lane l*(128-d) + r*d.
func Lerp(l, r, d uint32) (ag, rb uint32) {
	wl := bilinearOne - d
	ag = (l>>8&lanes)*wl + (r>>8&lanes)*d
	rb = (l&lanes)*wl + (r&lanes)*d
	return ag, rb
}

// spread moves the two 16-bit lanes of v into the two 32-bit halves of a
// uint64 so both can be scaled by a second 7-bit weight at once.
func spread(v uint32) uint64 {
	return uint64(v&lowLaneMask) | uint64(v>>highLaneBits)<<32
}

// Blend2 blends a top and a bottom accumulator pair by vertical weight dy
// and repacks the result. Division is by truncation.
func Blend2(tag, trb, bag, brb, dy uint32) uint32 {
	wt, wb := uint64(bilinearOne-dy), uint64(dy)
	ag := spread(tag)*wt + spread(bag)*wb
	rb := spread(trb)*wt + spread(brb)*wb
	a := uint32(ag>>32) >> pass2Shift
	g := uint32(ag&lowWordMask) >> pass2Shift
	r := uint32(rb>>32) >> pass2Shift
	b := uint32(rb&lowWordMask) >> pass2Shift
	return a<<24 | r<<16 | g<<8 | b
}

// Pass2 blends two accumulator rows by vertical weight dy into dst.
// Accumulator rows hold len(dst) (ag, rb) pairs.
func Pass2(dst []uint32, top, bottom []uint32, dy uint32) {
	for i := range dst {
		dst[i] = Blend2(top[2*i], top[2*i+1], bottom[2*i], bottom[2*i+1], dy)
	}
}

// Pass2a repacks a single accumulator row; it is Pass2 with dy == 0.
func Pass2a(dst []uint32, row []uint32) {
	for i := range dst {
		ag, rb := row[2*i], row[2*i+1]
		a := ag >> highLaneBits >> BilinearBits
		g := (ag & lowLaneMask) >> BilinearBits
		r := rb >> highLaneBits >> BilinearBits
		b := (rb & lowLaneMask) >> BilinearBits
		dst[i] = a<<24 | r<<16 | g<<8 | b
	}
}

// Pass1 fills acc with the horizontal interpolation of row at positions
// x, x+ux, ... biased by -Half. acc holds len(acc)/2 (ag, rb) pairs.
//
// With RepeatNone no pixel outside [0, width) is read, and transparent
// zones are never read at all.
func Pass1[R image.Reader](rd R, acc []uint32, row []byte, width int, x, ux fixed.Fixed, repeat image.Repeat) {
	n := len(acc) / 2
	p, u := int64(x), int64(ux)
	switch repeat {
	case image.RepeatCover:
		pass1Centre(rd, acc, row, p, u)
	case image.RepeatNone:
		z := zone.Bilinear(width, x, ux, n, repeat)
		clear(acc[:2*z.N0])
		pass1Edge(rd, acc[2*z.N0:2*z.N1], row, width, p+int64(z.N0)*u, u)
		pass1Centre(rd, acc[2*z.N1:2*z.N2], row, p+int64(z.N1)*u, u)
		pass1Edge(rd, acc[2*z.N2:2*z.N3], row, width, p+int64(z.N2)*u, u)
		clear(acc[2*z.N3:])
	case image.RepeatPad:
		z := zone.Bilinear(width, x, ux, n, repeat)
		lead, trail := 0, width-1
		if u < 0 {
			lead, trail = trail, lead
		}
		if z.N1 > 0 {
			fillAccum(acc[:2*z.N1], rd.Load(row, lead))
		}
		pass1Centre(rd, acc[2*z.N1:2*z.N2], row, p+int64(z.N1)*u, u)
		if z.N2 < n {
			fillAccum(acc[2*z.N2:], rd.Load(row, trail))
		}
	case image.RepeatNormal:
		pass1Wrap(rd, acc, row, width, p, u)
	case image.RepeatReflect:
		for i := 0; i < len(acc); i += 2 {
			idx := int(p >> fixed.Bits)
			l := rd.Load(row, zone.Reflect(idx, width))
			r := rd.Load(row, zone.Reflect(idx+1, width))
			acc[i], acc[i+1] = Lerp(l, r, Weight(p))
			p += u
		}
	}
}

// pass1Centre interpolates positions in [0, (width-1)*One]. The right-hand
// pixel is read only when the position has a fraction.
func pass1Centre[R image.Reader](rd R, acc []uint32, row []byte, p, u int64) {
	for i := 0; i < len(acc); i += 2 {
		idx := int(p >> fixed.Bits)
		l := rd.Load(row, idx)
		r := l
		if p&int64(fixed.One-1) != 0 {
			r = rd.Load(row, idx+1)
		}
		acc[i], acc[i+1] = Lerp(l, r, Weight(p))
		p += u
	}
}

// pass1Edge interpolates positions within one pixel of the image edge,
// treating missing pixels as transparent.
func pass1Edge[R image.Reader](rd R, acc []uint32, row []byte, width int, p, u int64) {
	for i := 0; i < len(acc); i += 2 {
		idx := int(p >> fixed.Bits)
		var l, r uint32
		if idx >= 0 && idx < width {
			l = rd.Load(row, idx)
		}
		if idx+1 >= 0 && idx+1 < width {
			r = rd.Load(row, idx+1)
		}
		acc[i], acc[i+1] = Lerp(l, r, Weight(p))
		p += u
	}
}

// pass1Wrap splits a tiled run into sub-runs inside one repetition. Only
// the position straddling the seam between the last and the first pixel
// is interpolated with wrapped indices.
func pass1Wrap[R image.Reader](rd R, acc []uint32, row []byte, width int, p, u int64) {
	period := int64(width) << fixed.Bits
	last := period - int64(fixed.One)
	p = zone.Wrap(p, period)
	u = zone.Wrap(u, period)
	n := len(acc) / 2
	for i := 0; i < n; {
		if p > last {
			l := rd.Load(row, width-1)
			r := rd.Load(row, 0)
			acc[2*i], acc[2*i+1] = Lerp(l, r, Weight(p))
			i++
			p += u
			if p >= period {
				p -= period
			}
			continue
		}
		k := n - i
		if u > 0 {
			k = min(k, int((last-p)/u)+1)
		}
		pass1Centre(rd, acc[2*i:2*(i+k)], row, p, u)
		i += k
		p = zone.Wrap(p+int64(k)*u, period)
	}
}

func fillAccum(acc []uint32, v uint32) {
	ag, rb := Lerp(v, v, 0)
	for i := 0; i < len(acc); i += 2 {
		acc[i], acc[i+1] = ag, rb
	}
}
