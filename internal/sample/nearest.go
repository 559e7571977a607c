// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sample implements the scanline samplers: nearest-neighbour,
// two-pass bilinear with a two-row accumulator cache, and a general
// per-pixel sampler that handles any affine transform.
//
// Samplers are generic over image.Reader so the per-format pixel
// conversion is specialised into each loop.
package sample

import (
	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/zone"
)

// maskRange returns mask[a:b], or nil when there is no mask.
func maskRange(mask []uint32, a, b int) []uint32 {
	if mask == nil {
		return nil
	}
	return mask[a:b]
}

// Nearest fills dst with the nearest-neighbour samples of row at positions
// x, x+ux, ... where x is biased by -E. Pixels whose mask alpha is zero
// are set to 0 without fetching.
//
// RepeatNone leaves pixels outside [0, width) transparent and never reads
// them. RepeatCover assumes every position is inside the row.
func Nearest[R image.Reader](rd R, dst []uint32, row []byte, width int, x, ux fixed.Fixed, repeat image.Repeat, mask []uint32) {
	n := len(dst)
	p, u := int64(x), int64(ux)
	switch repeat {
	case image.RepeatCover:
		nearestRun(rd, dst, row, p, u, mask)
	case image.RepeatNone, image.RepeatPad:
		z := zone.Nearest(width, x, ux, n, repeat)
		if repeat == image.RepeatNone {
			clear(dst[:z.N1])
			clear(dst[z.N2:])
		} else {
			lead, trail := 0, width-1
			if u < 0 {
				lead, trail = trail, lead
			}
			fillEdge(rd, dst[:z.N1], row, lead, maskRange(mask, 0, z.N1))
			fillEdge(rd, dst[z.N2:], row, trail, maskRange(mask, z.N2, n))
		}
		nearestRun(rd, dst[z.N1:z.N2], row, p+int64(z.N1)*u, u, maskRange(mask, z.N1, z.N2))
	case image.RepeatNormal:
		period := int64(width) << fixed.Bits
		p = zone.Wrap(p, period)
		u = zone.Wrap(u, period)
		if zone.RunInside(p, u, n, 0, period-1) {
			nearestRun(rd, dst, row, p, u, mask)
			return
		}
		for i := range dst {
			if mask != nil && mask[i]>>24 == 0 {
				dst[i] = 0
			} else {
				dst[i] = rd.Load(row, int(p>>fixed.Bits))
			}
			p += u
			if p >= period {
				p -= period
			}
		}
	case image.RepeatReflect:
		for i := range dst {
			if mask != nil && mask[i]>>24 == 0 {
				dst[i] = 0
			} else {
				dst[i] = rd.Load(row, zone.Reflect(int(p>>fixed.Bits), width))
			}
			p += u
		}
	}
}

// nearestRun samples positions that are all inside the row. Magnification
// keeps the current pixel and refetches only when the integer position
// changes; minification indexes every step.
func nearestRun[R image.Reader](rd R, dst []uint32, row []byte, p, u int64, mask []uint32) {
	if len(dst) == 0 {
		return
	}
	if u < int64(fixed.One) && u > -int64(fixed.One) {
		idx := p >> fixed.Bits
		cur := rd.Load(row, int(idx))
		for i := range dst {
			if mask != nil && mask[i]>>24 == 0 {
				dst[i] = 0
				p += u
				continue
			}
			if j := p >> fixed.Bits; j != idx {
				idx = j
				cur = rd.Load(row, int(j))
			}
			dst[i] = cur
			p += u
		}
		return
	}
	for i := range dst {
		if mask != nil && mask[i]>>24 == 0 {
			dst[i] = 0
		} else {
			dst[i] = rd.Load(row, int(p>>fixed.Bits))
		}
		p += u
	}
}

func fillEdge[R image.Reader](rd R, dst []uint32, row []byte, idx int, mask []uint32) {
	if len(dst) == 0 {
		return
	}
	v := rd.Load(row, idx)
	for i := range dst {
		if mask != nil && mask[i]>>24 == 0 {
			dst[i] = 0
		} else {
			dst[i] = v
		}
	}
}

// RowIndex returns the source row sampled by nearest filtering at the
// biased vertical position y, or -1 when the row is outside the image under
// RepeatNone.
func RowIndex(y fixed.Fixed, height int, repeat image.Repeat) int {
	return zone.Index(y.Int(), height, repeat)
}
