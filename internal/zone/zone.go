// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package zone splits a run of fixed-point sample positions into the zones
// that need different out-of-bounds treatment.
//
// A run of n positions p(k) = x0 + k*ux is partitioned by four boundaries
// N0 <= N1 <= N2 <= N3 in [0, n]:
//
//	[0, N0)   transparent (no sample inside the image)
//	[N0, N1)  leading transition (one of the two samples present)
//	[N1, N2)  centre (every needed sample present)
//	[N2, N3)  trailing transition
//	[N3, n)   transparent
//
// For ux < 0 the run walks right to left, so the leading zones lie past the
// right edge. Positions are the biased positions the samplers index with:
// -E for nearest, -Half for bilinear.
package zone

import (
	"math"

	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
)

// Zones holds the four zone boundaries of a run.
type Zones struct {
	N0, N1, N2, N3 int
}

// Widths returns the widths of the five zones of a run of length n.
func (z Zones) Widths(n int) [5]int {
	return [5]int{z.N0, z.N1 - z.N0, z.N2 - z.N1, z.N3 - z.N2, n - z.N3}
}

// Centre reports whether the whole run of length n is in the centre zone.
func (z Zones) Centre(n int) bool {
	return z.N1 == 0 && z.N2 == n
}

// stepsUntil returns the number of leading positions of a run stepping by
// u > 0 that are still short of covering distance d, clamped to [0, n].
// It is ceil(d/u) for d > 0.
func stepsUntil(d, u int64, n int) int {
	if d <= 0 {
		return 0
	}
	var q int64
	if d <= math.MaxInt32 && u <= math.MaxInt32 {
		d32, u32 := int32(d), int32(u)
		q32 := d32 / u32
		if d32%u32 != 0 {
			q32++
		}
		q = int64(q32)
	} else {
		q = d / u
		if d%u != 0 {
			q++
		}
	}
	if q > int64(n) {
		return n
	}
	return int(q)
}

// firstAtLeast returns the first k with x0 + k*ux >= t, for ux > 0.
func firstAtLeast(x0, ux, t int64, n int) int {
	return stepsUntil(t-x0, ux, n)
}

// firstAtMost returns the first k with x0 + k*ux <= t, for ux < 0.
func firstAtMost(x0, ux, t int64, n int) int {
	return stepsUntil(x0-t, -ux, n)
}

// thresholds are the category limits of a position: transparent below
// lo0, leading transition below lo1, centre up to hi1, trailing
// transition up to hi0, transparent above. All limits are inclusive on the
// inner side.
type thresholds struct {
	lo0, lo1, hi1, hi0 int64
}

// classify returns the zone index (0..4) of position p in left-to-right
// order.
func (t thresholds) classify(p int64) int {
	switch {
	case p < t.lo0:
		return 0
	case p < t.lo1:
		return 1
	case p <= t.hi1:
		return 2
	case p <= t.hi0:
		return 3
	default:
		return 4
	}
}

func (t thresholds) resolve(x0, ux fixed.Fixed, n int) Zones {
	if n <= 0 {
		return Zones{}
	}
	p, u := int64(x0), int64(ux)
	switch {
	case u > 0:
		return Zones{
			N0: firstAtLeast(p, u, t.lo0, n),
			N1: firstAtLeast(p, u, t.lo1, n),
			N2: firstAtLeast(p, u, t.hi1+1, n),
			N3: firstAtLeast(p, u, t.hi0+1, n),
		}
	case u < 0:
		return Zones{
			N0: firstAtMost(p, u, t.hi0, n),
			N1: firstAtMost(p, u, t.hi1, n),
			N2: firstAtMost(p, u, t.lo1-1, n),
			N3: firstAtMost(p, u, t.lo0-1, n),
		}
	default:
		// The whole run sits in the zone of x0.
		var z [4]int
		c := t.classify(p)
		for i := range z {
			if i >= c {
				z[i] = n
			}
		}
		return Zones{z[0], z[1], z[2], z[3]}
	}
}

// Bilinear resolves the zones of a bilinear run over an image of the given
// width. Positions are biased by -Half.
//
// A position p needs its right-hand sample only when its fraction is
// non-zero, so the centre is 0 <= p <= (width-1)*One. With RepeatNone a
// position within one pixel outside the image is a transition; a position
// at exactly -One has zero weight on its only present sample and is
// transparent. RepeatPad has no transition zones: N0 == N1 and N2 == N3,
// and the outer zones take the edge pixel.
//
// Any other repeat mode returns a run that is all centre.
func Bilinear(width int, x0, ux fixed.Fixed, n int, repeat image.Repeat) Zones {
	w := int64(width) << fixed.Bits
	one := int64(fixed.One)
	switch repeat {
	case image.RepeatNone:
		return thresholds{lo0: -one + 1, lo1: 0, hi1: w - one, hi0: w - 1}.resolve(x0, ux, n)
	case image.RepeatPad:
		return thresholds{lo0: 0, lo1: 0, hi1: w - one, hi0: w - one}.resolve(x0, ux, n)
	default:
		return Zones{N2: n, N3: n}
	}
}

// Nearest resolves the zones of a nearest-neighbour run. Positions are
// biased by -E. A position samples pixel p>>16, so the centre is
// 0 <= p < width*One and there are no transition zones.
func Nearest(width int, x0, ux fixed.Fixed, n int, repeat image.Repeat) Zones {
	w := int64(width) << fixed.Bits
	switch repeat {
	case image.RepeatNone, image.RepeatPad:
		return thresholds{lo0: 0, lo1: 0, hi1: w - 1, hi0: w - 1}.resolve(x0, ux, n)
	default:
		return Zones{N2: n, N3: n}
	}
}
