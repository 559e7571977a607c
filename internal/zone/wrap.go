// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package zone

import "github.com/gogpu/scanline/internal/image"

// Wrap reduces x into [0, period). period must be positive.
func Wrap(x, period int64) int64 {
	x %= period
	if x < 0 {
		x += period
	}
	return x
}

// Reflect maps pixel index i onto [0, size) mirroring every other tile.
func Reflect(i, size int) int {
	period := 2 * size
	i %= period
	if i < 0 {
		i += period
	}
	if i >= size {
		i = period - 1 - i
	}
	return i
}

// Clamp maps pixel index i onto [0, size) by extending the edges.
func Clamp(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// Index maps pixel index i onto [0, size) under repeat. It returns -1 when
// the pixel lies outside the image and repeat is RepeatNone. RepeatCover
// returns i unchanged.
func Index(i, size int, repeat image.Repeat) int {
	switch repeat {
	case image.RepeatNormal:
		i %= size
		if i < 0 {
			i += size
		}
		return i
	case image.RepeatPad:
		return Clamp(i, size)
	case image.RepeatReflect:
		return Reflect(i, size)
	case image.RepeatCover:
		return i
	default:
		if i < 0 || i >= size {
			return -1
		}
		return i
	}
}

// RunInside reports whether every position x0 + k*ux, k in [0, n), lies in
// [lo, hi]. A run that stays inside one repetition of a tiled image can be
// sampled without wrapping.
func RunInside(x0, ux int64, n int, lo, hi int64) bool {
	if n <= 0 {
		return true
	}
	last := x0 + int64(n-1)*ux
	return min(x0, last) >= lo && max(x0, last) <= hi
}
