// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"slices"
	"testing"

	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/zone"
)

var allRepeats = []image.Repeat{
	image.RepeatNone, image.RepeatPad, image.RepeatNormal, image.RepeatReflect, image.RepeatCover,
}

func pass1Pixels(row []byte, width int, x, ux fixed.Fixed, n int, repeat image.Repeat) []uint32 {
	acc := make([]uint32, 2*n)
	Pass1(image.ReadA8R8G8B8{}, acc, row, width, x, ux, repeat)
	dst := make([]uint32, n)
	Pass2a(dst, acc)
	return dst
}

func TestPass1_ExactAtIntegerPositions(t *testing.T) {
	src := []uint32{pxA, pxB, pxC, pxD}
	row := makeRow(src...)
	for _, repeat := range allRepeats {
		got := pass1Pixels(row, 4, 0, fixed.One, 4, repeat)
		if !slices.Equal(got, src) {
			t.Errorf("%v: %x, want %x", repeat, got, src)
		}
	}
}

func TestPass2_ExactAtIntegerRows(t *testing.T) {
	top := make([]uint32, 8)
	bottom := make([]uint32, 8)
	Pass1(image.ReadA8R8G8B8{}, top, makeRow(pxA, pxB, pxC, pxD), 4, 0, fixed.One, image.RepeatCover)
	Pass1(image.ReadA8R8G8B8{}, bottom, makeRow(pxD, pxC, pxB, pxA), 4, 0, fixed.One, image.RepeatCover)

	a := make([]uint32, 4)
	b := make([]uint32, 4)
	Pass2(a, top, bottom, 0)
	Pass2a(b, top)
	if !slices.Equal(a, b) {
		t.Errorf("Pass2(dy=0) = %x, Pass2a = %x", a, b)
	}
	if want := []uint32{pxA, pxB, pxC, pxD}; !slices.Equal(a, want) {
		t.Errorf("top row = %x, want %x", a, want)
	}
}

func TestBilinear_Midpoint(t *testing.T) {
	row := makeRow(0xff000000, 0xffffffff)
	got := pass1Pixels(row, 2, fixed.Half, fixed.One, 1, image.RepeatNone)
	// Truncation: halfway between 0 and 255 is 127.
	if got[0] != 0xff7f7f7f {
		t.Errorf("midpoint = %#08x, want 0xff7f7f7f", got[0])
	}

	acc := make([]uint32, 2)
	Pass1(image.ReadA8R8G8B8{}, acc, row, 2, fixed.Half, fixed.One, image.RepeatNone)
	dst := make([]uint32, 1)
	for dy := uint32(0); dy < bilinearOne; dy++ {
		Pass2(dst, acc, acc, dy)
		if dst[0] != 0xff7f7f7f {
			t.Fatalf("dy=%d: %#08x", dy, dst[0])
		}
	}
}

func TestLerp_Symmetric(t *testing.T) {
	pairs := [][2]uint32{{pxA, pxB}, {0, 0xffffffff}, {0x80402010, 0x10204080}, {pxD, pxC}}
	for _, p := range pairs {
		for d := range uint32(bilinearOne) {
			ag1, rb1 := Lerp(p[0], p[1], d)
			ag2, rb2 := Lerp(p[1], p[0], bilinearOne-d)
			if ag1 != ag2 || rb1 != rb2 {
				t.Fatalf("Lerp(%x, %x, %d) not symmetric", p[0], p[1], d)
			}
		}
	}
}

func TestBilinear_SymmetricPositions(t *testing.T) {
	a, b := uint32(0x80402010), uint32(0xfff0e0d0)
	fwd := makeRow(a, b)
	rev := makeRow(b, a)
	for f := fixed.Fixed(0); f <= fixed.One; f += 512 {
		x := pass1Pixels(fwd, 2, f, fixed.One, 1, image.RepeatPad)[0]
		y := pass1Pixels(rev, 2, fixed.One-f, fixed.One, 1, image.RepeatPad)[0]
		for shift := 0; shift < 32; shift += 8 {
			cx, cy := int(x>>shift&0xff), int(y>>shift&0xff)
			if cx-cy > 1 || cy-cx > 1 {
				t.Fatalf("f=%d: %#08x vs %#08x", f, x, y)
			}
		}
	}
}

func TestPass1_NoneEdge(t *testing.T) {
	row := makeRow(pxA, pxB, pxC, pxD)
	rd, reads := newRecorder()
	acc := make([]uint32, 14)
	Pass1(rd, acc, row, 4, -fixed.One-fixed.Half, fixed.One, image.RepeatNone)
	dst := make([]uint32, 7)
	Pass2a(dst, acc)
	if dst[0] != 0 || dst[6] != 0 {
		t.Errorf("edge pixels not transparent: %x", dst)
	}
	for _, r := range *reads {
		if r < 0 || r >= 4 {
			t.Fatalf("read outside the row: %d", r)
		}
	}
	// One read per transition pixel, two per centre pixel.
	if len(*reads) != 8 {
		t.Errorf("reads = %v", *reads)
	}
}

func TestPass1_BoundarySafety(t *testing.T) {
	row := makeRow(pxA, pxB, pxC)
	starts := []fixed.Fixed{-7 * fixed.One, -fixed.One, -fixed.One + 1, -1, 0, 1, 2*fixed.One - 1, 2 * fixed.One, 2*fixed.One + 1, 3 * fixed.One}
	stepList := []fixed.Fixed{fixed.One, -fixed.One, fixed.One / 5, -fixed.One / 3, 3*fixed.One + 5, 0}
	for _, repeat := range []image.Repeat{image.RepeatNone, image.RepeatPad} {
		for _, x := range starts {
			for _, ux := range stepList {
				rd, reads := newRecorder()
				acc := make([]uint32, 2*9)
				Pass1(rd, acc, row, 3, x, ux, repeat)
				for _, r := range *reads {
					if r < 0 || r >= 3 {
						t.Fatalf("%v x=%d ux=%d read %d", repeat, x, ux, r)
					}
				}
				if repeat != image.RepeatNone {
					continue
				}
				z := zone.Bilinear(3, x, ux, 9, repeat)
				for k := range z.N0 {
					if acc[2*k] != 0 || acc[2*k+1] != 0 {
						t.Fatalf("transparent pixel %d not zero", k)
					}
				}
			}
		}
	}
}

// reference interpolates one position the slow way, under repeat.
func reference(src []uint32, p int64, repeat image.Repeat) uint32 {
	idx := int(p >> fixed.Bits)
	load := func(i int) uint32 {
		j := zone.Index(i, len(src), repeat)
		if j < 0 {
			return 0
		}
		return src[j]
	}
	ag, rb := Lerp(load(idx), load(idx+1), Weight(p))
	return Blend2(ag, rb, 0, 0, 0)
}

func TestPass1_MatchesReference(t *testing.T) {
	src := []uint32{pxA, pxB, pxC, pxD, 0x40302010}
	row := makeRow(src...)
	for _, repeat := range []image.Repeat{image.RepeatNone, image.RepeatPad, image.RepeatNormal, image.RepeatReflect} {
		for _, x := range []fixed.Fixed{-9*fixed.One + 300, -fixed.Half, 0, 4*fixed.One + 1000} {
			for _, ux := range []fixed.Fixed{fixed.One, fixed.One/3 + 7, -fixed.One / 2, 7*fixed.One + 11, 6 * fixed.One} {
				got := pass1Pixels(row, 5, x, ux, 23, repeat)
				for k, g := range got {
					if want := reference(src, fixed.Step(x, ux, k), repeat); g != want {
						t.Fatalf("%v x=%d ux=%d k=%d: %#08x, want %#08x", repeat, x, ux, k, g, want)
					}
				}
			}
		}
	}
}
