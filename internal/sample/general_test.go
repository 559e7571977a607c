// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"slices"
	"testing"

	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
)

func TestGeneral_Untransformed(t *testing.T) {
	img := makeImage(t, 3, pxA, pxB, pxC, pxD, pxA, pxB)
	tests := []struct {
		repeat image.Repeat
		x, y   int
		want   []uint32
	}{
		{image.RepeatNone, -1, 0, []uint32{0, pxA, pxB, pxC, 0}},
		{image.RepeatNone, 0, 2, []uint32{0, 0, 0, 0, 0}},
		{image.RepeatPad, -1, 5, []uint32{pxD, pxD, pxA, pxB, pxB}},
		{image.RepeatNormal, -1, 2, []uint32{pxC, pxA, pxB, pxC, pxA}},
		{image.RepeatReflect, -2, -1, []uint32{pxB, pxA, pxA, pxB, pxC}},
	}
	for _, tt := range tests {
		t.Run(tt.repeat.String(), func(t *testing.T) {
			img.SetRepeat(tt.repeat)
			dst := make([]uint32, 5)
			General(dst, img, tt.x, tt.y, nil)
			if !slices.Equal(dst, tt.want) {
				t.Errorf("got %x, want %x", dst, tt.want)
			}
		})
	}
}

func TestGeneral_Transpose(t *testing.T) {
	img := makeImage(t, 3, pxA, pxB, pxC, pxD, pxA, pxB)
	tr := fixed.FromFloats(0, 1, 0, 1, 0, 0)
	if err := img.SetTransform(&tr); err != nil {
		t.Fatal(err)
	}
	for _, filter := range []image.Filter{image.FilterNearest, image.FilterBilinear} {
		img.SetFilter(filter)
		for y := range 3 {
			dst := make([]uint32, 2)
			General(dst, img, 0, y, nil)
			want := []uint32{img.Pixel(y, 0), img.Pixel(y, 1)}
			if !slices.Equal(dst, want) {
				t.Errorf("%v row %d = %x, want %x", filter, y, dst, want)
			}
		}
	}
}

func TestGeneral_NearestMatchesScanlineSampler(t *testing.T) {
	img := gradientImage(t, 7, 3)
	tr := fixed.FromFloats(0.45, 0, -2.2, 0, 1, 0)
	if err := img.SetTransform(&tr); err != nil {
		t.Fatal(err)
	}
	for _, repeat := range []image.Repeat{image.RepeatNone, image.RepeatPad, image.RepeatNormal, image.RepeatReflect} {
		img.SetRepeat(repeat)
		want := make([]uint32, 31)
		got := make([]uint32, 31)
		General(want, img, 0, 1, nil)
		x, _ := tr.ScanlineStart(0, 1)
		Nearest(image.ReadA8R8G8B8{}, got, img.RowBytes(1), 7, x-fixed.E, tr.M[0][0], repeat, nil)
		if !slices.Equal(got, want) {
			t.Errorf("%v:\n got %x\nwant %x", repeat, got, want)
		}
	}
}

func TestGeneral_SolidAndMask(t *testing.T) {
	dst := make([]uint32, 3)
	General(dst, image.NewSolid(0x80102030), 10, 10, []uint32{0xff000000, 0, 0x10000000})
	if want := []uint32{0x80102030, 0, 0x80102030}; !slices.Equal(dst, want) {
		t.Errorf("solid = %x, want %x", dst, want)
	}
}
