// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"slices"
	"testing"

	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
)

const (
	pxA = 0xff0000ff
	pxB = 0xff00ff00
	pxC = 0xffff0000
	pxD = 0x80808080
)

// recorder wraps a reader and logs every pixel index it is asked for.
type recorder struct {
	reads *[]int
}

func (r recorder) Load(row []byte, x int) uint32 {
	*r.reads = append(*r.reads, x)
	return image.ReadA8R8G8B8{}.Load(row, x)
}

func newRecorder() (recorder, *[]int) {
	reads := new([]int)
	return recorder{reads: reads}, reads
}

func makeRow(pixels ...uint32) []byte {
	row := make([]byte, 4*len(pixels))
	image.FormatA8R8G8B8.StoreRow(row, 0, pixels)
	return row
}

func makeImage(t *testing.T, width int, pixels ...uint32) *image.ImageBuf {
	t.Helper()
	img, err := image.NewImageBuf(width, len(pixels)/width, image.FormatA8R8G8B8)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range pixels {
		_ = img.SetPixel(i%width, i/width, p)
	}
	return img
}

// nearestStart returns the biased start position of destination pixel 0.
func nearestStart(t fixed.Transform) fixed.Fixed {
	x, _ := t.ScanlineStart(0, 0)
	return x - fixed.E
}

func TestNearest_Identity(t *testing.T) {
	src := []uint32{pxA, pxB, pxC, pxD}
	row := makeRow(src...)
	for _, repeat := range []image.Repeat{image.RepeatNone, image.RepeatPad, image.RepeatCover, image.RepeatNormal, image.RepeatReflect} {
		dst := make([]uint32, 4)
		Nearest(image.ReadA8R8G8B8{}, dst, row, 4, nearestStart(fixed.Identity()), fixed.One, repeat, nil)
		if !slices.Equal(dst, src) {
			t.Errorf("%v: %x, want %x", repeat, dst, src)
		}
	}
}

func TestNearest_Magnify(t *testing.T) {
	row := makeRow(pxA, pxB)
	dst := make([]uint32, 4)
	tr := fixed.Scale(fixed.Half, fixed.One)
	Nearest(image.ReadA8R8G8B8{}, dst, row, 2, nearestStart(tr), fixed.Half, image.RepeatNone, nil)
	if want := []uint32{pxA, pxA, pxB, pxB}; !slices.Equal(dst, want) {
		t.Errorf("magnify = %x, want %x", dst, want)
	}
}

func TestNearest_Minify(t *testing.T) {
	row := makeRow(pxA, pxB, pxC, pxD)
	dst := make([]uint32, 2)
	tr := fixed.Scale(2*fixed.One, fixed.One)
	Nearest(image.ReadA8R8G8B8{}, dst, row, 4, nearestStart(tr), 2*fixed.One, image.RepeatNone, nil)
	if want := []uint32{pxA, pxC}; !slices.Equal(dst, want) {
		t.Errorf("minify = %x, want %x", dst, want)
	}
}

func TestNearest_RegimesAgree(t *testing.T) {
	src := make([]uint32, 64)
	for i := range src {
		src[i] = 0xff000000 | uint32(i)
	}
	row := makeRow(src...)
	for _, ux := range []fixed.Fixed{fixed.One - 1, fixed.One, fixed.One + 1, fixed.One / 3, -fixed.One / 3, -fixed.One - 7} {
		x := fixed.FromInt(20) + 123
		dst := make([]uint32, 12)
		Nearest(image.ReadA8R8G8B8{}, dst, row, 64, x, ux, image.RepeatCover, nil)
		for i, got := range dst {
			want := src[fixed.Step(x, ux, i)>>fixed.Bits]
			if got != want {
				t.Fatalf("ux=%d pixel %d = %x, want %x", ux, i, got, want)
			}
		}
	}
}

func TestNearest_MaskSkipsFetch(t *testing.T) {
	row := makeRow(pxA, pxB, pxC, pxD)
	rd, reads := newRecorder()
	mask := []uint32{0xff000000, 0, 0x01000000, 0}
	dst := []uint32{9, 9, 9, 9}
	Nearest(rd, dst, row, 4, fixed.Half-fixed.E, fixed.One, image.RepeatNone, mask)
	if want := []uint32{pxA, 0, pxC, 0}; !slices.Equal(dst, want) {
		t.Errorf("masked = %x, want %x", dst, want)
	}
	if want := []int{0, 2}; !slices.Equal(*reads, want) {
		t.Errorf("reads = %v, want %v", *reads, want)
	}
}

func TestNearest_NoneEdge(t *testing.T) {
	row := makeRow(pxA, pxB, pxC, pxD)
	rd, reads := newRecorder()
	dst := make([]uint32, 7)
	x := -fixed.One - fixed.Half - fixed.E
	Nearest(rd, dst, row, 4, x, fixed.One, image.RepeatNone, nil)
	if want := []uint32{0, 0, pxA, pxB, pxC, pxD, 0}; !slices.Equal(dst, want) {
		t.Errorf("none edge = %x, want %x", dst, want)
	}
	for _, r := range *reads {
		if r < 0 || r >= 4 {
			t.Errorf("read outside the row: %d", r)
		}
	}
}

func TestNearest_Pad(t *testing.T) {
	row := makeRow(pxA, pxB)
	dst := make([]uint32, 6)
	Nearest(image.ReadA8R8G8B8{}, dst, row, 2, -2*fixed.One, fixed.One, image.RepeatPad, nil)
	if want := []uint32{pxA, pxA, pxA, pxB, pxB, pxB}; !slices.Equal(dst, want) {
		t.Errorf("pad = %x, want %x", dst, want)
	}
	Nearest(image.ReadA8R8G8B8{}, dst, row, 2, 3*fixed.One, -fixed.One, image.RepeatPad, nil)
	if want := []uint32{pxB, pxB, pxB, pxA, pxA, pxA}; !slices.Equal(dst, want) {
		t.Errorf("reverse pad = %x, want %x", dst, want)
	}
}

func TestNearest_Normal(t *testing.T) {
	row := makeRow(pxA, pxB, pxC)
	tests := []struct {
		name string
		x    fixed.Fixed
		ux   fixed.Fixed
		want []uint32
	}{
		{"forward", 2 * fixed.One, fixed.One, []uint32{pxC, pxA, pxB, pxC, pxA}},
		{"backward", 2 * fixed.One, -fixed.One, []uint32{pxC, pxB, pxA, pxC, pxB}},
		{"step beyond width", 0, 4 * fixed.One, []uint32{pxA, pxB, pxC, pxA, pxB}},
		{"negative start", -fixed.One, fixed.One, []uint32{pxC, pxA, pxB, pxC, pxA}},
		{"inside one tile", 3 * fixed.One, fixed.Half, []uint32{pxA, pxA, pxB, pxB, pxC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]uint32, 5)
			Nearest(image.ReadA8R8G8B8{}, dst, row, 3, tt.x, tt.ux, image.RepeatNormal, nil)
			if !slices.Equal(dst, tt.want) {
				t.Errorf("got %x, want %x", dst, tt.want)
			}
		})
	}
}

func TestNearest_Reflect(t *testing.T) {
	row := makeRow(pxA, pxB, pxC)
	dst := make([]uint32, 8)
	Nearest(image.ReadA8R8G8B8{}, dst, row, 3, -3*fixed.One, fixed.One, image.RepeatReflect, nil)
	if want := []uint32{pxC, pxB, pxA, pxA, pxB, pxC, pxC, pxB}; !slices.Equal(dst, want) {
		t.Errorf("reflect = %x, want %x", dst, want)
	}
}

func TestRowIndex(t *testing.T) {
	if got := RowIndex(-fixed.E, 4, image.RepeatNone); got != -1 {
		t.Errorf("row above image = %d", got)
	}
	if got := RowIndex(fixed.FromInt(5), 4, image.RepeatNormal); got != 1 {
		t.Errorf("wrapped row = %d", got)
	}
	if got := RowIndex(fixed.FromInt(9), 4, image.RepeatPad); got != 3 {
		t.Errorf("padded row = %d", got)
	}
}
