// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/sample"
)

// transformOf returns the image transform, identity when it has none.
func transformOf(img *image.ImageBuf) fixed.Transform {
	if t := img.Transform(); t != nil {
		return *t
	}
	return fixed.Identity()
}

// repeats returns the horizontal and vertical repeat a sampler should use:
// RepeatCover when the request guarantees every footprint is inside.
func repeats(it *Iter, cover Flags) (h, v image.Repeat) {
	if it.ImageFlags.Has(cover) {
		return image.RepeatCover, image.RepeatCover
	}
	r := it.Image.Repeat()
	return r, r
}

// Solid images.

func solidInit(it *Iter) error {
	c := it.Image.SolidColor()
	for i := range it.Buffer {
		it.Buffer[i] = c
	}
	return nil
}

// Untransformed images: integer translation folded into (X, Y).

func untransformedInit(it *Iter) error {
	if t := it.Image.Transform(); t != nil {
		it.X += t.M[0][2].Int()
		it.Y += t.M[1][2].Int()
	}
	return nil
}

func untransformedScanline[R image.Reader](rd R) func(*Iter, []uint32) []uint32 {
	return func(it *Iter, _ []uint32) []uint32 {
		row := it.Image.RowBytes(it.Y)
		for i := range it.Buffer {
			it.Buffer[i] = rd.Load(row, it.X+i)
		}
		it.Y++
		return it.Buffer
	}
}

// Nearest-scaled images.

type nearestState struct {
	t       fixed.Transform
	ux      fixed.Fixed
	hrepeat image.Repeat
	vrepeat image.Repeat
}

func nearestInit(it *Iter) error {
	st := &nearestState{t: transformOf(it.Image)}
	st.ux, _ = st.t.Unit()
	st.hrepeat, st.vrepeat = repeats(it, FlagCoverNearest)
	it.Data = st
	return nil
}

func nearestScanline[R image.Reader](rd R) func(*Iter, []uint32) []uint32 {
	return func(it *Iter, mask []uint32) []uint32 {
		st := it.Data.(*nearestState)
		img := it.Image
		px, py := st.t.ScanlineStart(it.X, it.Y)
		it.Y++
		y := sample.RowIndex(py-fixed.E, img.Height(), st.vrepeat)
		if y < 0 {
			clear(it.Buffer)
			return it.Buffer
		}
		sample.Nearest(rd, it.Buffer, img.RowBytes(y), img.Width(), px-fixed.E, st.ux, st.hrepeat, mask)
		return it.Buffer
	}
}

// Bilinear-scaled images: a two-row accumulator cache per iterator.

type bilinearState[R image.Reader] struct {
	t      fixed.Transform
	scaler *sample.Scaler[R]
}

func bilinearInit[R image.Reader](rd R) func(*Iter) error {
	return func(it *Iter) error {
		t := transformOf(it.Image)
		px, _ := t.ScanlineStart(it.X, it.Y)
		ux, _ := t.Unit()
		h, v := repeats(it, FlagCoverBilinear)
		s, err := sample.NewScaler(rd, it.Image, it.pool, px-fixed.Half, ux, it.Width, h, v)
		if err != nil {
			return err
		}
		it.Data = &bilinearState[R]{t: t, scaler: s}
		return nil
	}
}

func bilinearScanline[R image.Reader](it *Iter, _ []uint32) []uint32 {
	st := it.Data.(*bilinearState[R])
	_, py := st.t.ScanlineStart(it.X, it.Y)
	it.Y++
	st.scaler.Scanline(it.Buffer, py-fixed.Half)
	return it.Buffer
}

func bilinearFini[R image.Reader](it *Iter) {
	if st, ok := it.Data.(*bilinearState[R]); ok {
		st.scaler.Close()
	}
}

func bilinearIter[R image.Reader](format image.Format, rd R) IterInfo {
	return IterInfo{
		Format:      format,
		Flags:       FlagsBilinearScaled,
		IterFlags:   IterSrc,
		Init:        bilinearInit(rd),
		GetScanline: bilinearScanline[R],
		Fini:        bilinearFini[R],
	}
}

func nearestIter[R image.Reader](format image.Format, rd R) IterInfo {
	return IterInfo{
		Format:      format,
		Flags:       FlagsNearestScaled,
		IterFlags:   IterSrc,
		Init:        nearestInit,
		GetScanline: nearestScanline(rd),
	}
}

func untransformedIter[R image.Reader](format image.Format, rd R) IterInfo {
	return IterInfo{
		Format:      format,
		Flags:       FlagsUntransformedCover,
		IterFlags:   IterSrc,
		Init:        untransformedInit,
		GetScanline: untransformedScanline(rd),
	}
}

// Any image through the per-pixel sampler.

func generalScanline(it *Iter, mask []uint32) []uint32 {
	sample.General(it.Buffer, it.Image, it.X, it.Y, mask)
	it.Y++
	return it.Buffer
}

// Destination iterators.

func destScanline[R image.Reader](rd R) func(*Iter, []uint32) []uint32 {
	return func(it *Iter, _ []uint32) []uint32 {
		if it.Flags&IterWriteOnly == 0 {
			row := it.Image.RowBytes(it.Y)
			for i := range it.Buffer {
				it.Buffer[i] = rd.Load(row, it.X+i)
			}
		}
		return it.Buffer
	}
}

func destWriteBack(it *Iter) {
	it.Image.Format().StoreRow(it.Image.RowBytes(it.Y), it.X, it.Buffer)
	it.Y++
}

// writeBack565 packs the scanline straight into r5g6b5 storage.
func writeBack565(it *Iter) {
	row := it.Image.RowBytes(it.Y)[it.X*2:]
	for i, v := range it.Buffer {
		p := v>>8&0xf800 | v>>5&0x07e0 | v>>3&0x001f
		row[2*i] = byte(p)
		row[2*i+1] = byte(p >> 8)
	}
	it.Y++
}
