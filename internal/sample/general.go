// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/zone"
)

// fetch returns pixel (ix, iy) of img under repeat, or 0 when it lies
// outside the image under RepeatNone.
func fetch(img *image.ImageBuf, ix, iy int, repeat image.Repeat) uint32 {
	ix = zone.Index(ix, img.Width(), repeat)
	iy = zone.Index(iy, img.Height(), repeat)
	if ix < 0 || iy < 0 {
		return 0
	}
	return img.Format().Load(img.RowBytes(iy), ix)
}

// General samples the destination scanline starting at (x, y) from img,
// honouring its transform (any affine, including shear), filter and repeat.
// It handles every image and is the reference the specialised fetchers
// must agree with.
func General(dst []uint32, img *image.ImageBuf, x, y int, mask []uint32) {
	if img.IsSolid() {
		c := img.SolidColor()
		for i := range dst {
			if mask != nil && mask[i]>>24 == 0 {
				dst[i] = 0
			} else {
				dst[i] = c
			}
		}
		return
	}

	repeat := img.Repeat()
	t := img.Transform()
	if t == nil {
		for i := range dst {
			if mask != nil && mask[i]>>24 == 0 {
				dst[i] = 0
				continue
			}
			dst[i] = fetch(img, x+i, y, repeat)
		}
		return
	}

	px, py := t.ScanlineStart(x, y)
	ux, uy := t.Unit()
	fx, fy := int64(px), int64(py)
	bilinear := img.Filter() == image.FilterBilinear
	if bilinear {
		fx -= int64(fixed.Half)
		fy -= int64(fixed.Half)
	} else {
		fx -= int64(fixed.E)
		fy -= int64(fixed.E)
	}

	for i := range dst {
		if mask != nil && mask[i]>>24 == 0 {
			dst[i] = 0
		} else {
			ix, iy := int(fx>>fixed.Bits), int(fy>>fixed.Bits)
			if bilinear {
				dx, dy := Weight(fx), Weight(fy)
				tag, trb := Lerp(fetch(img, ix, iy, repeat), fetch(img, ix+1, iy, repeat), dx)
				bag, brb := Lerp(fetch(img, ix, iy+1, repeat), fetch(img, ix+1, iy+1, repeat), dx)
				dst[i] = Blend2(tag, trb, bag, brb, dy)
			} else {
				dst[i] = fetch(img, ix, iy, repeat)
			}
		}
		fx += int64(ux)
		fy += int64(uy)
	}
}
