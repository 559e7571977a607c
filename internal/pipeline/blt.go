// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import "github.com/gogpu/scanline/internal/image"

func generalDestScanline(it *Iter, _ []uint32) []uint32 {
	if it.Flags&IterWriteOnly == 0 {
		it.Image.Format().LoadRow(it.Buffer, it.Image.RowBytes(it.Y), it.X)
	}
	return it.Buffer
}

// generalBlt converts pixel by pixel between any two storage formats.
func generalBlt(src, dst *image.ImageBuf, srcX, srcY, dstX, dstY, width, height int) bool {
	if src.IsSolid() || dst.IsSolid() {
		return false
	}
	if src.Format() == dst.Format() {
		copyRect(src, dst, srcX, srcY, dstX, dstY, width, height)
		return true
	}
	convertRect(src, dst, srcX, srcY, dstX, dstY, width, height)
	return true
}

// fastBlt copies bytes when both images share a format.
func fastBlt(src, dst *image.ImageBuf, srcX, srcY, dstX, dstY, width, height int) bool {
	if src.IsSolid() || dst.IsSolid() || src.Format() != dst.Format() {
		return false
	}
	copyRect(src, dst, srcX, srcY, dstX, dstY, width, height)
	return true
}

func generalFill(dst *image.ImageBuf, x, y, width, height int, color uint32) bool {
	if dst.IsSolid() {
		return false
	}
	f := dst.Format()
	for j := range height {
		row := dst.RowBytes(y + j)
		for i := range width {
			f.Store(row, x+i, color)
		}
	}
	return true
}

// fastFill stores the color once and replicates its bytes across the
// first row, then copies that row down.
func fastFill(dst *image.ImageBuf, x, y, width, height int, color uint32) bool {
	if dst.IsSolid() || width <= 0 || height <= 0 {
		return false
	}
	f := dst.Format()
	bpp := f.BytesPerPixel()
	first := dst.RowBytes(y)[x*bpp : (x+width)*bpp]
	f.Store(first, 0, color)
	for n := bpp; n < len(first); n *= 2 {
		copy(first[n:], first[:n])
	}
	for j := 1; j < height; j++ {
		copy(dst.RowBytes(y + j)[x*bpp:], first)
	}
	return true
}
