// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"encoding/binary"

	"github.com/gogpu/scanline/internal/blend"
	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/sample"
	"github.com/gogpu/scanline/internal/wide"
)

// origin returns the pixel of img sampled for image-space pixel (x, y) of
// an untransformed request.
func origin(img *image.ImageBuf, x, y int) (int, int) {
	if t := img.Transform(); t != nil {
		return x + t.M[0][2].Int(), y + t.M[1][2].Int()
	}
	return x, y
}

// alphaFill returns the bits forced on when loading from dst.
func alphaFill(dst *image.ImageBuf) uint32 {
	if dst.Format().HasAlpha() {
		return 0
	}
	return 0xff000000
}

// compositeBlit copies an untransformed source of the same depth, converting
// pixels when the layouts differ.
func compositeBlit(_ *Pipeline, _ *Implementation, info *Info) {
	sx, sy := origin(info.Src, info.SrcX, info.SrcY)
	if info.Src.Format() == info.Dst.Format() {
		copyRect(info.Src, info.Dst, sx, sy, info.DstX, info.DstY, info.Width, info.Height)
		return
	}
	convertRect(info.Src, info.Dst, sx, sy, info.DstX, info.DstY, info.Width, info.Height)
}

// copyRect copies bytes between images of the same format. Rows are walked
// bottom-up when an image is copied onto a lower part of itself.
func copyRect(src, dst *image.ImageBuf, sx, sy, dx, dy, w, h int) {
	bpp := src.Format().BytesPerPixel()
	n := w * bpp
	for k := range h {
		j := k
		if src == dst && sy < dy {
			j = h - 1 - k
		}
		copy(dst.RowBytes(dy + j)[dx*bpp:dx*bpp+n], src.RowBytes(sy + j)[sx*bpp:])
	}
}

func convertRect(src, dst *image.ImageBuf, sx, sy, dx, dy, w, h int) {
	sf, df := src.Format(), dst.Format()
	for j := range h {
		srow := src.RowBytes(sy + j)
		drow := dst.RowBytes(dy + j)
		for i := range w {
			df.Store(drow, dx+i, sf.Load(srow, sx+i))
		}
	}
}

// compositeOver8888 is OVER of an untransformed 8888 source onto 8888
// storage with the same channel order.
func compositeOver8888(_ *Pipeline, _ *Implementation, info *Info) {
	sx, sy := origin(info.Src, info.SrcX, info.SrcY)
	fill := alphaFill(info.Dst)
	for j := range info.Height {
		srow := info.Src.RowBytes(sy + j)[sx*4:]
		drow := info.Dst.RowBytes(info.DstY + j)[info.DstX*4:]
		for i := range info.Width {
			s := binary.LittleEndian.Uint32(srow[4*i:])
			switch s >> 24 {
			case 0:
				if s == 0 {
					continue
				}
			case 0xff:
				binary.LittleEndian.PutUint32(drow[4*i:], s)
				continue
			}
			d := binary.LittleEndian.Uint32(drow[4*i:]) | fill
			binary.LittleEndian.PutUint32(drow[4*i:], blend.OverPixel(s, d))
		}
	}
}

// compositeOverSolid is OVER of a solid color onto a8r8g8b8 or x8r8g8b8.
// A transparent color leaves the destination untouched.
func compositeOverSolid(_ *Pipeline, _ *Implementation, info *Info) {
	c := info.Src.SolidColor()
	if c == 0 {
		return
	}
	fill := alphaFill(info.Dst)
	for j := range info.Height {
		drow := info.Dst.RowBytes(info.DstY + j)[info.DstX*4:]
		for i := range info.Width {
			d := binary.LittleEndian.Uint32(drow[4*i:]) | fill
			binary.LittleEndian.PutUint32(drow[4*i:], blend.OverPixel(c, d))
		}
	}
}

// compositeOverSolidMask is OVER of a solid color through an a8 mask.
func compositeOverSolidMask(_ *Pipeline, _ *Implementation, info *Info) {
	c := info.Src.SolidColor()
	if c == 0 {
		return
	}
	mx, my := origin(info.Mask, info.MaskX, info.MaskY)
	fill := alphaFill(info.Dst)
	for j := range info.Height {
		mrow := info.Mask.RowBytes(my + j)[mx:]
		drow := info.Dst.RowBytes(info.DstY + j)[info.DstX*4:]
		for i := range info.Width {
			m := mrow[i]
			if m == 0 {
				continue
			}
			d := binary.LittleEndian.Uint32(drow[4*i:]) | fill
			binary.LittleEndian.PutUint32(drow[4*i:], blend.OverPixel(blend.InPixel(c, m), d))
		}
	}
}

// compositeAdd8 is the saturating sum of two a8 images.
func compositeAdd8(_ *Pipeline, _ *Implementation, info *Info) {
	sx, sy := origin(info.Src, info.SrcX, info.SrcY)
	for j := range info.Height {
		srow := info.Src.RowBytes(sy + j)[sx:]
		drow := info.Dst.RowBytes(info.DstY + j)[info.DstX:]
		for i := range info.Width {
			drow[i] = byte(min(uint16(srow[i])+uint16(drow[i]), 255))
		}
	}
}

// compositeIn8888to8 multiplies an a8 destination by the source alpha.
func compositeIn8888to8(_ *Pipeline, _ *Implementation, info *Info) {
	sx, sy := origin(info.Src, info.SrcX, info.SrcY)
	for j := range info.Height {
		srow := info.Src.RowBytes(sy + j)[sx*4:]
		drow := info.Dst.RowBytes(info.DstY + j)[info.DstX:]
		for i := range info.Width {
			sa := srow[4*i+3]
			drow[i] = byte(blend.InPixel(uint32(sa)<<24, drow[i]) >> 24)
		}
	}
}

// nearestKernel returns a SRC or OVER kernel for a nearest-scaled 8888
// source. Scanlines are sampled into a staging buffer, then stored or
// composited straight into the destination row.
func nearestKernel[R image.Reader](rd R, op blend.Op) CompositeFunc {
	return func(p *Pipeline, _ *Implementation, info *Info) {
		buf, err := p.pool.Get(info.Width)
		if err != nil {
			p.logger.Warn("scanline: composite skipped", "kernel", "nearest", "error", err)
			return
		}
		defer p.pool.Put(buf)
		buf = buf[:info.Width]

		src, dst := info.Src, info.Dst
		t := transformOf(src)
		ux, _ := t.Unit()
		hrep, vrep := src.Repeat(), src.Repeat()
		if info.SrcFlags.Has(FlagCoverNearest) {
			hrep, vrep = image.RepeatCover, image.RepeatCover
		}
		fill := alphaFill(dst)
		df := dst.Format()

		for j := range info.Height {
			px, py := t.ScanlineStart(info.SrcX, info.SrcY+j)
			drow := dst.RowBytes(info.DstY + j)
			y := sample.RowIndex(py-fixed.E, src.Height(), vrep)
			if y < 0 {
				clear(buf)
			} else {
				sample.Nearest(rd, buf, src.RowBytes(y), src.Width(), px-fixed.E, ux, hrep, nil)
			}
			if op == blend.Src {
				df.StoreRow(drow, info.DstX, buf)
				continue
			}
			row := drow[info.DstX*4:]
			for i, s := range buf {
				if s == 0 {
					continue
				}
				if s>>24 != 0xff {
					s = blend.OverPixel(s, binary.LittleEndian.Uint32(row[4*i:])|fill)
				}
				binary.LittleEndian.PutUint32(row[4*i:], s)
			}
		}
	}
}

// Wide tier kernels work on whole destination rows converted to working
// pixels so the 16-lane combiners can run over them.

type wideRows struct {
	dst, src, mask []uint32
}

func (p *Pipeline) wideRows(width int, src, mask bool) (*wideRows, bool) {
	var r wideRows
	var err error
	get := func(b *[]uint32) {
		if err == nil {
			*b, err = p.pool.Get(width)
			if err == nil {
				*b = (*b)[:width]
			}
		}
	}
	get(&r.dst)
	if src {
		get(&r.src)
	}
	if mask {
		get(&r.mask)
	}
	if err != nil {
		p.logger.Warn("scanline: composite skipped", "kernel", "wide", "error", err)
		r.release(p.pool)
		return nil, false
	}
	return &r, true
}

func (r *wideRows) release(pool *image.Pool) {
	for _, b := range [][]uint32{r.dst, r.src, r.mask} {
		if b != nil {
			pool.Put(b)
		}
	}
}

// wideOverSolid is OVER of a solid color, optionally through an a8 mask.
func wideOverSolid(p *Pipeline, _ *Implementation, info *Info) {
	c := info.Src.SolidColor()
	if c == 0 {
		return
	}
	rows, ok := p.wideRows(info.Width, false, info.Mask != nil)
	if !ok {
		return
	}
	defer rows.release(p.pool)

	var mx, my int
	if info.Mask != nil {
		mx, my = origin(info.Mask, info.MaskX, info.MaskY)
	}
	df := info.Dst.Format()
	for j := range info.Height {
		drow := info.Dst.RowBytes(info.DstY + j)
		df.LoadRow(rows.dst, drow, info.DstX)
		if info.Mask != nil {
			image.FormatA8.LoadRow(rows.mask, info.Mask.RowBytes(my+j), mx)
		}
		wide.OverSolid(rows.dst, c, rows.mask)
		df.StoreRow(drow, info.DstX, rows.dst)
	}
}

// wideCombine runs the batched combiner of an untransformed a8r8g8b8
// source against the destination.
func wideCombine(p *Pipeline, _ *Implementation, info *Info) {
	rows, ok := p.wideRows(info.Width, true, false)
	if !ok {
		return
	}
	defer rows.release(p.pool)

	sx, sy := origin(info.Src, info.SrcX, info.SrcY)
	df := info.Dst.Format()
	for j := range info.Height {
		drow := info.Dst.RowBytes(info.DstY + j)
		image.FormatA8R8G8B8.LoadRow(rows.src, info.Src.RowBytes(sy+j), sx)
		df.LoadRow(rows.dst, drow, info.DstX)
		blend.CombineWide(info.Op, rows.dst, rows.src, nil)
		df.StoreRow(drow, info.DstX, rows.dst)
	}
}
