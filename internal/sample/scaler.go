// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"math"

	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/zone"
)

const noLine = math.MinInt

// Scaler produces bilinear scanlines of a shear-free transformed image for
// a fixed destination span. Every destination row starts at the same
// source x, so a horizontally interpolated source row can be reused by all
// destination rows that need it.
//
// Two accumulator slots hold source rows y and y+1; slot y&1 caches row y.
// A slot is recomputed only when the row it must hold changes.
type Scaler[R image.Reader] struct {
	rd      R
	img     *image.ImageBuf
	pool    *image.Pool
	x, ux   fixed.Fixed
	hrepeat image.Repeat
	vrepeat image.Repeat

	acc   [2][]uint32
	zero  []uint32
	lineY [2]int

	materialized int
}

func rowLen(n int) int {
	return 2 * ((n + Granule - 1) / Granule * Granule)
}

// NewScaler allocates the accumulator rows for a span of n pixels starting
// at biased source position x with step ux. It fails with
// image.ErrScratchExhausted when the pool is over budget.
func NewScaler[R image.Reader](rd R, img *image.ImageBuf, pool *image.Pool, x, ux fixed.Fixed, n int, hrepeat, vrepeat image.Repeat) (*Scaler[R], error) {
	s := &Scaler[R]{
		rd:      rd,
		img:     img,
		pool:    pool,
		x:       x,
		ux:      ux,
		hrepeat: hrepeat,
		vrepeat: vrepeat,
		lineY:   [2]int{noLine, noLine},
	}
	size := rowLen(n)
	for _, buf := range []*[]uint32{&s.acc[0], &s.acc[1], &s.zero} {
		b, err := pool.Get(size)
		if err != nil {
			s.Close()
			return nil, err
		}
		*buf = b[:2*n]
	}
	return s, nil
}

// Scanline writes the bilinear samples for biased source row position y.
func (s *Scaler[R]) Scanline(dst []uint32, y fixed.Fixed) {
	y0 := y.Int()
	dy := Weight(int64(y))
	if s.vrepeat == image.RepeatNone {
		h := s.img.Height()
		if y0 < -1 || y0 >= h || (y0 == -1 && dy == 0) {
			clear(dst)
			return
		}
	}
	if dy == 0 {
		Pass2a(dst, s.row(y0))
		return
	}
	var rows [2][]uint32
	rows[y0&1] = s.row(y0)
	rows[(y0+1)&1] = s.row(y0 + 1)
	w := dy
	if y0&1 == 1 {
		w = bilinearOne - dy
	}
	Pass2(dst, rows[0], rows[1], w)
}

// row returns the accumulator row for source row yi, materialising it if
// its slot holds another row. Rows outside the image under RepeatNone are
// the shared zero row.
func (s *Scaler[R]) row(yi int) []uint32 {
	src := zone.Index(yi, s.img.Height(), s.vrepeat)
	if src < 0 {
		return s.zero
	}
	slot := yi & 1
	if s.lineY[slot] != yi {
		Pass1(s.rd, s.acc[slot], s.img.RowBytes(src), s.img.Width(), s.x, s.ux, s.hrepeat)
		s.lineY[slot] = yi
		s.materialized++
	}
	return s.acc[slot]
}

// Reset forgets the cached rows. Use it before producing rows out of order.
func (s *Scaler[R]) Reset() {
	s.lineY = [2]int{noLine, noLine}
}

// Materialized returns how many source rows have been interpolated.
func (s *Scaler[R]) Materialized() int {
	return s.materialized
}

// Close returns the accumulator rows to the pool.
func (s *Scaler[R]) Close() {
	for _, buf := range []*[]uint32{&s.acc[0], &s.acc[1], &s.zero} {
		if *buf != nil {
			s.pool.Put(*buf)
			*buf = nil
		}
	}
}
