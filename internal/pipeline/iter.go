// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"log/slog"

	"github.com/gogpu/scanline/internal/image"
)

// IterFlags describe the role of an iterator.
type IterFlags uint8

const (
	// IterSrc marks a source or mask iterator.
	IterSrc IterFlags = 1 << iota
	// IterDest marks a destination iterator.
	IterDest
	// IterWriteOnly marks a destination iterator whose scanlines are
	// overwritten without being read.
	IterWriteOnly
)

// Iter produces one scanline per call, top to bottom, from an image.
//
// Source and mask iterators start at image-space pixel (X, Y) of the
// composite; destination iterators at destination pixel (X, Y). Each
// iterator owns its Buffer and any scratch attached by Init, so iterators
// of different composites never share state.
type Iter struct {
	Image  *image.ImageBuf
	Buffer []uint32
	X, Y   int
	Width  int
	Height int
	Flags  IterFlags
	// ImageFlags are the image and cover flags of the request.
	ImageFlags Flags

	// Data holds per-iterator state set up by Init.
	Data any

	pool   *image.Pool
	logger *slog.Logger

	getScanline func(it *Iter, mask []uint32) []uint32
	writeBack   func(it *Iter)
	fini        func(it *Iter)
}

// IterInfo is an iterator table entry. It matches images of Format carrying
// all of Flags, for requests carrying all of IterFlags. Nil callbacks are
// no-ops.
type IterInfo struct {
	Format      image.Format
	Flags       Flags
	IterFlags   IterFlags
	Init        func(it *Iter) error
	GetScanline func(it *Iter, mask []uint32) []uint32
	WriteBack   func(it *Iter)
	Fini        func(it *Iter)
}

// Matches reports whether the entry serves an iterator request.
func (ii *IterInfo) Matches(format image.Format, flags Flags, iterFlags IterFlags) bool {
	return ii.Format.Matches(format) && flags.Has(ii.Flags) && iterFlags&ii.IterFlags == ii.IterFlags
}

// GetScanline returns the next scanline. mask, when not nil, is the mask
// scanline for the same row; pixels whose mask alpha is zero may be left
// unsampled.
func (it *Iter) GetScanline(mask []uint32) []uint32 {
	if it.getScanline == nil {
		it.Y++
		return it.Buffer
	}
	return it.getScanline(it, mask)
}

// WriteBack commits the current destination scanline.
func (it *Iter) WriteBack() {
	if it.writeBack != nil {
		it.writeBack(it)
	}
}

// Fini releases the iterator's scratch memory.
func (it *Iter) Fini() {
	if it.fini != nil {
		it.fini(it)
	}
	if it.Buffer != nil {
		it.pool.Put(it.Buffer)
		it.Buffer = nil
	}
}

// noopScanline returns a transparent scanline. Iterators degrade to it when
// their scratch memory cannot be allocated.
func noopScanline(it *Iter, _ []uint32) []uint32 {
	clear(it.Buffer)
	it.Y++
	return it.Buffer
}

// start binds info to it and runs Init. When Init fails the iterator keeps
// producing transparent scanlines.
func (it *Iter) start(info *IterInfo) {
	it.getScanline = info.GetScanline
	it.writeBack = info.WriteBack
	it.fini = info.Fini
	if info.Init == nil {
		return
	}
	if err := info.Init(it); err != nil {
		it.logger.Warn("scanline: iterator degraded to no-op",
			"image", it.Image.Format().String(),
			"width", it.Width,
			"error", err)
		if it.fini != nil {
			it.fini(it)
		}
		it.getScanline = noopScanline
		it.writeBack = nil
		it.fini = nil
	}
}
