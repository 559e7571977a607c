// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/scanline/internal/blend"
	"github.com/gogpu/scanline/internal/image"
)

// OpAny matches every operator in a fast-path entry.
const OpAny blend.Op = 0xff

// CompositeFunc runs a whole composite. imp is the tier that owns the
// matching entry.
type CompositeFunc func(p *Pipeline, imp *Implementation, info *Info)

// FastPath is one dispatch table entry. An entry matches a request when the
// operator is equal (or OpAny), each format pattern accepts the request's
// format and each request carries all of the required flags.
type FastPath struct {
	Name      string
	Op        blend.Op
	Src       image.Format
	SrcFlags  Flags
	Mask      image.Format
	MaskFlags Flags
	Dst       image.Format
	DstFlags  Flags
	Func      CompositeFunc
}

// Matches reports whether fp serves the request.
func (fp *FastPath) Matches(op blend.Op, src image.Format, srcFlags Flags,
	mask image.Format, maskFlags Flags, dst image.Format, dstFlags Flags) bool {
	return (fp.Op == OpAny || fp.Op == op) &&
		fp.Src.Matches(src) && srcFlags.Has(fp.SrcFlags) &&
		fp.Mask.Matches(mask) && maskFlags.Has(fp.MaskFlags) &&
		fp.Dst.Matches(dst) && dstFlags.Has(fp.DstFlags)
}

// Implementation is one tier of kernels. Lookups scan a tier's tables in
// order and move on to Fallback when nothing matches; the general tier at
// the bottom of the chain matches everything.
type Implementation struct {
	Name      string
	FastPaths []FastPath
	Iters     []IterInfo

	// Combine is the scanline combiner of this tier, nil to defer to the
	// fallback.
	Combine func(op blend.Op, dst, src, mask []uint32)

	// Blt and Fill report false when they cannot serve the request.
	Blt  func(src, dst *image.ImageBuf, srcX, srcY, dstX, dstY, width, height int) bool
	Fill func(dst *image.ImageBuf, x, y, width, height int, color uint32) bool

	Fallback *Implementation
}

// Tiers returns the names of the chain starting at imp, highest priority
// first.
func (imp *Implementation) Tiers() []string {
	var names []string
	for ; imp != nil; imp = imp.Fallback {
		names = append(names, imp.Name)
	}
	return names
}

func (imp *Implementation) lookup(op blend.Op, src image.Format, srcFlags Flags,
	mask image.Format, maskFlags Flags, dst image.Format, dstFlags Flags) (*Implementation, *FastPath) {
	for ; imp != nil; imp = imp.Fallback {
		for i := range imp.FastPaths {
			fp := &imp.FastPaths[i]
			if fp.Matches(op, src, srcFlags, mask, maskFlags, dst, dstFlags) {
				return imp, fp
			}
		}
	}
	return nil, nil
}

func (imp *Implementation) iter(format image.Format, flags Flags, iterFlags IterFlags) *IterInfo {
	for ; imp != nil; imp = imp.Fallback {
		for i := range imp.Iters {
			if ii := &imp.Iters[i]; ii.Matches(format, flags, iterFlags) {
				return ii
			}
		}
	}
	return nil
}

func (imp *Implementation) combiner() func(op blend.Op, dst, src, mask []uint32) {
	for ; imp != nil; imp = imp.Fallback {
		if imp.Combine != nil {
			return imp.Combine
		}
	}
	return blend.Combine
}

// General tier: universal fallback entries only.

func newGeneral() *Implementation {
	return &Implementation{
		Name: "general",
		FastPaths: []FastPath{
			{Name: "general", Op: OpAny, Src: image.FormatAny, Mask: image.FormatAny, Dst: image.FormatAny, Func: generalComposite},
		},
		Iters: []IterInfo{
			{Format: image.FormatSolid, IterFlags: IterSrc, Init: solidInit},
			{Format: image.FormatAny, IterFlags: IterSrc, GetScanline: generalScanline},
			{Format: image.FormatAny, IterFlags: IterDest, GetScanline: generalDestScanline, WriteBack: destWriteBack},
		},
		Combine: blend.Combine,
		Blt:     generalBlt,
		Fill:    generalFill,
	}
}

// Fast tier: portable specialised kernels and fetchers.

func newFast(fallback *Implementation) *Implementation {
	var paths []FastPath
	add := func(name string, op blend.Op, src image.Format, srcFlags Flags, mask image.Format, maskFlags Flags, fn CompositeFunc, dsts ...image.Format) {
		for _, d := range dsts {
			paths = append(paths, FastPath{
				Name: name, Op: op,
				Src: src, SrcFlags: srcFlags,
				Mask: mask, MaskFlags: maskFlags,
				Dst: d, Func: fn,
			})
		}
	}
	const null = image.FormatNull
	argb := []image.Format{image.FormatA8R8G8B8, image.FormatX8R8G8B8}
	abgr := []image.Format{image.FormatA8B8G8R8, image.FormatX8B8G8R8}

	add("blit32", blend.Src, image.FormatAny32, FlagsUntransformedCover, null, 0, compositeBlit, image.FormatAny32)
	add("blit16", blend.Src, image.FormatAny16, FlagsUntransformedCover, null, 0, compositeBlit, image.FormatAny16)
	add("blit8", blend.Src, image.FormatAny8, FlagsUntransformedCover, null, 0, compositeBlit, image.FormatAny8)

	add("over_8888_8888", blend.Over, image.FormatA8R8G8B8, FlagsUntransformedCover, null, 0, compositeOver8888, argb...)
	add("over_8888_8888", blend.Over, image.FormatA8B8G8R8, FlagsUntransformedCover, null, 0, compositeOver8888, abgr...)
	add("over_n_8888", blend.Over, image.FormatSolid, 0, null, 0, compositeOverSolid, argb...)
	add("over_n_8_8888", blend.Over, image.FormatSolid, 0, image.FormatA8, FlagsUntransformedCover, compositeOverSolidMask, argb...)
	add("add_8_8", blend.Add, image.FormatA8, FlagsUntransformedCover, null, 0, compositeAdd8, image.FormatA8)
	add("in_8888_8", blend.In, image.FormatA8R8G8B8, FlagsUntransformedCover, null, 0, compositeIn8888to8, image.FormatA8)
	add("in_8888_8", blend.In, image.FormatA8B8G8R8, FlagsUntransformedCover, null, 0, compositeIn8888to8, image.FormatA8)

	add("nearest_src_8888_8888", blend.Src, image.FormatA8R8G8B8, FlagsNearestScaled, null, 0, nearestKernel(image.ReadA8R8G8B8{}, blend.Src), argb...)
	add("nearest_src_x888_x888", blend.Src, image.FormatX8R8G8B8, FlagsNearestScaled, null, 0, nearestKernel(image.ReadX8R8G8B8{}, blend.Src), image.FormatX8R8G8B8)
	add("nearest_over_8888_8888", blend.Over, image.FormatA8R8G8B8, FlagsNearestScaled, null, 0, nearestKernel(image.ReadA8R8G8B8{}, blend.Over), argb...)

	return &Implementation{
		Name:      "fast",
		FastPaths: paths,
		Iters: []IterInfo{
			untransformedIter(image.FormatA8R8G8B8, image.ReadA8R8G8B8{}),
			untransformedIter(image.FormatX8R8G8B8, image.ReadX8R8G8B8{}),
			untransformedIter(image.FormatR5G6B5, image.ReadR5G6B5{}),
			untransformedIter(image.FormatA8, image.ReadA8{}),
			nearestIter(image.FormatA8R8G8B8, image.ReadA8R8G8B8{}),
			nearestIter(image.FormatX8R8G8B8, image.ReadX8R8G8B8{}),
			nearestIter(image.FormatR5G6B5, image.ReadR5G6B5{}),
			nearestIter(image.FormatA8, image.ReadA8{}),
			bilinearIter(image.FormatA8R8G8B8, image.ReadA8R8G8B8{}),
			bilinearIter(image.FormatX8R8G8B8, image.ReadX8R8G8B8{}),
			bilinearIter(image.FormatR5G6B5, image.ReadR5G6B5{}),
			bilinearIter(image.FormatA8, image.ReadA8{}),
			{Format: image.FormatA8R8G8B8, IterFlags: IterDest, GetScanline: destScanline(image.ReadA8R8G8B8{}), WriteBack: destWriteBack},
			{Format: image.FormatR5G6B5, IterFlags: IterDest, GetScanline: destScanline(image.ReadR5G6B5{}), WriteBack: writeBack565},
		},
		Blt:      fastBlt,
		Fill:     fastFill,
		Fallback: fallback,
	}
}

// Wide tier: 16-lane batched kernels and combiners.

func newWide(fallback *Implementation) *Implementation {
	argb := []image.Format{image.FormatA8R8G8B8, image.FormatX8R8G8B8}
	var paths []FastPath
	for _, d := range argb {
		paths = append(paths,
			FastPath{Name: "wide_over_n_8888", Op: blend.Over, Src: image.FormatSolid, Mask: image.FormatNull, Dst: d, Func: wideOverSolid},
			FastPath{Name: "wide_over_n_8_8888", Op: blend.Over, Src: image.FormatSolid, Mask: image.FormatA8, MaskFlags: FlagsUntransformedCover, Dst: d, Func: wideOverSolid},
			FastPath{Name: "wide_over_8888_8888", Op: blend.Over, Src: image.FormatA8R8G8B8, SrcFlags: FlagsUntransformedCover, Mask: image.FormatNull, Dst: d, Func: wideCombine},
			FastPath{Name: "wide_add_8888_8888", Op: blend.Add, Src: image.FormatA8R8G8B8, SrcFlags: FlagsUntransformedCover, Mask: image.FormatNull, Dst: d, Func: wideCombine},
		)
	}
	return &Implementation{
		Name:      "wide",
		FastPaths: paths,
		Combine:   blend.CombineWide,
		Fallback:  fallback,
	}
}
