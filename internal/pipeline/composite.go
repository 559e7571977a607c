// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline matches composite requests to kernels and runs them.
//
// A request (operator, source, optional mask, destination) is classified
// into formats and capability flags, its operator is strength-reduced, and
// the first matching fast path of the highest enabled tier runs it. The
// general tier's universal entry drives per-role scanline iterators
// through the operator's combiner, so every request has a kernel.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"golang.org/x/sys/cpu"

	"github.com/gogpu/scanline/internal/blend"
	"github.com/gogpu/scanline/internal/cache"
	"github.com/gogpu/scanline/internal/image"
)

// DisableEnv names the environment variable listing tiers to disable,
// separated by commas or spaces. The general tier cannot be disabled.
const DisableEnv = "SCANLINE_DISABLE"

// lookupCacheSize bounds the number of remembered request signatures.
const lookupCacheSize = 64

// Info describes one composite. Coordinates are in the destination for
// Dst and in image space for Src and Mask; the rectangle must already be
// clipped to the destination.
type Info struct {
	Op     blend.Op
	Src    *image.ImageBuf
	Mask   *image.ImageBuf
	Dst    *image.ImageBuf
	SrcX   int
	SrcY   int
	MaskX  int
	MaskY  int
	DstX   int
	DstY   int
	Width  int
	Height int

	// Set by Composite before dispatch.
	SrcFlags  Flags
	MaskFlags Flags
	DstFlags  Flags
}

// Options configure a Pipeline.
type Options struct {
	// Disabled lists tier names to skip, in addition to DisableEnv.
	Disabled []string
	// Pool provides scratch scanlines. Nil uses image.DefaultPool.
	Pool *image.Pool
	// Logger receives degraded-path warnings and dispatch diagnostics.
	Logger *slog.Logger
}

// Pipeline holds the tier chain and the scratch pool shared by its
// iterators. It is safe for concurrent use; composites on disjoint
// destination regions may run in parallel.
type Pipeline struct {
	top     *Implementation
	pool    *image.Pool
	logger  *slog.Logger
	lookups *cache.Cache[lookupKey, lookupResult]
}

// lookupKey is everything table matching depends on.
type lookupKey struct {
	op                  blend.Op
	src, mask, dst      image.Format
	srcFlags, maskFlags Flags
	dstFlags            Flags
}

type lookupResult struct {
	imp *Implementation
	fp  *FastPath
}

// WideSupported reports whether the CPU has the vector units the wide tier
// is written for.
func WideSupported() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// ParseDisabled splits a tier list as accepted by DisableEnv.
func ParseDisabled(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// New builds the tier chain: wide (when the CPU supports it), fast and
// general, minus disabled tiers.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		pool:    opts.Pool,
		logger:  opts.Logger,
		lookups: cache.New[lookupKey, lookupResult](lookupCacheSize),
	}
	if p.pool == nil {
		p.pool = image.DefaultPool()
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	disabled := make(map[string]bool)
	for _, name := range append(ParseDisabled(os.Getenv(DisableEnv)), opts.Disabled...) {
		disabled[strings.ToLower(name)] = true
	}

	p.top = newGeneral()
	if !disabled["fast"] {
		p.top = newFast(p.top)
	}
	if !disabled["wide"] && WideSupported() {
		p.top = newWide(p.top)
	}
	p.logger.Debug("scanline: pipeline tiers", "tiers", p.top.Tiers())
	return p
}

// Tiers returns the enabled tier names, highest priority first.
func (p *Pipeline) Tiers() []string {
	return p.top.Tiers()
}

// Top returns the highest-priority tier.
func (p *Pipeline) Top() *Implementation {
	return p.top
}

// dispatchFormat is the format an image presents to the tables.
func dispatchFormat(img *image.ImageBuf) image.Format {
	switch {
	case img == nil:
		return image.FormatNull
	case img.IsSolid():
		return image.FormatSolid
	default:
		return img.Format()
	}
}

// reductions[op] gives the equivalent operator for
// [neither opaque, source opaque, destination opaque, both opaque].
var reductions = [...][4]blend.Op{
	blend.Clear:       {blend.Clear, blend.Clear, blend.Clear, blend.Clear},
	blend.Src:         {blend.Src, blend.Src, blend.Src, blend.Src},
	blend.Dst:         {blend.Dst, blend.Dst, blend.Dst, blend.Dst},
	blend.Over:        {blend.Over, blend.Src, blend.Over, blend.Src},
	blend.OverReverse: {blend.OverReverse, blend.OverReverse, blend.Dst, blend.Dst},
	blend.In:          {blend.In, blend.In, blend.Src, blend.Src},
	blend.InReverse:   {blend.InReverse, blend.Dst, blend.InReverse, blend.Dst},
	blend.Out:         {blend.Out, blend.Out, blend.Clear, blend.Clear},
	blend.OutReverse:  {blend.OutReverse, blend.Clear, blend.OutReverse, blend.Clear},
	blend.Atop:        {blend.Atop, blend.In, blend.Over, blend.Src},
	blend.AtopReverse: {blend.AtopReverse, blend.OverReverse, blend.InReverse, blend.Dst},
	blend.Xor:         {blend.Xor, blend.Out, blend.OutReverse, blend.Clear},
	blend.Add:         {blend.Add, blend.Add, blend.Add, blend.Add},
}

// Reduce returns the cheapest operator equivalent to op given which
// operands are known to be opaque. Blend modes are returned unchanged.
func Reduce(op blend.Op, srcOpaque, dstOpaque bool) blend.Op {
	if int(op) >= len(reductions) {
		return op
	}
	i := 0
	if srcOpaque {
		i |= 1
	}
	if dstOpaque {
		i |= 2
	}
	return reductions[op][i]
}

// Classify fills in the request flags of info.
func Classify(info *Info) {
	info.SrcFlags = ImageFlags(info.Src) | CoverFlags(info.Src, info.SrcX, info.SrcY, info.Width, info.Height)
	info.MaskFlags = FlagOpaque
	if info.Mask != nil {
		info.MaskFlags = ImageFlags(info.Mask) | CoverFlags(info.Mask, info.MaskX, info.MaskY, info.Width, info.Height)
	}
	info.DstFlags = ImageFlags(info.Dst)
	if info.Dst.Format().IsOpaque() {
		info.DstFlags |= FlagOpaque
	}
}

// Lookup returns the tier and entry serving the request. The general
// tier's last entry matches every request. Results are remembered per
// request signature.
func (p *Pipeline) Lookup(info *Info) (*Implementation, *FastPath) {
	key := lookupKey{
		op:        info.Op,
		src:       dispatchFormat(info.Src),
		srcFlags:  info.SrcFlags,
		mask:      dispatchFormat(info.Mask),
		maskFlags: info.MaskFlags,
		dst:       dispatchFormat(info.Dst),
		dstFlags:  info.DstFlags,
	}
	if p.lookups != nil {
		if r, ok := p.lookups.Get(key); ok {
			return r.imp, r.fp
		}
	}
	imp, fp := p.top.lookup(key.op, key.src, key.srcFlags, key.mask, key.maskFlags, key.dst, key.dstFlags)
	if p.lookups != nil {
		p.lookups.Set(key, lookupResult{imp, fp})
	}
	return imp, fp
}

// LookupStats reports how often Lookup was answered from its cache.
func (p *Pipeline) LookupStats() cache.Stats {
	if p.lookups == nil {
		return cache.Stats{}
	}
	return p.lookups.Stats()
}

// Composite classifies, reduces and dispatches one composite.
func (p *Pipeline) Composite(info *Info) {
	if info.Width <= 0 || info.Height <= 0 {
		return
	}
	Classify(info)
	srcOpaque := info.SrcFlags.Has(FlagOpaque) && info.MaskFlags.Has(FlagOpaque)
	info.Op = Reduce(info.Op, srcOpaque, info.DstFlags.Has(FlagOpaque))
	if info.Op == blend.Dst {
		return
	}

	imp, fp := p.Lookup(info)
	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		p.logger.Debug("scanline: dispatch",
			"op", info.Op.String(),
			"src", dispatchFormat(info.Src).String(),
			"mask", dispatchFormat(info.Mask).String(),
			"dst", dispatchFormat(info.Dst).String(),
			"tier", imp.Name,
			"kernel", fp.Name)
	}
	fp.Func(p, imp, info)
}

// newIter builds an iterator from the first matching table entry.
func (p *Pipeline) newIter(img *image.ImageBuf, x, y, width, height int, flags Flags, iterFlags IterFlags) (*Iter, error) {
	buf, err := p.pool.Get(width)
	if err != nil {
		return nil, err
	}
	it := &Iter{
		Image:      img,
		Buffer:     buf[:width],
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Flags:      iterFlags,
		ImageFlags: flags,
		pool:       p.pool,
		logger:     p.logger,
	}
	it.start(p.top.iter(dispatchFormat(img), flags, iterFlags))
	return it, nil
}

// generalComposite drives source, mask and destination iterators through
// the combiner row by row, top to bottom.
func generalComposite(p *Pipeline, _ *Implementation, info *Info) {
	var iters []*Iter
	defer func() {
		for _, it := range iters {
			it.Fini()
		}
	}()
	open := func(img *image.ImageBuf, x, y int, flags Flags, iterFlags IterFlags) *Iter {
		it, err := p.newIter(img, x, y, info.Width, info.Height, flags, iterFlags)
		if err != nil {
			p.logger.Warn("scanline: composite skipped", "kernel", "general", "error", err)
			return nil
		}
		iters = append(iters, it)
		return it
	}

	src := open(info.Src, info.SrcX, info.SrcY, info.SrcFlags, IterSrc)
	if src == nil {
		return
	}
	var mask *Iter
	if info.Mask != nil {
		if mask = open(info.Mask, info.MaskX, info.MaskY, info.MaskFlags, IterSrc); mask == nil {
			return
		}
	}
	destFlags := IterDest
	if !blend.NeedsDest(info.Op) {
		destFlags |= IterWriteOnly
	}
	dst := open(info.Dst, info.DstX, info.DstY, info.DstFlags, destFlags)
	if dst == nil {
		return
	}

	combine := p.top.combiner()
	for range info.Height {
		var m []uint32
		if mask != nil {
			m = mask.GetScanline(nil)
		}
		s := src.GetScanline(m)
		d := dst.GetScanline(nil)
		combine(info.Op, d, s, m)
		dst.WriteBack()
	}
}

// Blt copies a rectangle between images without transform or blending.
// The rectangle must lie inside both images.
func (p *Pipeline) Blt(src, dst *image.ImageBuf, srcX, srcY, dstX, dstY, width, height int) {
	for imp := p.top; imp != nil; imp = imp.Fallback {
		if imp.Blt != nil && imp.Blt(src, dst, srcX, srcY, dstX, dstY, width, height) {
			return
		}
	}
}

// Fill sets a rectangle of dst to color. The rectangle must lie inside dst.
func (p *Pipeline) Fill(dst *image.ImageBuf, x, y, width, height int, color uint32) {
	for imp := p.top; imp != nil; imp = imp.Fallback {
		if imp.Fill != nil && imp.Fill(dst, x, y, width, height, color) {
			return
		}
	}
}
