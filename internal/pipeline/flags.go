// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"strings"

	"github.com/gogpu/scanline/internal/fixed"
	"github.com/gogpu/scanline/internal/image"
)

// Flags describe what an image (or an iterator request) can guarantee.
// A fast path or iterator declares the flags it requires; it matches when
// the request carries all of them.
type Flags uint32

const (
	// FlagIDTransform: the image has no transform.
	FlagIDTransform Flags = 1 << iota
	// FlagIntegerTranslation: the transform at most moves by whole pixels.
	FlagIntegerTranslation
	// FlagAffineTransform: the transform is affine.
	FlagAffineTransform
	// FlagScaleTransform: the transform has no shear or rotation.
	FlagScaleTransform
	// FlagXUnitPositive: stepping right moves right in the source, on the same row.
	FlagXUnitPositive
	// FlagYUnitZero: the source row is constant along a scanline.
	FlagYUnitZero
	// FlagNearestFilter: sampling picks single pixels. Set for bilinear
	// images whose samples fall on pixel centres.
	FlagNearestFilter
	// FlagBilinearFilter: the filter is bilinear.
	FlagBilinearFilter
	FlagRepeatNone
	FlagRepeatNormal
	FlagRepeatPad
	FlagRepeatReflect
	// FlagOpaque: every sample the composite reads is opaque.
	FlagOpaque
	// FlagBits: the image has pixel storage (is not solid).
	FlagBits
	// FlagCoverNearest: every nearest sample of the composite lies inside
	// the image.
	FlagCoverNearest
	// FlagCoverBilinear: every bilinear footprint of the composite lies
	// inside the image.
	FlagCoverBilinear
)

// Composite requirement shorthands.
const (
	FlagsUntransformed      = FlagIntegerTranslation | FlagBits
	FlagsUntransformedCover = FlagsUntransformed | FlagCoverNearest
	FlagsNearestScaled      = FlagScaleTransform | FlagNearestFilter | FlagBits
	FlagsBilinearScaled     = FlagScaleTransform | FlagBilinearFilter | FlagBits
)

var flagNames = []string{
	"id", "itrans", "affine", "scale", "xpos", "y0", "nearest", "bilinear",
	"none", "normal", "pad", "reflect", "opaque", "bits", "cover-nearest",
	"cover-bilinear",
}

// Has reports whether f carries every flag in want.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// String lists the set flags, separated by '|'.
func (f Flags) String() string {
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

var repeatFlags = [...]Flags{
	image.RepeatNone:    FlagRepeatNone,
	image.RepeatNormal:  FlagRepeatNormal,
	image.RepeatPad:     FlagRepeatPad,
	image.RepeatReflect: FlagRepeatReflect,
}

// ImageFlags returns the flags that hold for img regardless of which part
// of it a composite samples.
func ImageFlags(img *image.ImageBuf) Flags {
	if img.IsSolid() {
		f := FlagIDTransform | FlagIntegerTranslation | FlagAffineTransform |
			FlagScaleTransform | FlagXUnitPositive | FlagYUnitZero |
			FlagNearestFilter | FlagRepeatNormal | FlagCoverNearest | FlagCoverBilinear
		if img.IsOpaque() {
			f |= FlagOpaque
		}
		return f
	}

	f := FlagBits | repeatFlags[img.Repeat()]
	if img.IsOpaque() {
		f |= FlagOpaque
	}

	t := img.Transform()
	switch {
	case t == nil:
		f |= FlagIDTransform | FlagIntegerTranslation | FlagAffineTransform |
			FlagScaleTransform | FlagXUnitPositive | FlagYUnitZero
	case t.IsAffine():
		f |= FlagAffineTransform
		if t.IsIntegerTranslation() {
			f |= FlagIntegerTranslation
		}
		if t.IsScale() {
			f |= FlagScaleTransform
		}
		if t.XUnitPositive() {
			f |= FlagXUnitPositive
		}
		if t.YUnitZero() {
			f |= FlagYUnitZero
		}
	}

	switch img.Filter() {
	case image.FilterNearest:
		f |= FlagNearestFilter
	case image.FilterBilinear:
		f |= FlagBilinearFilter
		if f.Has(FlagIntegerTranslation) {
			f |= FlagNearestFilter
		}
	}
	return f
}

// CoverFlags returns the cover flags for sampling a width x height block of
// img whose first destination pixel maps to image-space pixel (x, y).
// An opaque format whose filter footprints are all inside the image is
// opaque even under RepeatNone.
func CoverFlags(img *image.ImageBuf, x, y, width, height int) Flags {
	if img.IsSolid() {
		return FlagCoverNearest | FlagCoverBilinear
	}
	if width <= 0 || height <= 0 {
		return 0
	}
	t := fixed.Identity()
	if m := img.Transform(); m != nil {
		t = *m
	}

	minX, minY := int64(1<<62), int64(1<<62)
	maxX, maxY := -minX, -minY
	for _, c := range [4][2]int{{x, y}, {x + width - 1, y}, {x, y + height - 1}, {x + width - 1, y + height - 1}} {
		px, py := t.ScanlineStart(c[0], c[1])
		minX, maxX = min(minX, int64(px)), max(maxX, int64(px))
		minY, maxY = min(minY, int64(py)), max(maxY, int64(py))
	}

	w := int64(img.Width()) << fixed.Bits
	h := int64(img.Height()) << fixed.Bits
	e, half, one := int64(fixed.E), int64(fixed.Half), int64(fixed.One)

	var f Flags
	if minX-e >= 0 && maxX-e < w && minY-e >= 0 && maxY-e < h {
		f |= FlagCoverNearest
	}
	if minX-half >= 0 && maxX-half <= w-one && minY-half >= 0 && maxY-half <= h-one {
		f |= FlagCoverBilinear
	}

	need := FlagCoverNearest
	if img.Filter() == image.FilterBilinear && !t.IsIntegerTranslation() {
		need = FlagCoverBilinear
	}
	if img.Format().IsOpaque() && f.Has(need) {
		f |= FlagOpaque
	}
	return f
}
