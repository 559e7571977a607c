// Package scanline is a streaming 2D compositing and resampling engine.
//
// # Overview
//
// scanline composites a source image, optionally through a mask, onto a
// destination image one scanline at a time. Sources may carry an affine
// transform and are resampled with a nearest or bilinear filter under one of
// four repeat modes (none, normal, pad, reflect). Every request is matched
// against tables of specialised kernels; anything they do not cover runs
// through a general path that handles all formats, operators and transforms.
//
// # Quick Start
//
//	import "github.com/gogpu/scanline"
//
//	src, _ := scanline.LoadImage("photo.png")
//	t := scanline.Scale(scanline.FixedFromFloat(0.5), scanline.FixedFromFloat(0.5))
//	_ = src.SetTransform(&t)
//	src.SetFilter(scanline.FilterBilinear)
//
//	dst, _ := scanline.NewImage(2*src.Width(), 2*src.Height(), scanline.FormatA8R8G8B8)
//	_ = scanline.Composite(scanline.OpOver, src, nil, dst, 0, 0, 0, 0, 0, 0, dst.Width(), dst.Height())
//	_ = dst.SavePNG("large.png")
//
// # Coordinates
//
// A transform maps destination space to source space. The centre of
// destination pixel (x, y) is (x+0.5, y+0.5); the source pixel sampled by
// the nearest filter is the one containing the transformed centre.
// Positions are 16.16 fixed point.
//
// # Pixels
//
// All images store premultiplied alpha. Colors passed to Fill and NewSolid
// are premultiplied a8r8g8b8 values (0xAARRGGBB).
//
// # Concurrency
//
// A Compositor is safe for concurrent use. Composites whose destination
// rectangles are disjoint may run in parallel; with WithWorkers a single
// composite is split into row bands that run on a worker pool.
//
// # Logging
//
// The package is silent by default. SetLogger installs a log/slog logger
// that receives degraded-path warnings and dispatch diagnostics.
package scanline

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
