package scanline

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/scanline/internal/image"
	"github.com/gogpu/scanline/internal/parallel"
	"github.com/gogpu/scanline/internal/pipeline"
)

// Errors returned for invalid composite requests.
var (
	// ErrNilImage is returned when a required image is nil.
	ErrNilImage = errors.New("scanline: nil image")

	// ErrSolidImage is returned when an image that must have pixel storage
	// is a solid image.
	ErrSolidImage = errors.New("scanline: image has no storage")

	// ErrInvalidOperator is returned for an unknown operator.
	ErrInvalidOperator = errors.New("scanline: invalid operator")
)

// Compositor runs composites through a kernel pipeline. It is safe for
// concurrent use.
type Compositor struct {
	pipe       *pipeline.Pipeline
	workers    *parallel.WorkerPool
	bandHeight int
}

// New creates a compositor.
func New(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(sharedHandler{})
	}
	var pool *image.Pool
	if o.scratchLimit > 0 {
		pool = image.NewPool(8)
		pool.SetLimit(o.scratchLimit)
	}

	pipe := pipeline.New(pipeline.Options{
		Disabled: o.disabled,
		Pool:     pool,
		Logger:   logger,
	})
	c := &Compositor{
		pipe:       pipe,
		bandHeight: o.bandHeight,
	}
	if o.workers != 1 {
		c.workers = parallel.NewWorkerPool(o.workers)
	}
	return c
}

// Tiers returns the enabled kernel tiers, highest priority first.
func (c *Compositor) Tiers() []string {
	return c.pipe.Tiers()
}

// Workers returns the number of goroutines a composite may use.
func (c *Compositor) Workers() int {
	if c.workers == nil {
		return 1
	}
	return c.workers.Workers()
}

// Close stops the compositor's workers. Composites issued afterwards run on
// the calling goroutine.
func (c *Compositor) Close() {
	if c.workers != nil {
		c.workers.Close()
	}
}

// Composite combines src, through mask when it is not nil, into the
// width x height rectangle of dst at (dstX, dstY) using op.
//
// (srcX, srcY) and (maskX, maskY) are the destination-space positions that
// map, through each image's transform, onto the rectangle's first pixel.
// The rectangle is clipped to dst; source and mask positions move with it.
// Samples outside a source follow its repeat mode.
//
// If scratch memory runs out, affected scanlines are composited from
// transparent pixels and a warning is logged; the destination region then
// has no guaranteed content.
func (c *Compositor) Composite(op Operator, src, mask, dst *Image,
	srcX, srcY, maskX, maskY, dstX, dstY, width, height int) error {
	if src == nil || dst == nil {
		return ErrNilImage
	}
	if dst.IsSolid() {
		return ErrSolidImage
	}
	if !op.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidOperator, op)
	}

	if dstX < 0 {
		srcX, maskX, width, dstX = srcX-dstX, maskX-dstX, width+dstX, 0
	}
	if dstY < 0 {
		srcY, maskY, height, dstY = srcY-dstY, maskY-dstY, height+dstY, 0
	}
	width = min(width, dst.Width()-dstX)
	height = min(height, dst.Height()-dstY)
	if width <= 0 || height <= 0 {
		return nil
	}

	info := pipeline.Info{
		Op: op, Src: src, Mask: mask, Dst: dst,
		SrcX: srcX, SrcY: srcY,
		MaskX: maskX, MaskY: maskY,
		DstX: dstX, DstY: dstY,
		Width: width, Height: height,
	}
	// Bands would read rows another band writes.
	if c.workers == nil || src == dst || (mask != nil && mask == dst) || height < 2*c.bandHeight {
		c.pipe.Composite(&info)
		return nil
	}

	c.workers.RunBands(dstY, height, c.bandHeight, func(b parallel.Band) {
		band := info
		off := b.Y0 - dstY
		band.SrcY += off
		band.MaskY += off
		band.DstY = b.Y0
		band.Height = b.Height()
		c.pipe.Composite(&band)
	})
	return nil
}

// Fill sets the width x height rectangle of dst at (x, y), clipped to dst,
// to the premultiplied color.
func (c *Compositor) Fill(dst *Image, x, y, width, height int, color uint32) error {
	if dst == nil {
		return ErrNilImage
	}
	if dst.IsSolid() {
		return ErrSolidImage
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, dst.Width()), min(y+height, dst.Height())
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	c.pipe.Fill(dst, x0, y0, x1-x0, y1-y0, color)
	return nil
}

// Blt copies a width x height rectangle from src at (srcX, srcY) to dst at
// (dstX, dstY), converting pixel formats. Transforms, filters and repeat
// modes are ignored; the rectangle is clipped to both images.
func (c *Compositor) Blt(src, dst *Image, srcX, srcY, dstX, dstY, width, height int) error {
	if src == nil || dst == nil {
		return ErrNilImage
	}
	if src.IsSolid() || dst.IsSolid() {
		return ErrSolidImage
	}
	if d := min(srcX, dstX); d < 0 {
		srcX, dstX, width = srcX-d, dstX-d, width+d
	}
	if d := min(srcY, dstY); d < 0 {
		srcY, dstY, height = srcY-d, dstY-d, height+d
	}
	width = min(width, src.Width()-srcX, dst.Width()-dstX)
	height = min(height, src.Height()-srcY, dst.Height()-dstY)
	if width <= 0 || height <= 0 {
		return nil
	}
	c.pipe.Blt(src, dst, srcX, srcY, dstX, dstY, width, height)
	return nil
}

var (
	defaultOnce       sync.Once
	defaultCompositor *Compositor
)

// Default returns the package compositor used by Composite, Fill and Blt.
// It composites serially and logs through the package logger.
func Default() *Compositor {
	defaultOnce.Do(func() {
		defaultCompositor = New()
	})
	return defaultCompositor
}

// Composite runs Compositor.Composite on the default compositor.
func Composite(op Operator, src, mask, dst *Image,
	srcX, srcY, maskX, maskY, dstX, dstY, width, height int) error {
	return Default().Composite(op, src, mask, dst, srcX, srcY, maskX, maskY, dstX, dstY, width, height)
}

// Fill runs Compositor.Fill on the default compositor.
func Fill(dst *Image, x, y, width, height int, color uint32) error {
	return Default().Fill(dst, x, y, width, height, color)
}

// Blt runs Compositor.Blt on the default compositor.
func Blt(src, dst *Image, srcX, srcY, dstX, dstY, width, height int) error {
	return Default().Blt(src, dst, srcX, srcY, dstX, dstY, width, height)
}
