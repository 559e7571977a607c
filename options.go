package scanline

import "log/slog"

// Option configures a Compositor during creation.
//
// Example:
//
//	// Serial compositing with the package logger
//	c := scanline.New()
//
//	// Eight workers, 64-row bands, generic kernels only
//	c := scanline.New(
//	    scanline.WithWorkers(8),
//	    scanline.WithBandHeight(64),
//	    scanline.WithDisabledTiers("wide", "fast"),
//	)
type Option func(*options)

// DefaultBandHeight is the number of destination rows per parallel band.
const DefaultBandHeight = 32

type options struct {
	workers      int
	bandHeight   int
	scratchLimit int
	disabled     []string
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		workers:    1,
		bandHeight: DefaultBandHeight,
	}
}

// WithWorkers sets how many goroutines one composite may use. One (the
// default) composites on the calling goroutine; zero or less uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBandHeight sets the number of rows per parallel band. Non-positive
// values keep the default.
func WithBandHeight(h int) Option {
	return func(o *options) {
		if h > 0 {
			o.bandHeight = h
		}
	}
}

// WithScratchLimit caps the bytes of scanline scratch buffers the
// compositor may hold at once. Iterators that cannot get scratch degrade to
// transparent scanlines; see Compositor.Composite.
func WithScratchLimit(bytes int) Option {
	return func(o *options) {
		o.scratchLimit = bytes
	}
}

// WithDisabledTiers disables kernel tiers by name ("wide", "fast"). The
// general tier is always present. The SCANLINE_DISABLE environment variable
// is honoured as well.
func WithDisabledTiers(names ...string) Option {
	return func(o *options) {
		o.disabled = append(o.disabled, names...)
	}
}

// WithLogger sets a logger for this compositor instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
