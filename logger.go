package scanline

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with composites on any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by scanline and its compositors.
// By default scanline produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by scanline:
//   - [slog.LevelDebug]: tier selection and the kernel chosen per composite
//   - [slog.LevelWarn]: scratch exhaustion degrading an iterator or skipping
//     a composite
//
// Compositors created with WithLogger keep their own logger.
//
// Example:
//
//	scanline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// sharedHandler forwards to the handler of the package logger current at
// the time of each call, so compositors follow later SetLogger calls.
type sharedHandler struct{}

func (sharedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Logger().Handler().Enabled(ctx, level)
}

func (sharedHandler) Handle(ctx context.Context, r slog.Record) error {
	return Logger().Handler().Handle(ctx, r)
}

func (sharedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Logger().Handler().WithAttrs(attrs)
}

func (sharedHandler) WithGroup(name string) slog.Handler {
	return Logger().Handler().WithGroup(name)
}
