package scanline

import (
	"log/slog"
	"testing"
)

func TestOptions(t *testing.T) {
	logger := slog.New(nopHandler{})
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{"defaults", nil, func(t *testing.T, o options) {
			if o.workers != 1 || o.bandHeight != DefaultBandHeight || o.scratchLimit != 0 || o.logger != nil {
				t.Errorf("defaults = %+v", o)
			}
		}},
		{"workers", []Option{WithWorkers(6)}, func(t *testing.T, o options) {
			if o.workers != 6 {
				t.Errorf("workers = %d", o.workers)
			}
		}},
		{"band height ignores non-positive", []Option{WithBandHeight(8), WithBandHeight(0)}, func(t *testing.T, o options) {
			if o.bandHeight != 8 {
				t.Errorf("bandHeight = %d", o.bandHeight)
			}
		}},
		{"disabled tiers accumulate", []Option{WithDisabledTiers("wide"), WithDisabledTiers("fast")}, func(t *testing.T, o options) {
			if len(o.disabled) != 2 || o.disabled[0] != "wide" || o.disabled[1] != "fast" {
				t.Errorf("disabled = %v", o.disabled)
			}
		}},
		{"scratch and logger", []Option{WithScratchLimit(4096), WithLogger(logger)}, func(t *testing.T, o options) {
			if o.scratchLimit != 4096 || o.logger != logger {
				t.Errorf("scratchLimit = %d, logger = %p", o.scratchLimit, o.logger)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}
