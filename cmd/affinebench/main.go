// Command affinebench measures affine composite throughput in megapixels
// per second for every filter and repeat mode.
//
// Usage:
//
//	affinebench -width 1920 -height 1080 -scale 0.75 -angle 10 -iters 20
//
// Output is an aligned table on a terminal and tab-separated values
// otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/image/math/f64"
	"golang.org/x/term"

	"github.com/gogpu/scanline"
)

type result struct {
	filter scanline.Filter
	repeat scanline.Repeat
	mpps   float64
	kernel time.Duration
}

func main() {
	var (
		width   = flag.Int("width", 1024, "destination width")
		height  = flag.Int("height", 768, "destination height")
		srcSize = flag.Int("src", 512, "source image size (square)")
		format  = flag.String("format", "a8r8g8b8", "source format")
		opName  = flag.String("op", "Over", "compositing operator")
		scale   = flag.Float64("scale", 0.75, "source pixels per destination pixel")
		angle   = flag.Float64("angle", 0, "rotation in degrees")
		iters   = flag.Int("iters", 10, "composites per measurement")
		workers = flag.Int("workers", 1, "worker goroutines per composite (0 = GOMAXPROCS)")
		disable = flag.String("disable", "", "comma-separated tiers to disable (wide, fast)")
		verbose = flag.Bool("v", false, "log kernel dispatch")
	)
	flag.Parse()

	if *verbose {
		scanline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, ok := scanline.ParseFormat(*format)
	if !ok {
		log.Fatalf("unknown format %q", *format)
	}
	op, ok := parseOp(*opName)
	if !ok {
		log.Fatalf("unknown operator %q", *opName)
	}

	src, err := scanline.NewImage(*srcSize, *srcSize, f)
	if err != nil {
		log.Fatalf("source: %v", err)
	}
	checkerboard(src, 16)

	dst, err := scanline.NewImage(*width, *height, scanline.FormatA8R8G8B8)
	if err != nil {
		log.Fatalf("destination: %v", err)
	}

	var disabled []string
	if *disable != "" {
		disabled = strings.Split(*disable, ",")
	}
	c := scanline.New(scanline.WithWorkers(*workers), scanline.WithDisabledTiers(disabled...))
	defer c.Close()

	tr := scanline.TransformFromAff3(affine(*scale, *angle, float64(*srcSize)))
	if err := src.SetTransform(&tr); err != nil {
		log.Fatalf("transform: %v", err)
	}

	var results []result
	for _, filter := range []scanline.Filter{scanline.FilterNearest, scanline.FilterBilinear} {
		for _, repeat := range []scanline.Repeat{scanline.RepeatNone, scanline.RepeatNormal, scanline.RepeatPad, scanline.RepeatReflect} {
			src.SetFilter(filter)
			src.SetRepeat(repeat)
			results = append(results, measure(c, op, src, dst, *iters, filter, repeat))
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		printTable(results, c.Tiers())
	} else {
		printTSV(results)
	}
}

// affine returns the destination-to-source matrix rotating by angle degrees
// around the source centre and scaling by scale.
func affine(scale, angle, size float64) f64.Aff3 {
	s, c := math.Sincos(angle * math.Pi / 180)
	half := size / 2
	return f64.Aff3{
		scale * c, -scale * s, half - scale*(c*half-s*half),
		scale * s, scale * c, half - scale*(s*half+c*half),
	}
}

func checkerboard(img *scanline.Image, cell int) {
	for y := range img.Height() {
		for x := range img.Width() {
			c := uint32(0xff2060a0)
			if (x/cell+y/cell)%2 == 0 {
				c = 0x80804020
			}
			_ = img.SetPixel(x, y, c)
		}
	}
}

func parseOp(name string) (scanline.Operator, bool) {
	for op := scanline.Operator(0); op.IsValid(); op++ {
		if strings.EqualFold(op.String(), name) {
			return op, true
		}
	}
	return 0, false
}

func measure(c *scanline.Compositor, op scanline.Operator, src, dst *scanline.Image,
	iters int, filter scanline.Filter, repeat scanline.Repeat) result {
	w, h := dst.Width(), dst.Height()
	// Warm the scratch pool.
	_ = c.Composite(op, src, nil, dst, 0, 0, 0, 0, 0, 0, w, h)

	start := time.Now()
	for range iters {
		_ = c.Composite(op, src, nil, dst, 0, 0, 0, 0, 0, 0, w, h)
	}
	elapsed := time.Since(start)

	pixels := float64(w) * float64(h) * float64(iters)
	return result{
		filter: filter,
		repeat: repeat,
		mpps:   pixels / elapsed.Seconds() / 1e6,
		kernel: elapsed / time.Duration(max(iters, 1)),
	}
}

func printTable(results []result, tiers []string) {
	fmt.Printf("tiers: %s\n\n", strings.Join(tiers, " > "))
	fmt.Printf("%-10s %-8s %12s %14s\n", "filter", "repeat", "MP/s", "per composite")
	cols := 47
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < cols {
		cols = w
	}
	fmt.Println(strings.Repeat("-", cols))
	for _, r := range results {
		fmt.Printf("%-10s %-8s %12.1f %14s\n", r.filter, r.repeat, r.mpps, r.kernel.Round(time.Microsecond))
	}
}

func printTSV(results []result) {
	fmt.Println("filter\trepeat\tmpps\tns_per_composite")
	for _, r := range results {
		fmt.Printf("%s\t%s\t%.2f\t%d\n", r.filter, r.repeat, r.mpps, r.kernel.Nanoseconds())
	}
}
