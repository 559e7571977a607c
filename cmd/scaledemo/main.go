// Command scaledemo resamples an image through the compositing engine and
// writes the result as PNG.
//
// Without -in a generated test pattern is used.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/scanline"
)

func main() {
	var (
		input  = flag.String("in", "", "input PNG or JPEG (default: test pattern)")
		output = flag.String("out", "scaled.png", "output file")
		factor = flag.Float64("scale", 2, "output size relative to input")
		filter = flag.String("filter", "bilinear", "nearest or bilinear")
		repeat = flag.String("repeat", "pad", "none, normal, pad or reflect")
		tiles  = flag.Int("tiles", 1, "repetitions of the image across the output")
	)
	flag.Parse()

	src, err := loadSource(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	if *factor <= 0 || *tiles <= 0 {
		log.Fatalf("scale and tiles must be positive")
	}

	w := int(float64(src.Width()) * *factor)
	h := int(float64(src.Height()) * *factor)
	dst, err := scanline.NewImage(w, h, scanline.FormatA8R8G8B8)
	if err != nil {
		log.Fatalf("Failed to allocate output: %v", err)
	}
	if err := scanline.Fill(dst, 0, 0, w, h, 0xff202020); err != nil {
		log.Fatalf("Failed to clear output: %v", err)
	}

	// The transform maps output pixels back to input pixels.
	step := float64(*tiles) / *factor
	t := scanline.Scale(scanline.FixedFromFloat(step), scanline.FixedFromFloat(step))
	if err := src.SetTransform(&t); err != nil {
		log.Fatalf("Invalid transform: %v", err)
	}
	if *filter == "nearest" {
		src.SetFilter(scanline.FilterNearest)
	} else {
		src.SetFilter(scanline.FilterBilinear)
	}
	src.SetRepeat(parseRepeat(*repeat))

	if err := scanline.Composite(scanline.OpOver, src, nil, dst, 0, 0, 0, 0, 0, 0, w, h); err != nil {
		log.Fatalf("Composite failed: %v", err)
	}
	if err := dst.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d, %s, %s)\n", *output, w, h, src.Filter(), src.Repeat())
}

func loadSource(path string) (*scanline.Image, error) {
	if path != "" {
		return scanline.LoadImage(path)
	}
	img, err := scanline.NewImage(64, 48, scanline.FormatA8R8G8B8)
	if err != nil {
		return nil, err
	}
	for y := range img.Height() {
		for x := range img.Width() {
			r, g := uint32(x*4), uint32(y*5)
			c := 0xff000000 | r<<16 | g<<8 | 0x80
			if (x/8+y/8)%2 == 0 {
				// Half-transparent cells show the background through.
				c = 0x80000000 | (r/2)<<16 | (g/2)<<8 | 0x40
			}
			_ = img.SetPixel(x, y, c)
		}
	}
	return img, nil
}

func parseRepeat(name string) scanline.Repeat {
	switch name {
	case "none":
		return scanline.RepeatNone
	case "normal":
		return scanline.RepeatNormal
	case "reflect":
		return scanline.RepeatReflect
	default:
		return scanline.RepeatPad
	}
}
