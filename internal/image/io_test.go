package image

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestFromStdImage_NRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	img.SetNRGBA(3, 4, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	buf := FromStdImage(img)
	if buf == nil || buf.Width() != 2 || buf.Height() != 2 {
		t.Fatal("unexpected size")
	}
	if got := buf.Pixel(1, 1); got != 0x80800000 {
		t.Errorf("pixel = %#08x, want premultiplied 0x80800000", got)
	}
}

func TestStdImage_RoundTrip(t *testing.T) {
	buf, _ := NewImageBuf(3, 2, FormatA8R8G8B8)
	_ = buf.SetPixel(0, 0, 0xff102030)
	_ = buf.SetPixel(2, 1, 0x40201000)
	back := FromStdImage(buf.ToStdImage())
	for y := range 2 {
		for x := range 3 {
			if back.Pixel(x, y) != buf.Pixel(x, y) {
				t.Errorf("(%d,%d) = %#08x, want %#08x", x, y, back.Pixel(x, y), buf.Pixel(x, y))
			}
		}
	}
}

func TestEncodeDecodePNG(t *testing.T) {
	buf, _ := NewImageBuf(4, 4, FormatR5G6B5)
	buf.Fill(0xffff0000)
	var w bytes.Buffer
	if err := buf.EncodePNG(&w); err != nil {
		t.Fatal(err)
	}
	dec, err := Decode(&w)
	if err != nil {
		t.Fatal(err)
	}
	if got := dec.Pixel(3, 3); got != 0xffff0000 {
		t.Errorf("decoded pixel = %#08x", got)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Decode accepted garbage")
	}
}
