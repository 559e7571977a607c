package image

import (
	"errors"
	"testing"

	"github.com/gogpu/scanline/internal/fixed"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		format        Format
		wantErr       error
	}{
		{"valid argb", 100, 50, FormatA8R8G8B8, nil},
		{"valid a8", 7, 3, FormatA8, nil},
		{"valid 565", 9, 1, FormatR5G6B5, nil},
		{"zero width", 0, 50, FormatA8R8G8B8, ErrInvalidDimensions},
		{"negative height", 10, -1, FormatA8R8G8B8, ErrInvalidDimensions},
		{"pseudo format", 10, 10, FormatSolid, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Stride() != tt.format.RowBytes(tt.width) {
				t.Errorf("Stride() = %d", buf.Stride())
			}
			if buf.ByteSize() != buf.Stride()*tt.height {
				t.Errorf("ByteSize() = %d", buf.ByteSize())
			}
		})
	}
}

func TestNewImageBufWithStride(t *testing.T) {
	if _, err := NewImageBufWithStride(10, 2, FormatA8R8G8B8, 39); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("short stride err = %v", err)
	}
	buf, err := NewImageBufWithStride(10, 2, FormatA8R8G8B8, 64)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Stride() != 64 || buf.ByteSize() != 128 {
		t.Errorf("stride %d size %d", buf.Stride(), buf.ByteSize())
	}
}

func TestFromRaw(t *testing.T) {
	// The last row does not need stride padding.
	data := make([]byte, 16+8)
	buf, err := FromRaw(data, 2, 2, FormatA8R8G8B8, 16)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if err := buf.SetPixel(1, 1, 0xff00ff00); err != nil {
		t.Fatal(err)
	}
	if data[16+4+1] != 0xff {
		t.Error("FromRaw copied the data")
	}
	if _, err := FromRaw(data[:23], 2, 2, FormatA8R8G8B8, 16); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data err = %v", err)
	}
}

func TestImageBuf_PixelAccess(t *testing.T) {
	buf, _ := NewImageBuf(3, 2, FormatA8R8G8B8)
	if err := buf.SetPixel(2, 1, 0x80402010); err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(2, 1); got != 0x80402010 {
		t.Errorf("Pixel = %#08x", got)
	}
	if got := buf.Pixel(-1, 0); got != 0 {
		t.Errorf("outside Pixel = %#08x", got)
	}
	if err := buf.SetPixel(3, 0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetPixel outside err = %v", err)
	}
	if buf.RowBytes(2) != nil {
		t.Error("RowBytes past the end returned data")
	}
}

func TestImageBuf_FillClearClone(t *testing.T) {
	buf, _ := NewImageBuf(4, 4, FormatA4R4G4B4)
	buf.Fill(0xffffffff)
	clone := buf.Clone()
	buf.Clear()
	if got := buf.Pixel(3, 3); got != 0 {
		t.Errorf("after Clear = %#08x", got)
	}
	if got := clone.Pixel(3, 3); got != 0xffffffff {
		t.Errorf("clone = %#08x, shares storage", got)
	}
}

func TestImageBuf_SubImage(t *testing.T) {
	buf, _ := NewImageBuf(8, 8, FormatA8R8G8B8)
	_ = buf.SetPixel(5, 6, 0xdeadbeef)
	sub := buf.SubImage(4, 4, 4, 4)
	if sub == nil {
		t.Fatal("SubImage returned nil")
	}
	if got := sub.Pixel(1, 2); got != 0xdeadbeef {
		t.Errorf("sub pixel = %#08x", got)
	}
	_ = sub.SetPixel(0, 0, 1)
	if buf.Pixel(4, 4) != 1 {
		t.Error("SubImage does not share storage")
	}
	for _, r := range [][4]int{{-1, 0, 2, 2}, {0, 0, 0, 1}, {6, 6, 4, 4}} {
		if buf.SubImage(r[0], r[1], r[2], r[3]) != nil {
			t.Errorf("SubImage(%v) not nil", r)
		}
	}
}

func TestImageBuf_Solid(t *testing.T) {
	s := NewSolid(0x80ff0000)
	if !s.IsSolid() || s.SolidColor() != 0x80ff0000 {
		t.Fatal("solid attributes")
	}
	if got := s.Pixel(100, -5); got != 0x80ff0000 {
		t.Errorf("solid Pixel = %#08x", got)
	}
	if s.IsOpaque() {
		t.Error("translucent solid reported opaque")
	}
	if !NewSolid(0xff000000).IsOpaque() {
		t.Error("opaque solid not opaque")
	}
	if s.RowBytes(0) != nil {
		t.Error("solid has storage")
	}
}

func TestImageBuf_Attributes(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatX8R8G8B8)
	if buf.IsOpaque() {
		t.Error("RepeatNone image reported opaque")
	}
	buf.SetRepeat(RepeatPad)
	if !buf.IsOpaque() {
		t.Error("padded x8r8g8b8 not opaque")
	}
	buf.SetRepeat(RepeatCover)
	if buf.Repeat() != RepeatPad {
		t.Error("RepeatCover was stored")
	}
	buf.SetFilter(FilterBilinear)
	if buf.Filter() != FilterBilinear {
		t.Error("filter not stored")
	}

	id := fixed.Identity()
	if err := buf.SetTransform(&id); err != nil || buf.Transform() != nil {
		t.Errorf("identity transform kept: %v", err)
	}
	sc := fixed.Scale(fixed.Half, fixed.One)
	if err := buf.SetTransform(&sc); err != nil || buf.Transform() == nil {
		t.Fatalf("scale transform dropped: %v", err)
	}
	sc.M[0][0] = fixed.One
	if buf.Transform().M[0][0] != fixed.Half {
		t.Error("SetTransform aliases the caller's transform")
	}
	singular := fixed.Scale(0, fixed.One)
	if err := buf.SetTransform(&singular); !errors.Is(err, ErrSingularTransform) {
		t.Errorf("singular err = %v", err)
	}
}
