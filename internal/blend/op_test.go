package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			want := byte((a*b + 127) / 255)
			if got := mulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Clear, "Clear"},
		{Over, "Over"},
		{Add, "Add"},
		{SoftLight, "SoftLight"},
		{Luminosity, "Luminosity"},
		{Op(200), "Op(200)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint8(tt.op), got, tt.want)
		}
	}
}

func TestLookupTotal(t *testing.T) {
	for _, op := range Ops() {
		if Lookup(op) == nil {
			t.Errorf("Lookup(%v) = nil", op)
		}
	}
	if Lookup(Op(250)) == nil {
		t.Error("Lookup(unknown) = nil")
	}
}

func TestNeedsDest(t *testing.T) {
	for _, op := range Ops() {
		want := op != Clear && op != Src
		if got := NeedsDest(op); got != want {
			t.Errorf("NeedsDest(%v) = %v, want %v", op, got, want)
		}
	}
}

func TestPorterDuff(t *testing.T) {
	const (
		s = 0x80804000 // half-transparent red-ish
		d = 0xff0000ff // opaque blue
	)
	tests := []struct {
		op   Op
		want uint32
	}{
		{Clear, 0},
		{Src, s},
		{Dst, d},
		{Over, 0xff80407f},
		{OverReverse, d},
		{In, s},
		{InReverse, 0x80000080},
		{Out, 0},
		{OutReverse, 0x7f00007f},
		{Atop, 0xff80407f},
		{AtopReverse, 0x80000080},
		{Xor, 0x7f00007f},
		{Add, 0xff8040ff},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			sr, sg, sb, sa := split(s)
			dr, dg, db, da := split(d)
			got := join(Lookup(tt.op)(sr, sg, sb, sa, dr, dg, db, da))
			if got != tt.want {
				t.Errorf("%v = %#08x, want %#08x", tt.op, got, tt.want)
			}
		})
	}
}

func TestBlendModesTransparentOperands(t *testing.T) {
	const px = 0xc0604020
	for op := Multiply; op < opCount; op++ {
		t.Run(op.String(), func(t *testing.T) {
			fn := Lookup(op)
			r, g, b, a := split(px)
			if got := join(fn(r, g, b, a, 0, 0, 0, 0)); got != px {
				t.Errorf("over empty dst = %#08x, want %#08x", got, px)
			}
			if got := join(fn(0, 0, 0, 0, r, g, b, a)); got != px {
				t.Errorf("empty src = %#08x, want %#08x", got, px)
			}
		})
	}
}

func TestBlendModesOpaque(t *testing.T) {
	// With both operands opaque the result is B(Cs, Cb) exactly.
	tests := []struct {
		op   Op
		s, d byte
		want byte
	}{
		{Multiply, 255, 128, 128},
		{Multiply, 0, 200, 0},
		{Screen, 0, 100, 100},
		{Screen, 255, 100, 255},
		{Darken, 50, 100, 50},
		{Lighten, 50, 100, 100},
		{Difference, 50, 200, 150},
		{Exclusion, 0, 77, 77},
		{ColorDodge, 255, 10, 255},
		{ColorDodge, 0, 10, 10},
		{ColorBurn, 0, 10, 0},
		{ColorBurn, 255, 10, 10},
		{HardLight, 0, 90, 0},
		{Overlay, 90, 0, 0},
		{SoftLight, 128, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			r, _, _, a := Lookup(tt.op)(tt.s, tt.s, tt.s, 255, tt.d, tt.d, tt.d, 255)
			if r != tt.want || a != 255 {
				t.Errorf("%v(%d, %d) = %d/%d, want %d/255", tt.op, tt.s, tt.d, r, a, tt.want)
			}
		})
	}
}

func TestNonSeparableGray(t *testing.T) {
	// Gray over gray: hue and saturation are undefined, luminosity decides.
	r, g, b, a := blendLuminosity(200, 200, 200, 255, 50, 50, 50, 255)
	if a != 255 || r != g || g != b || r < 199 || r > 201 {
		t.Errorf("Luminosity gray = %d %d %d %d", r, g, b, a)
	}
	r, g, b, _ = blendHue(200, 200, 200, 255, 50, 50, 50, 255)
	if r != g || g != b || r < 49 || r > 51 {
		t.Errorf("Hue gray = %d %d %d", r, g, b)
	}
}
