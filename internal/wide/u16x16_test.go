package wide

import "testing"

func TestSplatU16(t *testing.T) {
	for _, n := range []uint16{0, 1, 128, 255} {
		for i, v := range SplatU16(n) {
			if v != n {
				t.Errorf("SplatU16(%d)[%d] = %d", n, i, v)
			}
		}
	}
}

func TestU16x16_MulDiv255(t *testing.T) {
	// Exhaustive check against rounded integer division.
	for a := range 256 {
		var va, vb U16x16
		for b := range 256 {
			va[b%16] = uint16(a)
			vb[b%16] = uint16(b)
			if b%16 != 15 {
				continue
			}
			got := va.MulDiv255(vb)
			for i := range 16 {
				bb := b - 15 + i
				want := uint16((a*bb + 127) / 255)
				if got[i] != want {
					t.Fatalf("%d*%d/255 = %d, want %d", a, bb, got[i], want)
				}
			}
		}
	}
}

func TestU16x16_Ops(t *testing.T) {
	tests := []struct {
		name string
		got  U16x16
		want U16x16
	}{
		{"add", SplatU16(100).Add(SplatU16(50)), SplatU16(150)},
		{"inv zero", SplatU16(0).Inv(), SplatU16(255)},
		{"inv max", SplatU16(255).Inv(), SplatU16(0)},
		{"clamp over", SplatU16(300).Clamp(255), SplatU16(255)},
		{"clamp under", SplatU16(10).Clamp(255), SplatU16(10)},
		{"identity", SplatU16(77).MulDiv255(SplatU16(255)), SplatU16(77)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
