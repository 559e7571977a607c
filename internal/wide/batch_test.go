package wide

import "testing"

func testPixels(seed uint32) []uint32 {
	px := make([]uint32, BatchSize)
	for i := range px {
		a := (seed + uint32(i)*13) & 0xff
		c := a * 7 / 10
		px[i] = a<<24 | c<<16 | (c/2)<<8 | c/3
	}
	return px
}

func TestBatchState_LoadStoreRoundTrip(t *testing.T) {
	src := testPixels(40)
	var b BatchState
	b.LoadDst(src)
	out := make([]uint32, BatchSize)
	b.StoreDst(out)
	for i := range src {
		if out[i] != src[i] {
			t.Errorf("pixel %d = %#08x, want %#08x", i, out[i], src[i])
		}
	}
}

func TestBatchState_LoadSrcChannels(t *testing.T) {
	src := []uint32{0x80402010}
	src = append(src, make([]uint32, BatchSize-1)...)
	var b BatchState
	b.LoadSrc(src)
	if b.SA[0] != 0x80 || b.SR[0] != 0x40 || b.SG[0] != 0x20 || b.SB[0] != 0x10 {
		t.Errorf("channels = %d %d %d %d", b.SA[0], b.SR[0], b.SG[0], b.SB[0])
	}
}

func TestBatchState_MaskSrc(t *testing.T) {
	src := make([]uint32, BatchSize)
	mask := make([]uint32, BatchSize)
	for i := range src {
		src[i] = 0xffffffff
		mask[i] = uint32(i*17) << 24
	}
	var b BatchState
	b.LoadSrc(src)
	b.MaskSrc(mask)
	for i := range BatchSize {
		want := uint16(i * 17)
		if b.SA[i] != want || b.SR[i] != want {
			t.Errorf("lane %d = %d/%d, want %d", i, b.SA[i], b.SR[i], want)
		}
	}
}
