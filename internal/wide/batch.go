package wide

// BatchSize is the number of pixels processed per batch.
const BatchSize = 16

// BatchState holds 16 source and 16 destination pixels for batch processing
// in Structure-of-Arrays layout:
//
//	SR: [R0, R1, R2, ..., R15]
//	SG: [G0, G1, G2, ..., G15]
//	SB: [B0, B1, B2, ..., B15]
//	SA: [A0, A1, A2, ..., A15]
//
// Pixels enter and leave as premultiplied a8r8g8b8 uint32 values.
type BatchState struct {
	SR, SG, SB, SA U16x16 // Source channels
	DR, DG, DB, DA U16x16 // Destination channels
}

func split(px []uint32, r, g, b, a *U16x16) {
	for i := range BatchSize {
		p := px[i]
		a[i] = uint16(p >> 24)
		r[i] = uint16(p >> 16 & 0xff)
		g[i] = uint16(p >> 8 & 0xff)
		b[i] = uint16(p & 0xff)
	}
}

// LoadSrc loads 16 pixels into the source channels.
func (b *BatchState) LoadSrc(src []uint32) {
	split(src[:BatchSize], &b.SR, &b.SG, &b.SB, &b.SA)
}

// LoadDst loads 16 pixels into the destination channels.
func (b *BatchState) LoadDst(dst []uint32) {
	split(dst[:BatchSize], &b.DR, &b.DG, &b.DB, &b.DA)
}

// MaskSrc scales the source channels by the alpha of 16 mask pixels.
func (b *BatchState) MaskSrc(mask []uint32) {
	var m U16x16
	for i := range BatchSize {
		m[i] = uint16(mask[i] >> 24)
	}
	b.SR = b.SR.MulDiv255(m)
	b.SG = b.SG.MulDiv255(m)
	b.SB = b.SB.MulDiv255(m)
	b.SA = b.SA.MulDiv255(m)
}

// StoreDst writes the destination channels back as 16 pixels.
func (b *BatchState) StoreDst(dst []uint32) {
	dst = dst[:BatchSize]
	for i := range dst {
		dst[i] = uint32(b.DA[i])<<24 | uint32(b.DR[i])<<16 | uint32(b.DG[i])<<8 | uint32(b.DB[i])
	}
}
