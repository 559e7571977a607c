package blend

import "github.com/gogpu/scanline/internal/wide"

// BatchFunc combines 16 pixels held in a wide.BatchState, writing the result
// into the destination lanes. Results are bit-identical to the per-pixel
// functions.
type BatchFunc func(b *wide.BatchState)

var batchFuncs = [opCount]BatchFunc{
	Clear:       ClearBatch,
	Src:         SrcBatch,
	Over:        OverBatch,
	OverReverse: OverReverseBatch,
	In:          InBatch,
	InReverse:   InReverseBatch,
	Out:         OutBatch,
	OutReverse:  OutReverseBatch,
	Atop:        AtopBatch,
	AtopReverse: AtopReverseBatch,
	Xor:         XorBatch,
	Add:         AddBatch,
}

// LookupBatch returns the batched combiner for op, or nil when op has no
// batched form (the blend modes).
func LookupBatch(op Op) BatchFunc {
	if op < opCount {
		return batchFuncs[op]
	}
	return nil
}

// CombineWide is Combine processed 16 pixels at a time. Ops without a
// batched form, and the tail of the scanline, go through Combine.
func CombineWide(op Op, dst, src, mask []uint32) {
	if op == Dst {
		return
	}
	fn := LookupBatch(op)
	if fn == nil {
		Combine(op, dst, src, mask)
		return
	}

	n := len(dst) / wide.BatchSize * wide.BatchSize
	var b wide.BatchState
	for off := 0; off < n; off += wide.BatchSize {
		if op != Clear {
			b.LoadSrc(src[off:])
			if mask != nil {
				b.MaskSrc(mask[off:])
			}
		}
		if NeedsDest(op) {
			b.LoadDst(dst[off:])
		}
		fn(&b)
		b.StoreDst(dst[off:])
	}

	if n < len(dst) {
		var m []uint32
		if mask != nil {
			m = mask[n:]
		}
		var s []uint32
		if src != nil {
			s = src[n:]
		}
		Combine(op, dst[n:], s, m)
	}
}

// ClearBatch: 0
func ClearBatch(b *wide.BatchState) {
	zero := wide.SplatU16(0)
	b.DR, b.DG, b.DB, b.DA = zero, zero, zero, zero
}

// SrcBatch: S
func SrcBatch(b *wide.BatchState) {
	b.DR, b.DG, b.DB, b.DA = b.SR, b.SG, b.SB, b.SA
}

// OverBatch: S + D*(1-Sa)
func OverBatch(b *wide.BatchState) {
	inv := b.SA.Inv()
	b.DR = b.SR.Add(b.DR.MulDiv255(inv)).Clamp(255)
	b.DG = b.SG.Add(b.DG.MulDiv255(inv)).Clamp(255)
	b.DB = b.SB.Add(b.DB.MulDiv255(inv)).Clamp(255)
	b.DA = b.SA.Add(b.DA.MulDiv255(inv)).Clamp(255)
}

// OverReverseBatch: S*(1-Da) + D
func OverReverseBatch(b *wide.BatchState) {
	inv := b.DA.Inv()
	b.DR = b.DR.Add(b.SR.MulDiv255(inv)).Clamp(255)
	b.DG = b.DG.Add(b.SG.MulDiv255(inv)).Clamp(255)
	b.DB = b.DB.Add(b.SB.MulDiv255(inv)).Clamp(255)
	b.DA = b.DA.Add(b.SA.MulDiv255(inv)).Clamp(255)
}

// InBatch: S*Da
func InBatch(b *wide.BatchState) {
	da := b.DA
	b.DR = b.SR.MulDiv255(da)
	b.DG = b.SG.MulDiv255(da)
	b.DB = b.SB.MulDiv255(da)
	b.DA = b.SA.MulDiv255(da)
}

// InReverseBatch: D*Sa
func InReverseBatch(b *wide.BatchState) {
	b.DR = b.DR.MulDiv255(b.SA)
	b.DG = b.DG.MulDiv255(b.SA)
	b.DB = b.DB.MulDiv255(b.SA)
	b.DA = b.DA.MulDiv255(b.SA)
}

// OutBatch: S*(1-Da)
func OutBatch(b *wide.BatchState) {
	inv := b.DA.Inv()
	b.DR = b.SR.MulDiv255(inv)
	b.DG = b.SG.MulDiv255(inv)
	b.DB = b.SB.MulDiv255(inv)
	b.DA = b.SA.MulDiv255(inv)
}

// OutReverseBatch: D*(1-Sa)
func OutReverseBatch(b *wide.BatchState) {
	inv := b.SA.Inv()
	b.DR = b.DR.MulDiv255(inv)
	b.DG = b.DG.MulDiv255(inv)
	b.DB = b.DB.MulDiv255(inv)
	b.DA = b.DA.MulDiv255(inv)
}

// AtopBatch: S*Da + D*(1-Sa), alpha Da
func AtopBatch(b *wide.BatchState) {
	inv := b.SA.Inv()
	b.DR = b.SR.MulDiv255(b.DA).Add(b.DR.MulDiv255(inv)).Clamp(255)
	b.DG = b.SG.MulDiv255(b.DA).Add(b.DG.MulDiv255(inv)).Clamp(255)
	b.DB = b.SB.MulDiv255(b.DA).Add(b.DB.MulDiv255(inv)).Clamp(255)
}

// AtopReverseBatch: S*(1-Da) + D*Sa, alpha Sa
func AtopReverseBatch(b *wide.BatchState) {
	inv := b.DA.Inv()
	b.DR = b.DR.MulDiv255(b.SA).Add(b.SR.MulDiv255(inv)).Clamp(255)
	b.DG = b.DG.MulDiv255(b.SA).Add(b.SG.MulDiv255(inv)).Clamp(255)
	b.DB = b.DB.MulDiv255(b.SA).Add(b.SB.MulDiv255(inv)).Clamp(255)
	b.DA = b.SA
}

// XorBatch: S*(1-Da) + D*(1-Sa)
func XorBatch(b *wide.BatchState) {
	invSa := b.SA.Inv()
	invDa := b.DA.Inv()
	b.DR = b.SR.MulDiv255(invDa).Add(b.DR.MulDiv255(invSa)).Clamp(255)
	b.DG = b.SG.MulDiv255(invDa).Add(b.DG.MulDiv255(invSa)).Clamp(255)
	b.DB = b.SB.MulDiv255(invDa).Add(b.DB.MulDiv255(invSa)).Clamp(255)
	b.DA = b.SA.MulDiv255(invDa).Add(b.DA.MulDiv255(invSa)).Clamp(255)
}

// AddBatch: min(S + D, 255)
func AddBatch(b *wide.BatchState) {
	b.DR = b.SR.Add(b.DR).Clamp(255)
	b.DG = b.SG.Add(b.DG).Clamp(255)
	b.DB = b.SB.Add(b.DB).Clamp(255)
	b.DA = b.SA.Add(b.DA).Clamp(255)
}
