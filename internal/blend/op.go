// Package blend implements the operator catalogue: Porter-Duff compositing
// operators and separable and non-separable blend modes, as per-pixel pure
// functions and as scanline combiners.
//
// All operators work on premultiplied alpha values in the range 0-255. A
// scanline pixel is a premultiplied a8r8g8b8 uint32.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "fmt"

// Op is a compositing operator.
type Op uint8

const (
	// Porter-Duff operators
	Clear       Op = iota // 0
	Src                   // S
	Dst                   // D
	Over                  // S + D*(1-Sa)
	OverReverse           // S*(1-Da) + D
	In                    // S*Da
	InReverse             // D*Sa
	Out                   // S*(1-Da)
	OutReverse            // D*(1-Sa)
	Atop                  // S*Da + D*(1-Sa)
	AtopReverse           // S*(1-Da) + D*Sa
	Xor                   // S*(1-Da) + D*(1-Sa)
	Add                   // min(S + D, 1)

	// Separable blend modes
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable blend modes
	Hue
	Saturation
	Color
	Luminosity

	opCount
)

var opNames = [opCount]string{
	"Clear", "Src", "Dst", "Over", "OverReverse", "In", "InReverse",
	"Out", "OutReverse", "Atop", "AtopReverse", "Xor", "Add",
	"Multiply", "Screen", "Overlay", "Darken", "Lighten", "ColorDodge",
	"ColorBurn", "HardLight", "SoftLight", "Difference", "Exclusion",
	"Hue", "Saturation", "Color", "Luminosity",
}

// String returns the operator name.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// IsValid reports whether op names a known operator.
func (op Op) IsValid() bool {
	return op < opCount
}

// Ops returns every known operator in declaration order.
func Ops() []Op {
	ops := make([]Op, opCount)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// NeedsDest reports whether the result depends on the destination, i.e.
// whether the destination scanline must be fetched before combining.
// Clear and Src are write-only.
func NeedsDest(op Op) bool {
	return op != Clear && op != Src
}

// Func is the signature for per-pixel operators.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [opCount]Func{
	Clear:       blendClear,
	Src:         blendSrc,
	Dst:         blendDst,
	Over:        blendOver,
	OverReverse: blendOverReverse,
	In:          blendIn,
	InReverse:   blendInReverse,
	Out:         blendOut,
	OutReverse:  blendOutReverse,
	Atop:        blendAtop,
	AtopReverse: blendAtopReverse,
	Xor:         blendXor,
	Add:         blendAdd,
	Multiply:    blendMultiply,
	Screen:      blendScreen,
	Overlay:     blendOverlay,
	Darken:      blendDarken,
	Lighten:     blendLighten,
	ColorDodge:  blendColorDodge,
	ColorBurn:   blendColorBurn,
	HardLight:   blendHardLight,
	SoftLight:   blendSoftLight,
	Difference:  blendDifference,
	Exclusion:   blendExclusion,
	Hue:         blendHue,
	Saturation:  blendSaturation,
	Color:       blendColor,
	Luminosity:  blendLuminosity,
}

// Lookup returns the per-pixel function for op. Unknown operators map to Over.
func Lookup(op Op) Func {
	if op < opCount {
		return funcs[op]
	}
	return blendOver
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSrc(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDst(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendOver: S + D*(1-Sa)
func blendOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

func blendOverReverse(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendOver(dr, dg, db, da, sr, sg, sb, sa)
}

// blendIn: S*Da
func blendIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func blendInReverse(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendIn(dr, dg, db, da, sr, sg, sb, sa)
}

// blendOut: S*(1-Da)
func blendOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return mulDiv255(sr, inv), mulDiv255(sg, inv), mulDiv255(sb, inv), mulDiv255(sa, inv)
}

func blendOutReverse(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendOut(dr, dg, db, da, sr, sg, sb, sa)
}

// blendAtop: S*Da + D*(1-Sa), alpha stays Da.
func blendAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, inv)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, inv)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, inv)),
		da
}

func blendAtopReverse(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendAtop(dr, dg, db, da, sr, sg, sb, sa)
}

// blendXor: S*(1-Da) + D*(1-Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

func blendAdd(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
