// Package wide provides SIMD-friendly lanes for batch pixel processing.
//
// U16x16 holds one 16-bit lane per pixel of a 16-pixel batch. BatchState
// splits 16 source and 16 destination a8r8g8b8 pixels into per-channel
// lanes so that combiners operate on whole channels at once. Fixed-size
// arrays with simple loops let the Go compiler auto-vectorize on SSE, AVX
// and NEON without assembly.
//
// Usage:
//
//	var batch wide.BatchState
//	batch.LoadSrc(src[i:])
//	batch.LoadDst(dst[i:])
//	// combine batch.SR, batch.SG, ... into batch.DR, batch.DG, ...
//	batch.StoreDst(dst[i:])
package wide
