package wide

// U16x16 represents 16 uint16 lanes, one per pixel of a batch.
// Fixed-size arrays with simple loops let the compiler vectorize.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Inv computes 255 - v for each element (inverse alpha).
func (v U16x16) Inv() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// MulDiv255 computes v * other / 255 for each element, rounded to nearest.
// It matches the scalar combiners bit for bit.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := uint32(v[i])*uint32(other[i]) + 0x80
		result[i] = uint16((t + t>>8) >> 8) // #nosec G115
	}
	return result
}

// Clamp clamps each element to [0, maxVal].
func (v U16x16) Clamp(maxVal uint16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = min(v[i], maxVal)
	}
	return result
}
