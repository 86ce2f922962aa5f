package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// out-of-range input. The positive scale is 32767 so that 1.0 maps to
// the largest int16 without wrapping.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767)
}
