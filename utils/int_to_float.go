// SPDX-License-Identifier: EPL-2.0

package utils

// Int16ToFloat32 converts a 16-bit PCM sample to the [-1, 1) float range.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
