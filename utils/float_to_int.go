// SPDX-License-Identifier: EPL-2.0

package utils

// PCM16Scale is the single scale factor used for both signs when
// quantizing float samples to 16-bit PCM.
const PCM16Scale = 0x7FFF

// Float32ToInt16 clamps x to [-1, 1], scales it by 32767 and truncates
// toward zero. -1.0 maps to -32767; -32768 is never produced.
//
// NaN is not handled here; callers validate samples first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * PCM16Scale)
}
