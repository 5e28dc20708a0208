// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/mediaconv/utils"
)

// Downmix averages all channels into a single channel. A mono buffer is
// copied unchanged.
func (b *Buffer) Downmix() *Buffer {
	n := b.SamplesPerChannel()
	out := NewBuffer(b.SampleRate, 1, n)
	mono := out.Channels[0]

	switch len(b.Channels) {
	case 0:
		return out
	case 1:
		copy(mono, b.Channels[0])
	case 2: // Stereo (most common)
		l, r := b.Channels[0], b.Channels[1]
		for i := range n {
			mono[i] = (l[i] + r[i]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(len(b.Channels))
		for i := range n {
			var sum float32
			for _, ch := range b.Channels {
				sum += ch[i]
			}
			mono[i] = sum * inv
		}
	}

	return out
}

// Resample converts b to dstRate using Catmull-Rom cubic interpolation,
// preserving the channel count. When downsampling a one-pole low-pass
// filter runs over the input first to tame aliasing.
//
// A non-positive dstRate, or one equal to the current rate, returns a copy.
func (b *Buffer) Resample(dstRate int) *Buffer {
	if dstRate <= 0 || dstRate == b.SampleRate || b.SampleRate <= 0 {
		out := NewBuffer(b.SampleRate, len(b.Channels), b.SamplesPerChannel())
		for c := range b.Channels {
			copy(out.Channels[c], b.Channels[c])
		}
		return out
	}

	n := b.SamplesPerChannel()
	outLen := int(int64(n) * int64(dstRate) / int64(b.SampleRate))
	ratio := float64(b.SampleRate) / float64(dstRate)
	downsampling := ratio > 1.0

	out := NewBuffer(dstRate, len(b.Channels), outLen)
	for c, in := range b.Channels {
		if downsampling {
			in = lowPass(in, 0.5)
		}

		dst := out.Channels[c]
		for j := range dst {
			pos := float64(j) * ratio
			i := int(pos)
			x := float32(pos - float64(i))

			dst[j] = utils.CubicInterpolate(
				at(in, i-1), at(in, i), at(in, i+1), at(in, i+2), x)
		}
	}

	return out
}

// at returns s[i] with the index clamped to the slice bounds.
func at(s []float32, i int) float32 {
	if i < 0 {
		i = 0
	} else if i >= len(s) {
		i = len(s) - 1
	}
	return s[i]
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0].
func lowPass(x []float32, alpha float32) []float32 {
	y := make([]float32, len(x))
	if len(x) == 0 {
		return y
	}

	prev := x[0]
	for i, v := range x {
		prev = alpha*v + (1-alpha)*prev
		y[i] = prev
	}

	return y
}
