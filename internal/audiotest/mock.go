// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic PCM sources and sample generators
// shared by the package tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved audio from a waveform function.
// It satisfies audio.Source without importing it, so the audio package's
// own tests can use it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32

	// ReadLimit caps the samples returned per ReadSamples call; it may be
	// smaller than one frame to exercise partial-frame handling. Zero
	// means no cap.
	ReadLimit int
	// FailAfter makes ReadSamples return Err once that many frames have
	// been produced. Ignored when Err is nil.
	FailAfter int
	Err       error

	carry []float32 // rest of a frame split by ReadLimit
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewRampSource emits sample index*channels+channel scaled by step, which
// makes frame and channel ordering easy to assert.
func NewRampSource(sampleRate, channels, totalSamples int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		return float32(sample*channels+channel) * step
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
	m.carry = nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.ReadLimit > 0 && len(dst) > m.ReadLimit {
		dst = dst[:m.ReadLimit]
	}

	n := copy(dst, m.carry)
	m.carry = m.carry[n:]
	if len(m.carry) > 0 {
		return n, nil
	}

	for n < len(dst) && m.generated < m.totalSamples {
		if m.Err != nil && m.generated >= m.FailAfter {
			return n, m.Err
		}

		frame := make([]float32, m.channels)
		for ch := range m.channels {
			frame[ch] = m.waveform(m.generated, ch)
		}
		m.generated++

		c := copy(dst[n:], frame)
		n += c
		if c < len(frame) {
			m.carry = frame[c:]
			return n, nil
		}
	}

	if m.Err != nil && m.generated >= m.FailAfter && m.generated < m.totalSamples {
		return n, m.Err
	}
	if m.generated >= m.totalSamples {
		return n, io.EOF
	}

	return n, nil
}

// Sine returns n samples of a unit-amplitude sine at freq Hz.
func Sine(sampleRate, n int, freq float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(math.Sin(2 * math.Pi * freq * t))
	}
	return out
}
