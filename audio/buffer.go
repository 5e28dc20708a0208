// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Buffer is fully decoded, deinterleaved PCM audio: one slice of float32
// samples per channel, all of equal length, at SampleRate Hz.
//
// A Buffer is produced once by Extract and treated as read-only after.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// NewBuffer allocates a silent buffer with the given geometry.
func NewBuffer(sampleRate, channels, samplesPerChannel int) *Buffer {
	b := &Buffer{
		SampleRate: sampleRate,
		Channels:   make([][]float32, channels),
	}
	for c := range b.Channels {
		b.Channels[c] = make([]float32, samplesPerChannel)
	}

	return b
}

func (b *Buffer) NumChannels() int { return len(b.Channels) }

// SamplesPerChannel is the number of frames in the buffer.
func (b *Buffer) SamplesPerChannel() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration of the buffer at its sample rate. Zero for an invalid rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.SamplesPerChannel()) * time.Second / time.Duration(b.SampleRate)
}

// Validate reports whether b can be encoded. Every returned error wraps
// ErrContractViolation plus the specific cause.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Channels) == 0 {
		return fmt.Errorf("%w: %w", ErrContractViolation, ErrNoChannels)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %w: %d", ErrContractViolation, ErrInvalidSampleRate, b.SampleRate)
	}

	n := len(b.Channels[0])
	for c, ch := range b.Channels {
		if len(ch) != n {
			return fmt.Errorf("%w: %w: channel %d has %d samples, want %d",
				ErrContractViolation, ErrRaggedChannels, c, len(ch), n)
		}
		for i, s := range ch {
			f := float64(s)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: %w: channel %d sample %d",
					ErrContractViolation, ErrNonFiniteSample, c, i)
			}
		}
	}

	return nil
}
