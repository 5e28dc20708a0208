// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/mediaconv/internal/audiotest"
)

func TestExtract_Mono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 5, 0.1)

	buf, err := Extract(src)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if buf.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.SampleRate)
	}
	if buf.NumChannels() != 1 || buf.SamplesPerChannel() != 5 {
		t.Fatalf("geometry = %dx%d, want 1x5", buf.NumChannels(), buf.SamplesPerChannel())
	}

	for i, got := range buf.Channels[0] {
		if want := float32(i) * 0.1; got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestExtract_Deinterleaves(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 3, func(sample, channel int) float32 {
		if channel == 0 {
			return float32(sample)
		}
		return -float32(sample)
	})

	buf, err := Extract(src)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if want := []float32{0, 1, 2}; !slices.Equal(buf.Channels[0], want) {
		t.Errorf("left = %v, want %v", buf.Channels[0], want)
	}
	if want := []float32{0, -1, -2}; !slices.Equal(buf.Channels[1], want) {
		t.Errorf("right = %v, want %v", buf.Channels[1], want)
	}
}

func TestExtract_PartialFrameReads(t *testing.T) {
	t.Parallel()

	// 3 channels read 2 samples at a time splits every other frame
	src := audiotest.NewRampSource(16000, 3, 7, 1)
	src.ReadLimit = 2

	buf, err := Extract(src)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if buf.SamplesPerChannel() != 7 {
		t.Fatalf("SamplesPerChannel() = %d, want 7", buf.SamplesPerChannel())
	}

	for c, ch := range buf.Channels {
		for i, got := range ch {
			if want := float32(i*3 + c); got != want {
				t.Errorf("channel %d sample %d = %v, want %v", c, i, got, want)
			}
		}
	}
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	buf, err := Extract(audiotest.NewSilentSource(22050, 2, 0))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if buf.NumChannels() != 2 || buf.SamplesPerChannel() != 0 {
		t.Errorf("geometry = %dx%d, want 2x0", buf.NumChannels(), buf.SamplesPerChannel())
	}
	if err := buf.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestExtract_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	src := audiotest.NewSilentSource(8000, 1, 100)
	src.Err = boom
	src.FailAfter = 10

	_, err := Extract(src)
	if !errors.Is(err, boom) {
		t.Errorf("Extract() error = %v, want wrapped %v", err, boom)
	}
}

func TestExtract_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := Extract(audiotest.NewSilentSource(8000, 0, 10))
	if !errors.Is(err, ErrContractViolation) {
		t.Errorf("Extract() error = %v, want ErrContractViolation", err)
	}
}

func TestExtract_BufferSourceRoundTrip(t *testing.T) {
	t.Parallel()

	want := &Buffer{
		SampleRate: 48000,
		Channels: [][]float32{
			audiotest.Sine(48000, 1000, 440),
			audiotest.Sine(48000, 1000, 880),
		},
	}

	got, err := Extract(NewBufferSource(want, 333))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	for c := range want.Channels {
		if !slices.Equal(got.Channels[c], want.Channels[c]) {
			t.Errorf("channel %d differs after round trip", c)
		}
	}
}
