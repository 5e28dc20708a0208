// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/mediaconv/audio"
)

// mockOggVorbisReader simulates oggvorbis.Reader, which returns the
// number of float32 values written.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// hand out whole frames, like the real decoder
	n := min(len(buf), len(m.samples)-m.offset) / m.channels * m.channels
	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{}, sampleRate: 48000, channels: 6}

	if src.SampleRate() != 48000 || src.Channels() != 6 {
		t.Errorf("metadata = %d Hz / %d ch, want 48000 / 6", src.SampleRate(), src.Channels())
	}
	if src.BufSize()%6 != 0 {
		t.Errorf("BufSize() = %d, want a whole number of frames", src.BufSize())
	}
}

func TestSource_ExtractStereo(t *testing.T) {
	t.Parallel()

	mock := &mockOggVorbisReader{
		sampleRate: 44100,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}
	src := &source{dec: mock, sampleRate: 44100, channels: 2}

	buf, err := audio.Extract(src)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if buf.SamplesPerChannel() != 3 {
		t.Fatalf("SamplesPerChannel() = %d, want 3", buf.SamplesPerChannel())
	}
	for i, want := range []float32{0.1, 0.2, 0.3} {
		if buf.Channels[0][i] != want || buf.Channels[1][i] != -want {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)", i, buf.Channels[0][i], buf.Channels[1][i], want, -want)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{channels: 1, samples: []float32{1}}, sampleRate: 8000, channels: 1}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{channels: 1, err: io.ErrUnexpectedEOF}, sampleRate: 8000, channels: 1}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
