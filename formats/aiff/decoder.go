// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/mediaconv/audio"
)

// aiffReader is the part of aiff.Decoder the source uses; tests swap
// in a fake.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

const defaultReadSize = 4096

// source normalizes the signed integer samples of an SSND chunk.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	scale      float32
	pcm        *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// BufSize is 4096 rounded down to whole frames.
func (s *source) BufSize() int {
	if s.channels <= 0 {
		return defaultReadSize
	}
	return max(defaultReadSize/s.channels, 1) * s.channels
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.pcm == nil {
		s.pcm = &goaudio.IntBuffer{Format: s.dec.Format()}
	}
	if cap(s.pcm.Data) < len(dst) {
		s.pcm.Data = make([]int, len(dst))
	}
	s.pcm.Data = s.pcm.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.pcm)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading aiff pcm: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.pcm.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	// a short read means the SSND chunk is exhausted
	if n < len(dst) || err == io.EOF {
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads big-endian integer PCM AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	scale, err := pcmScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}, nil
}

// AIFF samples are signed at every depth, so only the magnitude varies.
func pcmScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}
}
