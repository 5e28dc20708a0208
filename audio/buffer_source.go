// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource streams a Buffer as interleaved samples, frame by frame.
type BufferSource struct {
	buf  *Buffer
	pos  int // next frame to emit
	size int
}

// NewBufferSource returns a Source over b. bufSize is the preferred read
// size reported by BufSize; zero picks 4096.
func NewBufferSource(b *Buffer, bufSize int) *BufferSource {
	if bufSize <= 0 {
		bufSize = 4096
	}
	return &BufferSource{buf: b, size: bufSize}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *BufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *BufferSource) BufSize() int    { return s.size }
func (s *BufferSource) Close() error    { return nil }

// ReadSamples interleaves up to len(dst)/channels frames into dst.
// dst length must be a multiple of the channel count.
func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels()
	if channels == 0 {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	total := s.buf.SamplesPerChannel()
	if s.pos >= total {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, total-s.pos)
	for f := range frames {
		base := f * channels
		for c, ch := range s.buf.Channels {
			dst[base+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= total {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
