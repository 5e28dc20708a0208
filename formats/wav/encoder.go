// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/mediaconv/audio"
	"github.com/ik5/mediaconv/utils"
)

const (
	// HeaderSize is the length of the canonical RIFF/WAVE PCM header.
	HeaderSize = 44

	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	fmtChunkSize   = 16
	formatPCM      = 1
)

// EncodedSize returns the exact byte length Encode produces for the
// given geometry.
func EncodedSize(channels, samplesPerChannel int) int {
	return HeaderSize + samplesPerChannel*channels*bytesPerSample
}

// Encode serializes buf as a canonical 16-bit PCM WAV file.
//
// The output is a pure function of buf: a 44-byte header followed by
// frame-major interleaved little-endian int16 samples. Samples are
// quantized with utils.Float32ToInt16. A buffer that fails
// audio.Buffer.Validate, or whose geometry does not fit the header's
// fixed-width fields, is rejected with an error wrapping
// audio.ErrContractViolation and nothing is produced.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("wav encode: %w", err)
	}

	channels := buf.NumChannels()
	frames := buf.SamplesPerChannel()
	if err := checkGeometry(buf.SampleRate, channels, frames); err != nil {
		return nil, fmt.Errorf("wav encode: %w", err)
	}

	out := make([]byte, EncodedSize(channels, frames))
	putHeader(out, Header{
		Channels:   channels,
		SampleRate: buf.SampleRate,
		DataSize:   frames * channels * bytesPerSample,
	})

	blockAlign := channels * bytesPerSample
	for c, ch := range buf.Channels {
		off := HeaderSize + c*bytesPerSample
		for _, s := range ch {
			binary.LittleEndian.PutUint16(out[off:off+2], uint16(utils.Float32ToInt16(s)))
			off += blockAlign
		}
	}

	return out, nil
}

// Write encodes buf and writes the whole file to w in one call.
func Write(w io.Writer, buf *audio.Buffer) error {
	data, err := Encode(buf)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}

	return nil
}

// checkGeometry rejects buffers whose derived header fields overflow.
func checkGeometry(sampleRate, channels, frames int) error {
	if channels*bytesPerSample > math.MaxUint16 {
		return fmt.Errorf("%w: %w: %d", audio.ErrContractViolation, ErrTooManyChannels, channels)
	}

	byteRate := int64(sampleRate) * int64(channels) * bytesPerSample
	if byteRate > math.MaxUint32 {
		return fmt.Errorf("%w: %w: %d bytes/s", audio.ErrContractViolation, ErrHeaderOverflow, byteRate)
	}

	riffSize := int64(frames)*int64(channels)*bytesPerSample + HeaderSize - 8
	if riffSize > math.MaxUint32 {
		return fmt.Errorf("%w: %w: %d bytes", audio.ErrContractViolation, ErrDataTooLarge, riffSize)
	}

	return nil
}

func putHeader(b []byte, h Header) {
	blockAlign := h.Channels * bytesPerSample

	// RIFF header (12 bytes)
	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], uint32(HeaderSize-8+h.DataSize))
	copy(b[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(b[20:22], formatPCM)
	binary.LittleEndian.PutUint16(b[22:24], uint16(h.Channels))
	binary.LittleEndian.PutUint32(b[24:28], uint32(h.SampleRate))
	binary.LittleEndian.PutUint32(b[28:32], uint32(h.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(b[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(b[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], uint32(h.DataSize))
}
