// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

// Header is the decoded form of the canonical 44-byte PCM header.
type Header struct {
	ChunkSize     int
	AudioFormat   int
	Channels      int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataSize      int
}

// Frames is the number of sample frames the data chunk declares.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return h.DataSize / h.BlockAlign
}

// ParseHeader reads the canonical header at the start of b. It only
// accepts the fixed layout Encode writes: RIFF, WAVE, a 16-byte fmt
// chunk, then the data chunk at offset 36.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(b[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(b[16:20]) != fmtChunkSize {
		return Header{}, ErrUnsupportedWavLayout
	}
	if !bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		ChunkSize:     int(binary.LittleEndian.Uint32(b[4:8])),
		AudioFormat:   int(binary.LittleEndian.Uint16(b[20:22])),
		Channels:      int(binary.LittleEndian.Uint16(b[22:24])),
		SampleRate:    int(binary.LittleEndian.Uint32(b[24:28])),
		ByteRate:      int(binary.LittleEndian.Uint32(b[28:32])),
		BlockAlign:    int(binary.LittleEndian.Uint16(b[32:34])),
		BitsPerSample: int(binary.LittleEndian.Uint16(b[34:36])),
		DataSize:      int(binary.LittleEndian.Uint32(b[40:44])),
	}, nil
}
