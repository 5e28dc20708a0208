// SPDX-License-Identifier: EPL-2.0

// Package wav encodes decoded audio as canonical 16-bit PCM RIFF/WAVE
// files and decodes integer PCM WAV input.
//
// # Encoding
//
// Encode turns an audio.Buffer into the exact bytes of a WAV file:
//
//	data, err := wav.Encode(buf)
//	if errors.Is(err, audio.ErrContractViolation) {
//	    // the buffer was malformed; nothing was produced
//	}
//
// The output is always 44 + frames*channels*2 bytes long: a fixed 44-byte
// header followed by interleaved little-endian int16 samples, frame by
// frame with channels in ascending order. Samples are clamped to [-1, 1]
// and scaled by 32767 with truncation toward zero, so -1.0 becomes -32767.
// Encoding is a pure function of the buffer; the same input always yields
// the same bytes.
//
// # Header Layout
//
//	offset  size  field          value
//	0       4     ChunkID        "RIFF"
//	4       4     ChunkSize      total - 8
//	8       4     Format         "WAVE"
//	12      4     Subchunk1ID    "fmt "
//	16      4     Subchunk1Size  16
//	20      2     AudioFormat    1 (PCM)
//	22      2     NumChannels    channels
//	24      4     SampleRate     rate
//	28      4     ByteRate       rate*channels*2
//	32      2     BlockAlign     channels*2
//	34      2     BitsPerSample  16
//	36      4     Subchunk2ID    "data"
//	40      4     Subchunk2Size  frames*channels*2
//
// ParseHeader reads this layout back.
//
// # Decoding
//
// Decoder accepts 8, 16, 24 and 32-bit integer PCM via github.com/go-audio/wav,
// skipping unknown chunks. The returned audio.Source yields float32 samples
// in [-1, 1).
package wav
