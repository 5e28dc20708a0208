// SPDX-License-Identifier: EPL-2.0

// Package audio defines the PCM contracts shared by every decoder and by
// the WAV encoder.
//
// # Sources and Decoders
//
// A Decoder turns an input reader into a Source, a stream of interleaved
// float32 samples in [-1, 1]. Decoders are looked up by input format in a
// Registry:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.Decoder{}, "wav")
//	reg.Register(vorbis.Decoder{}, "ogg", "oga")
//
//	dec, ok := reg.Get(".OGG") // keys are normalized
//
// # Decoded Audio
//
// Extract drains a Source into a Buffer: one slice of samples per channel,
// all of the same length. This is the deinterleaved form the encoder
// consumes.
//
//	src, _ := dec.Decode(file)
//	defer src.Close()
//
//	buf, err := audio.Extract(src)
//	if err != nil {
//	    // decode failure
//	}
//
// Buffer.Validate checks the invariants an encoder relies on. Every error
// it returns wraps ErrContractViolation.
//
// # Shaping
//
// Buffers can be downmixed to mono or resampled with cubic interpolation
// before encoding. Both return new buffers and never modify the receiver:
//
//	mono := buf.Downmix()
//	narrow := mono.Resample(8000)
//
// BufferSource turns a Buffer back into a Source.
package audio
