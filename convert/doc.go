// SPDX-License-Identifier: EPL-2.0

// Package convert is the conversion pipeline: it picks a decoder by
// input extension, extracts the PCM, encodes a canonical 16-bit WAV and
// hands the result to a Sink.
//
// Targets other than WAV (mp3, ogg, flac, m4a and the video containers)
// are passed to a Transcoder, usually ffmpeg.Engine.
//
// Every stage runs once. Any failure comes back as a *Error carrying a
// Kind, and errors.Is(err, ErrConversionFailed) holds for all of them:
//
//	art, err := conv.Convert(ctx, convert.Request{Name: "in.mp3", Input: f, Target: "wav"})
//	if errors.Is(err, convert.ErrConversionFailed) {
//		log.Printf("stage %s failed", convert.KindOf(err))
//	}
package convert
