// SPDX-License-Identifier: EPL-2.0

// Package mediaconv converts audio (and, through ffmpeg, video) files
// into other formats. Its core is a bit-exact encoder for canonical
// 16-bit PCM WAV.
//
// # Supported inputs
//
//   - WAV (8/16/24/32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - FLAC, AAC, M4A, Opus, WebM and WMA via formats/ffmpeg, when an
//     ffmpeg binary is installed
//
// # Quick start
//
//	f, _ := os.Open("voice.mp3")
//	data, err := mediaconv.ConvertToWAV(f, "mp3")
//	// data is a 44-byte RIFF header followed by interleaved int16 frames
//
// # Building blocks
//
// ConvertToWAV is a shortcut for the convert package, which adds
// sinks, resampling and downmix options, video targets and typed errors:
//
//	conv := &convert.Converter{
//		Registry: mediaconv.NewRegistry(ffmpeg.Engine{}),
//		Sink:     convert.FileSink{Dir: "out"},
//		Options:  convert.Options{TargetRate: 16000, Mono: true},
//	}
//	art, err := conv.Convert(ctx, convert.Request{Name: "in.ogg", Input: f, Target: "wav"})
//
// At the lowest level, audio.Extract drains any decoder into an
// audio.Buffer and wav.Encode serializes it:
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	buf, _ := audio.Extract(src)
//	data, _ := wav.Encode(buf)
//
// See the individual subpackages for more detailed documentation.
package mediaconv
