// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg delegates decoding and transcoding to an external
// ffmpeg binary, with command lines built by github.com/u2takey/ffmpeg-go.
//
// ffmpeg is treated as a black box: input bytes are spooled to a
// temporary file, ffmpeg writes a temporary output file, and the output
// bytes are returned. Both files are removed when the call returns.
// Temporary names are random UUIDs, so concurrent runs never collide.
//
// Decoder plugs into an audio.Registry for formats without a native Go
// decoder. Engine.Transcode handles video targets.
package ffmpeg
