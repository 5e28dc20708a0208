// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to interleaved float32, so samples pass through
// unchanged. Channel count and sample rate come from the stream headers;
// multichannel streams (up to 255 channels) are supported.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // not an Ogg Vorbis stream
//	}
//	buf, err := audio.Extract(src)
package vorbis
