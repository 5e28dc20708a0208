// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input with github.com/hajimehoshi/go-mp3.
//
// The go-mp3 decoder always produces 16-bit stereo, so the returned
// audio.Source reports two channels even for mono files. Samples are
// normalized to [-1, 1) by dividing by 32768.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	buf, err := audio.Extract(src)
package mp3
