// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrShortHeader          = errors.New("WAV header shorter than 44 bytes")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrUnsupportedFormat    = errors.New("only integer PCM WAV is supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")

	// encoder geometry limits
	ErrTooManyChannels = errors.New("channel count does not fit WAV block align")
	ErrHeaderOverflow  = errors.New("byte rate does not fit WAV header")
	ErrDataTooLarge    = errors.New("audio data does not fit a RIFF chunk")
)
