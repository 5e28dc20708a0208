// SPDX-License-Identifier: EPL-2.0

package mediaconv

import (
	"context"
	"io"

	"github.com/ik5/mediaconv/audio"
	"github.com/ik5/mediaconv/convert"
	"github.com/ik5/mediaconv/formats/aiff"
	"github.com/ik5/mediaconv/formats/ffmpeg"
	"github.com/ik5/mediaconv/formats/mp3"
	"github.com/ik5/mediaconv/formats/vorbis"
	"github.com/ik5/mediaconv/formats/wav"
)

// NewNativeRegistry returns a registry holding the pure Go decoders:
// wav, mp3, ogg/oga and aiff/aif.
func NewNativeRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")
	reg.Register(aiff.Decoder{}, "aiff", "aif")
	return reg
}

// NewRegistry returns the native decoders plus ffmpeg-backed decoders
// for the formats in ffmpeg.Formats.
func NewRegistry(e ffmpeg.Engine) *audio.Registry {
	reg := NewNativeRegistry()
	ffmpeg.Register(reg, e)
	return reg
}

// ConvertToWAV decodes r as format (a file extension such as "mp3")
// and returns it as a canonical 16-bit PCM WAV byte stream. Errors
// match convert.ErrConversionFailed.
func ConvertToWAV(r io.Reader, format string) ([]byte, error) {
	conv := &convert.Converter{Registry: NewRegistry(ffmpeg.Engine{})}

	art, err := conv.Convert(context.Background(), convert.Request{
		Name:   "input." + audio.NormalizeFormat(format),
		Input:  r,
		Target: "wav",
	})
	if err != nil {
		return nil, err
	}

	return art.Data, nil
}
