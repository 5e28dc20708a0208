// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"github.com/ik5/mediaconv/audio"
	"github.com/ik5/mediaconv/formats/wav"
)

// Formats lists the input extensions Register binds to ffmpeg.
var Formats = []string{"aac", "flac", "m4a", "opus", "webm", "wma"}

// Decoder hands inputs no native decoder understands (FLAC, AAC, Opus,
// WMA, the audio track of a video) to ffmpeg, which renders them as
// 16-bit PCM WAV that the wav decoder then reads.
type Decoder struct {
	Engine Engine

	// Format is the input extension; ffmpeg uses it to pick a demuxer
	// for formats it cannot probe. Empty means "bin".
	Format string
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return d.DecodeContext(context.Background(), r)
}

// DecodeContext is Decode with the ffmpeg run bound to ctx.
func (d Decoder) DecodeContext(ctx context.Context, r io.Reader) (audio.Source, error) {
	ext := d.Format
	if ext == "" {
		ext = "bin"
	}

	data, err := d.Engine.convert(ctx, r, ext, "wav", ffmpeggo.KwArgs{
		"map":    "0:a:0",
		"acodec": "pcm_s16le",
		"f":      "wav",
	})
	if err != nil {
		return nil, fmt.Errorf("decoding %s via ffmpeg: %w", ext, err)
	}

	return wav.Decoder{}.Decode(bytes.NewReader(data))
}

// ForFormat returns a copy of d bound to the given input extension.
func (d Decoder) ForFormat(format string) Decoder {
	d.Format = audio.NormalizeFormat(format)
	return d
}

// Register binds a Decoder for every entry of Formats in reg.
func Register(reg *audio.Registry, e Engine) {
	base := Decoder{Engine: e}
	for _, f := range Formats {
		reg.Register(base.ForFormat(f), f)
	}
}
