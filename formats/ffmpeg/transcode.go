// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"context"
	"fmt"
	"io"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"github.com/ik5/mediaconv/audio"
)

// Transcode converts in (of format inFormat) to target, letting ffmpeg
// choose codecs from the output extension. Video and non-WAV audio
// targets go through here.
func (e Engine) Transcode(ctx context.Context, in io.Reader, inFormat, target string) ([]byte, error) {
	inFormat = audio.NormalizeFormat(inFormat)
	target = audio.NormalizeFormat(target)
	if target == "" {
		return nil, ErrNoTarget
	}
	if inFormat == "" {
		inFormat = "bin"
	}

	data, err := e.convert(ctx, in, inFormat, target, ffmpeggo.KwArgs{})
	if err != nil {
		return nil, fmt.Errorf("transcoding %s to %s: %w", inFormat, target, err)
	}

	return data, nil
}
