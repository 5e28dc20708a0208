// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"io"

	"github.com/ik5/mediaconv/audio"
)

type nopDecoder struct{}

func (nopDecoder) Decode(io.Reader) (audio.Source, error) {
	return audio.NewBufferSource(audio.NewBuffer(8000, 1, 0), 0), nil
}
