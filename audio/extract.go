// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Extract drains src into a deinterleaved Buffer.
//
// Reads use src.BufSize() rounded down to whole frames (at least one
// frame). A trailing partial frame is dropped. Extract does not close src.
func Extract(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrContractViolation, ErrNoChannels)
	}

	size := src.BufSize() / channels * channels
	if size == 0 {
		size = channels
	}
	buf := make([]float32, size)

	out := &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   make([][]float32, channels),
	}

	// pending holds a partial frame carried over between reads
	var pending []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			chunk := buf[:n]
			if len(pending) > 0 {
				chunk = append(pending, chunk...)
				pending = nil
			}

			frames := len(chunk) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					out.Channels[c] = append(out.Channels[c], chunk[base+c])
				}
			}

			if rest := chunk[frames*channels:]; len(rest) > 0 {
				pending = append([]float32(nil), rest...)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("extracting pcm: %w", err)
		}
		if n == 0 {
			// (0, nil) is treated as end of stream
			break
		}
	}

	for c := range out.Channels {
		if out.Channels[c] == nil {
			out.Channels[c] = []float32{}
		}
	}

	return out, nil
}
