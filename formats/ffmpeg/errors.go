// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "errors"

var (
	ErrNotInstalled = errors.New("ffmpeg binary not found")
	ErrEngineFailed = errors.New("ffmpeg exited with an error")
	ErrNoTarget     = errors.New("no target format given")
)
