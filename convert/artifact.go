// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"path/filepath"
	"strings"

	"github.com/ik5/mediaconv/audio"
)

// Artifact is a finished conversion.
type Artifact struct {
	// Name is the suggested file name: the input base name with the
	// target extension.
	Name     string
	MIMEType string
	Data     []byte
}

var videoTargets = map[string]bool{
	"avi":  true,
	"mkv":  true,
	"mov":  true,
	"mp4":  true,
	"webm": true,
}

// transcodedAudio are audio targets produced by the Transcoder rather
// than the built-in WAV encoder.
var transcodedAudio = map[string]bool{
	"flac": true,
	"m4a":  true,
	"mp3":  true,
	"ogg":  true,
}

// IsVideo reports whether target is a video container.
func IsVideo(target string) bool {
	return videoTargets[audio.NormalizeFormat(target)]
}

// MIMEType labels a target extension: "video/<ext>" for video
// containers, "audio/<ext>" otherwise.
func MIMEType(target string) string {
	target = audio.NormalizeFormat(target)
	if videoTargets[target] {
		return "video/" + target
	}
	return "audio/" + target
}

// OutputName swaps the extension of name for target. Directories are
// stripped; an empty base becomes "output".
func OutputName(name, target string) string {
	base := filepath.Base(filepath.ToSlash(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "output"
	}
	return base + "." + audio.NormalizeFormat(target)
}
