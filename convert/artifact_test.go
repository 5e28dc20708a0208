// SPDX-License-Identifier: EPL-2.0

package convert

import "testing"

func TestMIMEType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"wav":  "audio/wav",
		".MP3": "audio/mp3",
		"ogg":  "audio/ogg",
		"mp4":  "video/mp4",
		"WebM": "video/webm",
		"mkv":  "video/mkv",
	}

	for in, want := range tests {
		if got := MIMEType(in); got != want {
			t.Errorf("MIMEType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, target, want string
	}{
		{"song.mp3", "wav", "song.wav"},
		{"/tmp/rec/Take 1.OGG", "wav", "Take 1.wav"},
		{"archive.tar.gz", ".wav", "archive.tar.wav"},
		{"noext", "mp4", "noext.mp4"},
		{"", "wav", "output.wav"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.name, tt.target); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.name, tt.target, got, tt.want)
		}
	}
}

func TestIsVideo(t *testing.T) {
	t.Parallel()

	for _, f := range []string{"mp4", "webm", "mkv", "mov", "avi", ".MOV"} {
		if !IsVideo(f) {
			t.Errorf("IsVideo(%q) = false", f)
		}
	}
	for _, f := range []string{"wav", "mp3", "", "pdf"} {
		if IsVideo(f) {
			t.Errorf("IsVideo(%q) = true", f)
		}
	}
}
