// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"github.com/ik5/mediaconv/audio"
	"github.com/ik5/mediaconv/formats/wav"
	"github.com/ik5/mediaconv/internal/audiotest"
)

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
}

func TestArgs(t *testing.T) {
	t.Parallel()

	args := Args("in.flac", "out.wav", ffmpeggo.KwArgs{"acodec": "pcm_s16le"})

	for _, want := range []string{"-i", "in.flac", "out.wav", "-acodec", "pcm_s16le", "-loglevel", "error", "-y"} {
		if !slices.Contains(args, want) {
			t.Errorf("Args() = %v, missing %q", args, want)
		}
	}

	in := slices.Index(args, "in.flac")
	out := slices.Index(args, "out.wav")
	if in > out {
		t.Errorf("input %d after output %d in %v", in, out, args)
	}
}

func TestAvailableMissingBinary(t *testing.T) {
	t.Parallel()

	e := Engine{Path: filepath.Join(t.TempDir(), "no-such-ffmpeg")}
	if err := e.Available(); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Available() = %v, want ErrNotInstalled", err)
	}

	_, err := Decoder{Engine: e, Format: "flac"}.Decode(bytes.NewReader(nil))
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Decode() = %v, want ErrNotInstalled", err)
	}

	_, err = e.Transcode(context.Background(), bytes.NewReader(nil), "wav", "mp4")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Transcode() = %v, want ErrNotInstalled", err)
	}
}

func TestTranscodeNoTarget(t *testing.T) {
	t.Parallel()

	_, err := Engine{}.Transcode(context.Background(), bytes.NewReader(nil), "wav", " ")
	if !errors.Is(err, ErrNoTarget) {
		t.Errorf("Transcode() = %v, want ErrNoTarget", err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg, Engine{})

	for _, f := range Formats {
		d, ok := reg.Get(f)
		if !ok {
			t.Fatalf("format %q not registered", f)
		}
		if got := d.(Decoder).Format; got != f {
			t.Errorf("decoder for %q has Format %q", f, got)
		}
	}
}

func TestDecodeThroughFFmpeg(t *testing.T) {
	t.Parallel()
	requireFFmpeg(t)

	buf := &audio.Buffer{
		SampleRate: 22050,
		Channels: [][]float32{
			audiotest.Sine(22050, 2205, 440),
			audiotest.Sine(22050, 2205, 880),
		},
	}
	in, err := wav.Encode(buf)
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{Engine: Engine{TempDir: t.TempDir()}, Format: "wav"}.Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got, err := audio.Extract(src)
	if err != nil {
		t.Fatal(err)
	}

	if got.SampleRate != 22050 || got.NumChannels() != 2 {
		t.Errorf("got %d Hz, %d channels", got.SampleRate, got.NumChannels())
	}
	if got.SamplesPerChannel() != 2205 {
		t.Errorf("SamplesPerChannel() = %d, want 2205", got.SamplesPerChannel())
	}
}

func TestTranscodeThroughFFmpeg(t *testing.T) {
	t.Parallel()
	requireFFmpeg(t)

	buf := &audio.Buffer{SampleRate: 8000, Channels: [][]float32{audiotest.Sine(8000, 800, 440)}}
	in, err := wav.Encode(buf)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	out, err := Engine{TempDir: dir}.Transcode(context.Background(), bytes.NewReader(in), "wav", "flac")
	if err != nil {
		t.Fatalf("Transcode() error = %v", err)
	}

	if !bytes.HasPrefix(out, []byte("fLaC")) {
		t.Errorf("output does not start with the FLAC marker")
	}

	left, _ := filepath.Glob(filepath.Join(dir, "*"))
	if len(left) != 0 {
		t.Errorf("temporary files left behind: %v", left)
	}
}
