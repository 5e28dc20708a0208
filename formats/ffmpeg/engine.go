// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	ffmpeggo "github.com/u2takey/ffmpeg-go"
)

// Engine runs an external ffmpeg binary. The zero value uses "ffmpeg"
// from PATH and the system temp directory.
type Engine struct {
	// Path to the ffmpeg binary.
	Path string

	// TempDir holds the input and output files of each run.
	TempDir string
}

func (e Engine) binary() string {
	if e.Path != "" {
		return e.Path
	}
	return "ffmpeg"
}

func (e Engine) tempDir() string {
	if e.TempDir != "" {
		return e.TempDir
	}
	return os.TempDir()
}

// Available reports whether the configured binary can be found.
func (e Engine) Available() error {
	if _, err := exec.LookPath(e.binary()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotInstalled, err)
	}
	return nil
}

// Args builds the ffmpeg command line that converts inPath to outPath.
// Output options are passed through ffmpeg-go's keyword arguments.
func Args(inPath, outPath string, output ffmpeggo.KwArgs) []string {
	kw := ffmpeggo.KwArgs{"loglevel": "error"}
	for k, v := range output {
		kw[k] = v
	}

	return ffmpeggo.Input(inPath).
		Output(outPath, kw).
		OverWriteOutput().
		GetArgs()
}

// convert copies in to a temporary file named with inExt, runs ffmpeg
// to produce a file named with outExt, and returns the output bytes.
// Both files are removed afterwards.
func (e Engine) convert(ctx context.Context, in io.Reader, inExt, outExt string, output ffmpeggo.KwArgs) ([]byte, error) {
	if err := e.Available(); err != nil {
		return nil, err
	}

	base := filepath.Join(e.tempDir(), "mediaconv-"+uuid.New().String())
	inPath := base + "-in." + strings.TrimPrefix(inExt, ".")
	outPath := base + "-out." + strings.TrimPrefix(outExt, ".")
	defer os.Remove(inPath)
	defer os.Remove(outPath)

	if err := writeFile(inPath, in); err != nil {
		return nil, err
	}

	var stderr bytes.Buffer
	// #nosec G204 - binary comes from config, paths are generated above
	cmd := exec.CommandContext(ctx, e.binary(), Args(inPath, outPath, output)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		return nil, fmt.Errorf("%w: %w: %s", ErrEngineFailed, err, msg)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("reading ffmpeg output: %w", err)
	}

	return data, nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating ffmpeg input: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing ffmpeg input: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing ffmpeg input: %w", err)
	}

	return nil
}
