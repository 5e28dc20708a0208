// SPDX-License-Identifier: EPL-2.0

// Command mediaconv converts media files.
//
//	mediaconv [flags] <input> [target]
//	mediaconv inspect <file.wav>
//	mediaconv formats
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/ik5/mediaconv"
	"github.com/ik5/mediaconv/convert"
	"github.com/ik5/mediaconv/formats/ffmpeg"
	"github.com/ik5/mediaconv/formats/wav"
	"github.com/ik5/mediaconv/internal/config"
	"github.com/ik5/mediaconv/internal/logger"
)

var (
	bold  = color.New(color.Bold)
	cyan  = color.New(color.FgCyan)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	logLevel   string
	logFile    string
	outputDir  string
	ffmpegPath string
	rate       int
	mono       bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mediaconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  mediaconv [flags] <input> [target]\n")
		fmt.Fprintf(stderr, "  mediaconv inspect <file.wav>\n")
		fmt.Fprintf(stderr, "  mediaconv formats\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/mediaconv/mediaconv.yaml)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Set log level (debug|info|warn|error)")
	fs.StringVar(&opts.logFile, "log-filename", "", "Log to file instead of stderr")
	fs.StringVar(&opts.outputDir, "out", "", "Output directory")
	fs.StringVar(&opts.ffmpegPath, "ffmpeg", "", "Path to the ffmpeg binary")
	fs.IntVar(&opts.rate, "rate", 0, "Resample WAV output to this rate in Hz")
	fs.BoolVar(&opts.mono, "mono", false, "Downmix WAV output to mono")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		red.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	applyFlags(cfg, opts, fs)
	if err := cfg.Validate(); err != nil {
		red.Fprintf(stderr, "Error in configuration: %v\n", err)
		return 1
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		if err := logger.SetOutputFile(cfg.LogFile); err != nil {
			red.Fprintf(stderr, "Error setting log file: %v\n", err)
			return 1
		}
		defer logger.CloseLogFile()
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	switch rest[0] {
	case "formats":
		return listFormats(stdout, cfg)
	case "inspect":
		if len(rest) != 2 {
			fs.Usage()
			return 2
		}
		return inspect(stdout, stderr, rest[1])
	}

	target := cfg.DefaultTarget
	if len(rest) > 1 {
		target = rest[1]
	}

	return convertFile(ctx, stdout, stderr, cfg, rest[0], target)
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cfg *config.Config, opts options, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "log-filename":
			cfg.LogFile = opts.logFile
		case "out":
			cfg.OutputDir = opts.outputDir
		case "ffmpeg":
			cfg.FFmpegPath = opts.ffmpegPath
		case "rate":
			cfg.TargetRate = opts.rate
		case "mono":
			cfg.Mono = opts.mono
		}
	})
}

func convertFile(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, input, target string) int {
	f, err := os.Open(input)
	if err != nil {
		red.Fprintf(stderr, "Error opening input: %v\n", err)
		return 1
	}
	defer f.Close()

	engine := ffmpeg.Engine{Path: cfg.FFmpegPath}
	sink := convert.FileSink{Dir: cfg.OutputDir}
	log := logger.Logger("convert")

	conv := &convert.Converter{
		Registry:   mediaconv.NewRegistry(engine),
		Sink:       sink,
		Transcoder: engine,
		Options:    convert.Options{TargetRate: cfg.TargetRate, Mono: cfg.Mono},
		Logger:     &log,
	}

	art, err := conv.Convert(ctx, convert.Request{
		Name:   filepath.Base(input),
		Input:  f,
		Target: target,
	})
	if err != nil {
		logger.Error("Conversion failed", err)
		red.Fprintf(stderr, "Conversion failed (%s stage): %v\n", convert.KindOf(err), err)
		return 1
	}

	green.Fprintf(stdout, "Wrote %s ", sink.Path(art))
	fmt.Fprintf(stdout, "(%s, %d bytes)\n", art.MIMEType, len(art.Data))
	return 0
}

func inspect(stdout, stderr io.Writer, path string) int {
	f, err := os.Open(path)
	if err != nil {
		red.Fprintf(stderr, "Error opening file: %v\n", err)
		return 1
	}
	defer f.Close()

	head := make([]byte, wav.HeaderSize)
	if _, err := io.ReadFull(f, head); err != nil {
		red.Fprintf(stderr, "Error reading header: %v\n", err)
		return 1
	}

	h, err := wav.ParseHeader(head)
	if err != nil {
		red.Fprintf(stderr, "Not a canonical PCM WAV: %v\n", err)
		return 1
	}

	bold.Fprintf(stdout, "%s\n", path)
	rows := []struct {
		name  string
		value int
	}{
		{"ChunkSize", h.ChunkSize},
		{"AudioFormat", h.AudioFormat},
		{"Channels", h.Channels},
		{"SampleRate", h.SampleRate},
		{"ByteRate", h.ByteRate},
		{"BlockAlign", h.BlockAlign},
		{"BitsPerSample", h.BitsPerSample},
		{"DataSize", h.DataSize},
		{"Frames", h.Frames()},
	}
	for _, r := range rows {
		cyan.Fprintf(stdout, "  %-14s", r.name)
		fmt.Fprintf(stdout, "%d\n", r.value)
	}

	return 0
}

func listFormats(stdout io.Writer, cfg *config.Config) int {
	engine := ffmpeg.Engine{Path: cfg.FFmpegPath}

	bold.Fprintln(stdout, "Native decoders:")
	fmt.Fprintf(stdout, "  %s\n", strings.Join(mediaconv.NewNativeRegistry().Formats(), " "))

	bold.Fprintln(stdout, "ffmpeg decoders:")
	if err := engine.Available(); err != nil {
		fmt.Fprintf(stdout, "  %s (unavailable: ffmpeg not found)\n", strings.Join(ffmpeg.Formats, " "))
	} else {
		fmt.Fprintf(stdout, "  %s\n", strings.Join(ffmpeg.Formats, " "))
	}

	return 0
}
