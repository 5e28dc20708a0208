// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ik5/mediaconv/audio"
	"github.com/ik5/mediaconv/formats/wav"
)

// Transcoder converts between formats the built-in pipeline does not
// produce, such as video containers.
type Transcoder interface {
	Transcode(ctx context.Context, in io.Reader, inFormat, target string) ([]byte, error)
}

// ContextDecoder is a Decoder whose work can be bound to a context.
// Convert prefers DecodeContext when a decoder provides it.
type ContextDecoder interface {
	audio.Decoder
	DecodeContext(ctx context.Context, r io.Reader) (audio.Source, error)
}

// Options shape decoded audio before it is encoded. The zero value
// leaves it untouched.
type Options struct {
	// TargetRate resamples to this rate when > 0.
	TargetRate int

	// Mono downmixes all channels to one.
	Mono bool
}

// Request is one conversion. Name is used for its extension, which
// selects the decoder, and for the suggested output name.
type Request struct {
	Name   string
	Input  io.Reader
	Target string
}

// Converter runs decode, extract, encode and deliver as a single
// attempt. Registry is required; a nil Sink skips delivery and a nil
// Logger disables logging.
type Converter struct {
	Registry   *audio.Registry
	Sink       Sink
	Transcoder Transcoder
	Options    Options
	Logger     *zerolog.Logger
}

func (c *Converter) logger() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// Convert turns req into an artifact of req.Target. Every error it
// returns is a *Error matching ErrConversionFailed. The context is
// checked between stages only.
func (c *Converter) Convert(ctx context.Context, req Request) (*Artifact, error) {
	target := audio.NormalizeFormat(req.Target)
	inFormat := audio.NormalizeFormat(filepath.Ext(req.Name))

	log := c.logger().With().
		Str("input", req.Name).
		Str("format", inFormat).
		Str("target", target).
		Logger()

	if req.Input == nil {
		return nil, fail(KindDecode, ErrNoInput)
	}

	var (
		art *Artifact
		err error
	)

	switch {
	case target == "wav":
		art, err = c.toWAV(ctx, &log, req, inFormat)
	case IsVideo(target) || transcodedAudio[target]:
		art, err = c.transcode(ctx, &log, req, inFormat, target)
	default:
		err = fail(KindUnsupported, fmt.Errorf("%w: %q", ErrUnsupportedTarget, req.Target))
	}
	if err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(KindSink, err)
	}

	if c.Sink != nil {
		if err := c.Sink.Deliver(ctx, art); err != nil {
			log.Error().Err(err).Msg("delivery failed")
			return nil, fail(KindSink, err)
		}
	}

	log.Info().Str("output", art.Name).Int("bytes", len(art.Data)).Msg("converted")
	return art, nil
}

func (c *Converter) toWAV(ctx context.Context, log *zerolog.Logger, req Request, inFormat string) (*Artifact, error) {
	buf, err := c.Decode(ctx, req.Input, inFormat)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("channels", buf.NumChannels()).
		Int("rate", buf.SampleRate).
		Int("samples", buf.SamplesPerChannel()).
		Msg("extracted")

	if c.Options.Mono && buf.NumChannels() > 1 {
		buf = buf.Downmix()
	}
	if c.Options.TargetRate > 0 && c.Options.TargetRate != buf.SampleRate {
		buf = buf.Resample(c.Options.TargetRate)
		log.Debug().Int("rate", buf.SampleRate).Int("samples", buf.SamplesPerChannel()).Msg("resampled")
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(KindContract, err)
	}

	data, err := wav.Encode(buf)
	if err != nil {
		return nil, fail(KindContract, err)
	}

	log.Debug().Int("bytes", len(data)).Msg("encoded")

	return &Artifact{
		Name:     OutputName(req.Name, "wav"),
		MIMEType: MIMEType("wav"),
		Data:     data,
	}, nil
}

// Decode looks up the decoder for format, drains it and returns the
// decoded audio. Failures are KindDecode errors.
func (c *Converter) Decode(ctx context.Context, r io.Reader, format string) (*audio.Buffer, error) {
	dec, ok := c.Registry.Get(format)
	if !ok {
		return nil, fail(KindDecode, fmt.Errorf("%w: %q", ErrUnknownInputFormat, format))
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(KindDecode, err)
	}

	var (
		src audio.Source
		err error
	)
	if cd, ok := dec.(ContextDecoder); ok {
		src, err = cd.DecodeContext(ctx, r)
	} else {
		src, err = dec.Decode(r)
	}
	if err != nil {
		return nil, fail(KindDecode, err)
	}
	defer src.Close()

	if err := ctx.Err(); err != nil {
		return nil, fail(KindDecode, err)
	}

	buf, err := audio.Extract(src)
	if err != nil {
		return nil, fail(KindDecode, err)
	}

	return buf, nil
}

func (c *Converter) transcode(ctx context.Context, log *zerolog.Logger, req Request, inFormat, target string) (*Artifact, error) {
	if c.Transcoder == nil {
		return nil, fail(KindUnsupported, fmt.Errorf("%w: %q needs an external engine: %w",
			ErrUnsupportedTarget, target, ErrNoTranscoder))
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(KindSink, err)
	}

	log.Debug().Msg("delegating to transcoder")

	data, err := c.Transcoder.Transcode(ctx, req.Input, inFormat, target)
	if err != nil {
		return nil, fail(KindSink, err)
	}
	if len(data) == 0 {
		return nil, fail(KindSink, errors.New("transcoder produced no output"))
	}

	return &Artifact{
		Name:     OutputName(req.Name, target),
		MIMEType: MIMEType(target),
		Data:     data,
	}, nil
}
