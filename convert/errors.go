// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrConversionFailed matches every error returned by Convert.
	ErrConversionFailed = errors.New("conversion failed")

	ErrNoInput            = errors.New("no input")
	ErrUnknownInputFormat = errors.New("no decoder for input format")
	ErrUnsupportedTarget  = errors.New("unsupported target format")
	ErrNoTranscoder       = errors.New("no transcoder configured")
)

// Kind says which stage of a conversion failed.
type Kind int

const (
	KindDecode Kind = iota + 1
	KindContract
	KindSink
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindContract:
		return "contract"
	case KindSink:
		return "sink"
	case KindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single failure type of Convert. It matches
// ErrConversionFailed and unwraps to the stage's cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrConversionFailed, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrConversionFailed }

func fail(k Kind, err error) *Error {
	return &Error{Kind: k, Err: err}
}

// KindOf returns the Kind of a conversion error, or 0 if err is not one.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
