// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrContractViolation marks decoded audio that cannot be encoded:
	// no channels, a non-positive sample rate, ragged channels or a
	// non-finite sample.
	ErrContractViolation = errors.New("decoded audio violates encoder contract")

	ErrNoChannels        = errors.New("audio has no channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrRaggedChannels    = errors.New("channels have different lengths")
	ErrNonFiniteSample   = errors.New("sample is NaN or infinite")
)
