// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF input with github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit integer PCM are accepted and normalized to
// [-1, 1). The go-audio decoder needs to seek, so a plain io.Reader is
// buffered in memory first.
package aiff
