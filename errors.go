/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import "github.com/pkg/errors"

// Every failure of a transform or of key validation is reported as exactly
// one of the errors below, possibly wrapped with additional context. Callers
// should test with errors.Is.
var (
	// ErrKeySizeTooSmall is returned when the modulus is below the caller's
	// policy minimum, or not strictly larger than the maximum permitted
	// public exponent.
	ErrKeySizeTooSmall = errors.New("rsacore: modulus size below policy minimum")

	// ErrModulusTooLarge is returned when the modulus is above the caller's
	// policy maximum or the absolute 16384-bit ceiling.
	ErrModulusTooLarge = errors.New("rsacore: modulus size above policy maximum")

	// ErrBadExponent is returned when the public exponent is even or its bit
	// length is outside [2, 33].
	ErrBadExponent = errors.New("rsacore: unsupported public exponent")

	// ErrOutputBufferSize is returned when the output buffer length does not
	// equal the modulus byte length.
	ErrOutputBufferSize = errors.New("rsacore: output buffer length does not match modulus size")

	// ErrInputBufferSize is returned when the input buffer length does not
	// equal the modulus byte length.
	ErrInputBufferSize = errors.New("rsacore: input buffer length does not match modulus size")

	// ErrDataTooLargeForModulus is returned when the integer value of an
	// input block is not strictly less than the modulus. The block is never
	// silently reduced.
	ErrDataTooLargeForModulus = errors.New("rsacore: input value is not less than the modulus")

	// ErrInternal is returned for any failure inside the arithmetic engine,
	// the blinding context, the randomness source, or the post-exponentiation
	// verification. The individual causes are deliberately not
	// distinguishable through the error value, so that a caller relaying the
	// error cannot be used as an oracle for which internal step failed.
	ErrInternal = errors.New("rsacore: internal error")
)
