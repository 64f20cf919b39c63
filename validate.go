/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// maxModulusBits is an absolute ceiling on the modulus size, independent
	// of the caller's policy. It bounds the cost of an exponentiation an
	// attacker can trigger with an oversized key.
	maxModulusBits = 16 * 1024

	// maxExponentBits bounds the public exponent to 33 bits, following the
	// recommendations in
	// https://www.imperialviolet.org/2012/03/16/rsae.html and
	// https://www.imperialviolet.org/2012/03/17/rsados.html. Windows
	// CryptoAPI doesn't support values larger than 32 bits, so it is
	// unlikely that larger exponents are in legitimate use.
	maxExponentBits = 33
)

// CheckModulusAndExponent validates a public modulus and exponent pair
// against the caller's [minBits, maxBits] policy for the modulus size.
//
// n and e are public values, so none of these checks needs to run in
// constant time.
func CheckModulusAndExponent(n, e *big.Int, minBits, maxBits int) error {
	if n.Sign() <= 0 {
		return errors.WithMessage(ErrKeySizeTooSmall, "modulus must be a positive integer")
	}
	if e.Sign() <= 0 {
		return errors.WithMessage(ErrBadExponent, "exponent must be a positive integer")
	}

	rsaBits := n.BitLen()
	if rsaBits < minBits {
		return errors.WithMessagef(ErrKeySizeTooSmall, "modulus is %d bits, policy minimum is %d", rsaBits, minBits)
	}
	if rsaBits > maxModulusBits || rsaBits > maxBits {
		return errors.WithMessagef(ErrModulusTooLarge, "modulus is %d bits", rsaBits)
	}

	eBits := e.BitLen()
	if eBits < 2 {
		return errors.WithMessage(ErrBadExponent, "exponent is too small")
	}
	if eBits > maxExponentBits {
		return errors.WithMessagef(ErrBadExponent, "exponent is %d bits, maximum is %d", eBits, maxExponentBits)
	}
	if e.Bit(0) == 0 {
		return errors.WithMessage(ErrBadExponent, "exponent must be odd")
	}

	// Verify n > e. Comparing rsaBits to maxExponentBits is a shortcut for
	// comparing n and e directly: any usable modulus is far larger than any
	// permitted exponent.
	if rsaBits <= maxExponentBits {
		return errors.WithMessagef(ErrKeySizeTooSmall, "modulus is %d bits", rsaBits)
	}
	// The shortcut above already guarantees the full comparison, but a key
	// for which it does not hold is corrupted, so the numeric check is kept
	// as a non-recoverable invariant.
	if n.CmpAbs(e) <= 0 {
		panic("rsacore: invariant violation: modulus not larger than exponent")
	}

	return nil
}
