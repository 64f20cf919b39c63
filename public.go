/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/averonix/rsacore/internal/bigmod"
)

// PublicTransform computes the public RSA operation: it interprets in as a
// big-endian integer f, computes f^e mod n, and writes the result to out,
// left-padded with zeroes to the exact modulus byte length. It is the
// operation used to recover a signature block for verification, or to
// encrypt to a public key.
//
// The modulus and exponent arrive as big-endian byte strings and are
// validated against the [minBits, maxBits] modulus size policy before any
// arithmetic. Both in and out must be exactly the modulus byte length. On
// success the caller still owns all interpretation of the recovered block
// (padding checks and so on); on failure out is left unmodified.
//
// All operands are public in this direction, so variable-time
// exponentiation is safe.
func PublicTransform(nBytes, eBytes, in, out []byte, minBits, maxBits int) error {
	n := new(big.Int).SetBytes(nBytes)
	e := new(big.Int).SetBytes(eBytes)

	size := (n.BitLen() + 7) / 8
	if len(out) != size {
		return errors.WithMessagef(ErrOutputBufferSize, "output is %d bytes, modulus is %d bytes", len(out), size)
	}
	if len(in) != size {
		return errors.WithMessagef(ErrInputBufferSize, "input is %d bytes, modulus is %d bytes", len(in), size)
	}

	if err := CheckModulusAndExponent(n, e, minBits, maxBits); err != nil {
		return err
	}

	f := new(big.Int).SetBytes(in)
	if f.CmpAbs(n) >= 0 {
		return errors.WithMessage(ErrDataTooLargeForModulus, "input block exceeds the modulus")
	}

	// An even modulus has no Montgomery context. The validator does not
	// reject it, matching the original interface: the failure surfaces here,
	// as an internal error, exactly when the exponentiation is attempted.
	mn, err := bigmod.NewModulusFromBytes(n.Bytes())
	if err != nil {
		return ErrInternal
	}

	fn := bigmod.NewNat().Mod(bigmod.NatFromBytes(in), mn)
	result := bigmod.NewNat().ExpShortVarTime(fn, e.Uint64(), mn)

	if err := result.FillBytes(out); err != nil {
		return ErrInternal
	}
	return nil
}
