/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// blindingRenewal is how many transforms a blinding factor is used for
// before a fresh one is generated. Between renewals the factor pair is
// squared on every use, so no two transforms see the same factor.
const blindingRenewal = 32

// maxBlindingAttempts bounds the search for an invertible blinding factor.
// A random value below n is non-invertible only if it shares a factor with
// n, which for a well-formed modulus is about as likely as guessing a prime
// factor, so more than a couple of iterations indicates a broken RNG.
const maxBlindingAttempts = 8

// Blinding holds a multiplicative blinding factor pair for one modulus:
// a = r^e mod n, applied to the input before the secret exponentiation, and
// aInv = r⁻¹ mod n, which removes the blinding from the result. It makes the
// timing of the private transform statistically independent of the input.
//
// A Blinding must not be used by two transform calls concurrently. It may be
// reused sequentially; see Pool for a checkout helper.
type Blinding struct {
	a    *big.Int
	aInv *big.Int
	uses int
}

// NewBlinding returns an empty blinding context. The factor pair is
// generated lazily on first use, from the RNG supplied to Convert.
func NewBlinding() *Blinding {
	return &Blinding{}
}

// Convert returns x multiplied by the blinding factor, modulo the key's
// modulus, refreshing or updating the factor pair first.
func (b *Blinding) Convert(x *big.Int, key *PublicKey, rng io.Reader) (*big.Int, error) {
	if b.a == nil || b.uses >= blindingRenewal {
		if err := b.generate(key, rng); err != nil {
			return nil, err
		}
	} else {
		// Square both factors: (r²)^e and r⁻² remain a valid pair, and the
		// update is much cheaper than generating a fresh factor.
		b.a.Mul(b.a, b.a).Mod(b.a, key.N)
		b.aInv.Mul(b.aInv, b.aInv).Mod(b.aInv, key.N)
	}
	b.uses++

	blinded := new(big.Int).Mul(x, b.a)
	return blinded.Mod(blinded, key.N), nil
}

// Invert removes the blinding factor applied by the preceding Convert call
// from a result of the secret exponentiation.
func (b *Blinding) Invert(x *big.Int, key *PublicKey) *big.Int {
	out := new(big.Int).Mul(x, b.aInv)
	return out.Mod(out, key.N)
}

func (b *Blinding) generate(key *PublicKey, rng io.Reader) error {
	for i := 0; i < maxBlindingAttempts; i++ {
		r, err := rand.Int(rng, key.N)
		if err != nil {
			return errors.WithMessage(err, "rsacore: blinding factor generation failed")
		}
		if r.Sign() == 0 {
			continue
		}
		inv := new(big.Int).ModInverse(r, key.N)
		if inv == nil {
			continue
		}
		b.aInv = inv
		b.a = r.Exp(r, key.E, key.N)
		b.uses = 0
		return nil
	}
	return errors.New("rsacore: could not generate an invertible blinding factor")
}
