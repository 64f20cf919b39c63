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

// PublicKey holds the public half of an RSA key. It is immutable after
// construction and safe for concurrent use.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// Size returns the modulus length in bytes. Every transform buffer must have
// exactly this length.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// PrivateKey holds a complete RSA private key in CRT form, together with the
// precomputed Montgomery material the private transform needs. It is
// immutable after construction: concurrent transform calls may share one
// PrivateKey freely.
type PrivateKey struct {
	PublicKey

	p, q *big.Int

	// Montgomery multiplication contexts for n, p, q and q².
	mn, mp, mq, mqq *bigmod.Modulus

	// CRT exponents d mod (p-1) and d mod (q-1), fixed-width big-endian.
	dp, dq []byte

	// q⁻¹ mod p and q mod n, both Montgomery-encoded so a single Montgomery
	// multiplication against a plain operand yields the plain product.
	iqmpMont, qmnMont *bigmod.Nat
}

// NewPublicKey validates a modulus and exponent pair against the given
// policy bounds and returns it as a PublicKey.
func NewPublicKey(n, e *big.Int, minBits, maxBits int) (*PublicKey, error) {
	if err := CheckModulusAndExponent(n, e, minBits, maxBits); err != nil {
		return nil, err
	}
	return &PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)}, nil
}

// NewPrivateKey assembles a private key from its raw CRT components and
// precomputes the Montgomery contexts used by the private transform.
//
// The component relationships (p·q = n, q < p, reduced CRT values) are
// checked here, at the trust boundary; the transform itself only re-asserts
// q < p, treating a violation as a corrupted key object rather than a
// recoverable error. Parsing of serialized key formats is up to the caller.
func NewPrivateKey(n, e, p, q, dmp1, dmq1, iqmp *big.Int, minBits, maxBits int) (*PrivateKey, error) {
	if err := CheckModulusAndExponent(n, e, minBits, maxBits); err != nil {
		return nil, err
	}
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return nil, errors.New("rsacore: prime factors must be positive")
	}
	if q.Cmp(p) >= 0 {
		return nil, errors.New("rsacore: prime factors must satisfy q < p")
	}
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, errors.New("rsacore: modulus does not equal the product of the prime factors")
	}
	if dmp1.Sign() <= 0 || dmp1.Cmp(p) >= 0 {
		return nil, errors.New("rsacore: d mod (p-1) is out of range")
	}
	if dmq1.Sign() <= 0 || dmq1.Cmp(q) >= 0 {
		return nil, errors.New("rsacore: d mod (q-1) is out of range")
	}
	if iqmp.Sign() <= 0 || iqmp.Cmp(p) >= 0 {
		return nil, errors.New("rsacore: q⁻¹ mod p is out of range")
	}

	mn, err := bigmod.NewModulusFromBytes(n.Bytes())
	if err != nil {
		return nil, errors.WithMessage(err, "rsacore: invalid modulus")
	}
	mp, err := bigmod.NewModulusFromBytes(p.Bytes())
	if err != nil {
		return nil, errors.WithMessage(err, "rsacore: invalid prime p")
	}
	mq, err := bigmod.NewModulusFromBytes(q.Bytes())
	if err != nil {
		return nil, errors.WithMessage(err, "rsacore: invalid prime q")
	}
	qq := new(big.Int).Mul(q, q)
	mqq, err := bigmod.NewModulusFromBytes(qq.Bytes())
	if err != nil {
		return nil, errors.WithMessage(err, "rsacore: invalid prime q")
	}

	key := &PrivateKey{
		PublicKey: PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)},
		p:         new(big.Int).Set(p),
		q:         new(big.Int).Set(q),
		mn:        mn,
		mp:        mp,
		mq:        mq,
		mqq:       mqq,
		dp:        dmp1.FillBytes(make([]byte, mp.Size())),
		dq:        dmq1.FillBytes(make([]byte, mq.Size())),
	}

	// iqmp < p and q < n, so a single reduction sizes each value for its
	// modulus before Montgomery encoding.
	iqmpNat := bigmod.NewNat().Mod(bigmod.NatFromBytes(iqmp.Bytes()), mp)
	key.iqmpMont = iqmpNat.MontgomeryRepresentation(mp)
	qNat := bigmod.NewNat().Mod(bigmod.NatFromBytes(q.Bytes()), mn)
	key.qmnMont = qNat.MontgomeryRepresentation(mn)

	return key, nil
}
