/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/averonix/rsacore/internal/bigmod"
)

// crtFaultHook, when set, is invoked with the two CRT half-results and their
// moduli before recombination. Tests use it to corrupt an intermediate value
// and check that the fault verification refuses to release the result.
var crtFaultHook func(mp, mq *bigmod.Nat, p, q *bigmod.Modulus)

// PrivateTransform interprets inout as a big-endian integer, raises it to
// the private exponent modulo n, and writes the result back to inout,
// left-padded with zeroes to the exact modulus byte length.
//
// The computation blinds the input with the supplied blinding context,
// exponentiates with the CRT using constant-time arithmetic for everything
// touching the secret values, verifies the result against the public
// exponent before it is released, and only then unblinds. On any failure
// inout is left unmodified.
//
// The blinding context must be exclusively owned by this call for its
// duration. rng supplies the randomness for blinding-factor generation.
func PrivateTransform(key *PrivateKey, inout []byte, blinding *Blinding, rng io.Reader) error {
	size := key.Size()
	if len(inout) != size {
		return errors.WithMessagef(ErrInputBufferSize, "buffer is %d bytes, modulus is %d bytes", len(inout), size)
	}

	base := new(big.Int).SetBytes(inout)
	if base.Cmp(key.N) >= 0 {
		// Usually the padding layer guarantees this; the check is defense in
		// depth against callers that don't.
		return errors.WithMessage(ErrDataTooLargeForModulus, "input block exceeds the modulus")
	}

	blinded, err := blinding.Convert(base, &key.PublicKey, rng)
	if err != nil {
		return ErrInternal
	}

	// Extra reductions would be required if p < q, and p == q is just plain
	// wrong. NewPrivateKey enforces this, so a violation here means the key
	// object is corrupted.
	if key.q.Cmp(key.p) >= 0 {
		panic("rsacore: invariant violation: private key with q >= p")
	}

	blindedBytes := blinded.FillBytes(make([]byte, size))
	baseNat := bigmod.NatFromBytes(blindedBytes)

	// mp := base^dmp1 mod p.
	//
	// p·q == n and p > q imply p < n < p², so the base is reduced mod p in
	// one step.
	t := bigmod.NewNat().Mod(baseNat, key.mp)
	mp := bigmod.NewNat().Exp(t, key.dp, key.mp)

	// mq := base^dmq1 mod q.
	//
	// p·q == n and p > q imply q < q² < n < q³, so the base is reduced mod
	// q² first and only then mod q; a single direct reduction step is not
	// valid from the unreduced base.
	t.Mod(baseNat, key.mqq)
	t2 := bigmod.NewNat().Mod(t, key.mq)
	mq := bigmod.NewNat().Exp(t2, key.dq, key.mq)

	if crtFaultHook != nil {
		crtFaultHook(mp, mq, key.mp, key.mq)
	}

	// Combine the halves with Garner's algorithm.
	//
	// 0 <= mq < q < p and 0 <= mp < p imply -q < mp - mq < p, so the
	// subtraction needs only ModSub's single conditional add.
	//
	// In each Montgomery multiplication one operand is Montgomery-encoded
	// and the other is plain, so the R factors cancel and the results stay
	// plain. The last multiplication needs no reduction mod n at all, since
	// tmp < p and p·q == n imply tmp·q < n; Montgomery multiplication is
	// used purely because it is the fast path the engine already has.
	tmp := mp.ModSub(mq.Clone().ExpandFor(key.mp), key.mp)
	tmp = bigmod.NewNat().MontgomeryMul(tmp, key.iqmpMont, key.mp)
	result := bigmod.NewNat().MontgomeryMul(tmp.ExpandFor(key.mn), key.qmnMont, key.mn)
	result.ModAdd(mq.ExpandFor(key.mn), key.mn)

	// Verify the result before it leaves the CRT domain, to protect against
	// fault attacks as described in "On the Importance of Checking
	// Cryptographic Protocols for Faults" (Boneh, DeMillo, Lipton, 1997).
	// Some implementations do this only when the CRT is used; section 6 of
	// the paper describes an attack that works without the CRT, so it runs
	// unconditionally here. The check is cheap because e is small.
	vrfy := bigmod.NewNat().ExpShortVarTime(result, key.E.Uint64(), key.mn)
	if !vrfy.Equal(bigmod.NewNat().Mod(baseNat, key.mn)) {
		return ErrInternal
	}

	resultBytes := make([]byte, size)
	if err := result.FillBytes(resultBytes); err != nil {
		return ErrInternal
	}
	unblinded := blinding.Invert(new(big.Int).SetBytes(resultBytes), &key.PublicKey)

	if unblinded.BitLen() > size*8 {
		return ErrInternal
	}
	unblinded.FillBytes(inout)
	return nil
}
