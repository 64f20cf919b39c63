/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkg/errors"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestBlindingFactorPair(t *testing.T) {
	t.Parallel()

	key := newTestKey(t, 1024)
	b := NewBlinding()

	x, err := rand.Int(rand.Reader, key.N)
	require.NoError(t, err)
	_, err = b.Convert(x, &key.PublicKey, rand.Reader)
	require.NoError(t, err)

	// a = r^e and aInv = r⁻¹, so a·aInv^e ≡ 1 (mod n).
	check := new(big.Int).Exp(b.aInv, key.E, key.N)
	check.Mul(check, b.a).Mod(check, key.N)
	assert.Equal(t, big.NewInt(1), check)
}

func TestBlindingCancelsThroughExponentiation(t *testing.T) {
	t.Parallel()

	key := newTestKey(t, 1024)
	b := NewBlinding()

	pMinus1 := new(big.Int).Sub(key.p, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(key.q, big.NewInt(1))
	phi := new(big.Int).Mul(pMinus1, qMinus1)
	d := new(big.Int).ModInverse(key.E, phi)
	require.NotNil(t, d)

	x, err := rand.Int(rand.Reader, key.N)
	require.NoError(t, err)

	// (x·a)^d · aInv ≡ x^d (mod n): blinding is transparent to the secret
	// exponentiation it wraps.
	blinded, err := b.Convert(x, &key.PublicKey, rand.Reader)
	require.NoError(t, err)
	got := b.Invert(new(big.Int).Exp(blinded, d, key.N), &key.PublicKey)
	want := new(big.Int).Exp(x, d, key.N)
	assert.Equal(t, want, got)
}

func TestBlindingSquaringUpdate(t *testing.T) {
	t.Parallel()

	key := newTestKey(t, 1024)
	b := NewBlinding()
	x := big.NewInt(7)

	_, err := b.Convert(x, &key.PublicKey, rand.Reader)
	require.NoError(t, err)
	a1 := new(big.Int).Set(b.a)
	aInv1 := new(big.Int).Set(b.aInv)

	_, err = b.Convert(x, &key.PublicKey, rand.Reader)
	require.NoError(t, err)

	wantA := new(big.Int).Mul(a1, a1)
	wantA.Mod(wantA, key.N)
	wantAInv := new(big.Int).Mul(aInv1, aInv1)
	wantAInv.Mod(wantAInv, key.N)
	assert.Equal(t, wantA, b.a)
	assert.Equal(t, wantAInv, b.aInv)
}

func TestBlindingRenewal(t *testing.T) {
	t.Parallel()

	key := newTestKey(t, 1024)
	b := NewBlinding()
	x := big.NewInt(7)

	for i := 0; i < blindingRenewal; i++ {
		_, err := b.Convert(x, &key.PublicKey, rand.Reader)
		require.NoError(t, err)
	}
	require.Equal(t, blindingRenewal, b.uses)
	squared := new(big.Int).Mul(b.a, b.a)
	squared.Mod(squared, key.N)

	// The next use must generate a fresh factor instead of squaring again.
	_, err := b.Convert(x, &key.PublicKey, rand.Reader)
	require.NoError(t, err)
	assert.Equal(t, 1, b.uses)
	assert.NotEqual(t, squared, b.a)
}

func TestBlindingDistinctFactors(t *testing.T) {
	t.Parallel()

	key := newTestKey(t, 1024)
	b := NewBlinding()
	x := big.NewInt(7)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		blinded, err := b.Convert(x, &key.PublicKey, rand.Reader)
		require.NoError(t, err)
		s := blinded.String()
		assert.False(t, seen[s], "blinded value repeated on use %d", i)
		seen[s] = true
	}
}

func TestBlindingRNGFailure(t *testing.T) {
	t.Parallel()

	key := newTestKey(t, 1024)
	b := NewBlinding()

	_, err := b.Convert(big.NewInt(7), &key.PublicKey, failingReader{})
	require.Error(t, err)

	// The private transform maps the failure to its uniform internal error.
	block := make([]byte, key.Size())
	block[len(block)-1] = 7
	err = PrivateTransform(key, block, NewBlinding(), failingReader{})
	assert.True(t, errors.Is(err, ErrInternal), "got %v", err)
}
