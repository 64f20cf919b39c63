/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"crypto/rand"
	gorsa "crypto/rsa"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testMinBits = 1024
	testMaxBits = 8192
)

// newTestKey generates a fresh RSA key and reassembles it through
// NewPrivateKey, ordering the primes so that q < p and deriving the CRT
// components the constructor expects.
func newTestKey(t *testing.T, bits int) *PrivateKey {
	t.Helper()

	k, err := gorsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	p, q := k.Primes[0], k.Primes[1]
	if p.Cmp(q) < 0 {
		p, q = q, p
	}
	one := big.NewInt(1)
	dmp1 := new(big.Int).Mod(k.D, new(big.Int).Sub(p, one))
	dmq1 := new(big.Int).Mod(k.D, new(big.Int).Sub(q, one))
	iqmp := new(big.Int).ModInverse(q, p)

	key, err := NewPrivateKey(k.N, big.NewInt(int64(k.E)), p, q, dmp1, dmq1, iqmp, testMinBits, testMaxBits)
	require.NoError(t, err)
	return key
}

// randomBlock returns a random block strictly below the key's modulus, sized
// to the modulus byte length.
func randomBlock(t *testing.T, key *PrivateKey) []byte {
	t.Helper()
	v, err := rand.Int(rand.Reader, key.N)
	require.NoError(t, err)
	return v.FillBytes(make([]byte, key.Size()))
}
