/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed 2048-bit keypair with e = 65537 and a PKCS#1 v1.5 SHA-256
// signature block over it, for catching regressions that the random-key
// tests cannot: the expected outputs are pinned, not recomputed.
const (
	vecP    = "edd6c19c06abb523cd67bef220ee97e4a11cf9d3d310b0e4e15e2a94e6261e0bd1c96a9c754047edd3e79ec3c6aa7fa664de172b8d7f877c0738fcd1148559d238edeb20952a098af27e6ea23d2b175f84e52a32f164488f7ed75c24a21af6e83b2aefb6fd92045d5100087ff5ad9309d671cd147471a0dc440e38f10ac3b3f5"
	vecQ    = "c2de6a19215f6bbda9fca11bbf10f0474f218be57d8907231dd429043268b62a3d08fec70201166ca46349d54c2b455f35577fbb578a008739380ececac1737f20bc573011b8d39bb699575c25de19481941f5cb366ac53698c42bf51dabc9480e0d11cee2d4f47ddac6126b249e81c0731c7c12e010190dd0fcd83f12d43dd3"
	vecN    = "b50b61866780c0ebe4a380280b47ff0dcc3d9113463c51d9207167f04f99831bafb9f7a655d5a6fdb8c28cd61a829b8fe7b153461ddeeb0d222154573b5440aeab6ac26962c6daf76ea7e5add0a8608375666f3dacb35aba44d473e34d9c59247ea99b051a0fbc30cdb002aec12fa5afb11e251fbe95d6fa7f4bcf5f590468c8ca4686f4bf2f664e4f4b723795d4042e7eb5fcd0cc6705f4f94348fdb4e853f63583341de6c656bb732e95c49c360a28e2d94694c3422c3ebabcd2e45a1f4850ca17a92830f631f4549094a7ea92edb6fac6825470e72090f87b2f2a3b585e40c3cf970000bd1b80441eeba5c95b73679616fa1ead917d3f90d50c3fc212b3ef"
	vecDP   = "e795159ddbecf38ab1e593ca65808c8bc4c8d705875d9830b4b4a117ace56e9a29a24a599fdd806c35ca311005f05c2ce3c8509d4ac0e366440e1c35651ad733d7d4e9fe26dff0bcc7938e1c111d553bdfc5d80a147b861f9aed0dbe69cd819eec85c935cfbf8eda62157b314541c68b6cb010751b50ccc5ccca606d6c02d4c5"
	vecDQ   = "21a8b93ace00e563455155a2ad4607bac97849e9c1dd41565778a5fd0b97fa9f211bc4a62b3a74dd1f27e740e87f30e4591a5bfdc809163e452be1a2e672b3b869b71e7837176db59fbcacd245d82f15bd071fa59228af17d71b4b5c735b90d0d95c788efbaf3cebe03606486b72d586a05b7332ef70d863028e29ebfb1c9df1"
	vecQInv = "5d35279ba220108403d059983d38f8b07bab7b1213f7985ac5953b61afe4ec19722a366b489655ea6ed6adc8df1ce31e02cbb88f27c84a8b2cb266d2c3900f4604afc06d63cbf0b46f4f674f73b03f098b33c6e2fb8951bbc0e3c66fa2b40e4de0c74cb8e47d023cc18773e33bddab4f60b71df987ed819f8c03044ef19211c8"

	// EMSA-PKCS1-v1_5 encoding of SHA-256("rsacore test vector: raw
	// transform round trip") and its signature under the key above.
	vecEM  = "0001ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff003031300d0609608648016503040201050004203f33a2e112b8b652d1832a411ba2ea01cfa52ae5317d2e3e165201f59c3a5510"
	vecSig = "835d95701e453879640ea0059cb647da466baba493c650884709580eba16b9a5ad8552e2f0d2ef666ea7abb2647f0b9b23d3c2b1c0722b7a04774bb2b13066206f59dd3e90057d9d0a5e3adbc42a857993a5a4d1834757ce810a4affc526628bef649f9515574206fd154c238392a6398ec29540958023416f48c0cf64d0cb7df2836852d58ec5c257ff46d98d0c5b44d7a03ea51bff9c86e100ce9521ebdd1fda1423e41a4696e2217480288a56248cb1408b38f208d9485eed94ee378271869bc1c148c826a31345976788673e5bdc2f552ab64bae986e7dd804f8ef3619ef7374415cc73ad1a255c6319a3c182c8550ce3879cbcae0de1d70f1053ae13d2d"
)

func vectorInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return v
}

func vectorBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func vectorKey(t *testing.T) *PrivateKey {
	t.Helper()
	key, err := NewPrivateKey(
		vectorInt(t, vecN), big.NewInt(65537),
		vectorInt(t, vecP), vectorInt(t, vecQ),
		vectorInt(t, vecDP), vectorInt(t, vecDQ), vectorInt(t, vecQInv),
		testMinBits, testMaxBits,
	)
	require.NoError(t, err)
	return key
}

func TestVectorBlocksAreModulusSized(t *testing.T) {
	t.Parallel()

	// Both pinned blocks must be exactly the modulus byte length, or every
	// transform over them fails on the buffer contract alone.
	key := vectorKey(t)
	require.Len(t, vectorBytes(t, vecEM), key.Size())
	require.Len(t, vectorBytes(t, vecSig), key.Size())
}

func TestVectorPrivateTransform(t *testing.T) {
	t.Parallel()

	key := vectorKey(t)
	block, err := signBlock(t, key, vectorBytes(t, vecEM))
	require.NoError(t, err)
	assert.Equal(t, vectorBytes(t, vecSig), block)
}

func TestVectorPublicTransform(t *testing.T) {
	t.Parallel()

	key := vectorKey(t)
	out := make([]byte, key.Size())
	err := PublicTransform(key.N.Bytes(), key.E.Bytes(), vectorBytes(t, vecSig), out, testMinBits, testMaxBits)
	require.NoError(t, err)
	assert.Equal(t, vectorBytes(t, vecEM), out)
}

func TestVectorSignerRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner(vectorKey(t), testMinBits, testMaxBits, nil, nil)
	require.NoError(t, err)

	sig, err := signer.SignRaw(vectorBytes(t, vecEM))
	require.NoError(t, err)
	assert.Equal(t, vectorBytes(t, vecSig), sig)

	recovered, err := signer.RecoverRaw(sig)
	require.NoError(t, err)
	assert.Equal(t, vectorBytes(t, vecEM), recovered)
}
