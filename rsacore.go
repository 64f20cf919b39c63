/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rsacore implements the raw RSA transform primitives: validation of
// a modulus/exponent pair against a size policy, the public fixed-base
// modular exponentiation, and the private CRT exponentiation with blinding
// and a fault-attack verification of the result.
//
// The package works on fixed-length big-endian byte blocks whose length is
// exactly the modulus byte length. Padding schemes, key generation, and key
// serialization are out of scope; callers compose those around the
// transforms.
package rsacore

import "github.com/hyperledger/fabric-lib-go/common/flogging"

var logger = flogging.MustGetLogger("rsacore")
