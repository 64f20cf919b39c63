/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/hyperledger/fabric-lib-go/common/metrics/disabled"
	"github.com/pkg/errors"
)

// Signer is a convenience layer over the raw transforms for a single private
// key. It owns a pool of blinding contexts so concurrent SignRaw calls never
// share one, keeps the size policy used for the public direction, and
// reports operation counters.
//
// A Signer is safe for concurrent use.
type Signer struct {
	key     *PrivateKey
	minBits int
	maxBits int
	rng     io.Reader
	metrics *Metrics

	blindings sync.Pool
}

// NewSigner creates a Signer for key, with the [minBits, maxBits] modulus
// policy applied to public-direction operations. A nil metrics value
// disables metrics; a nil rng selects crypto/rand.
func NewSigner(key *PrivateKey, minBits, maxBits int, m *Metrics, rng io.Reader) (*Signer, error) {
	if key == nil {
		return nil, errors.New("rsacore: signer requires a private key")
	}
	if m == nil {
		m = NewMetrics(&disabled.Provider{})
	}
	if rng == nil {
		rng = rand.Reader
	}
	s := &Signer{
		key:     key,
		minBits: minBits,
		maxBits: maxBits,
		rng:     rng,
		metrics: m,
	}
	s.blindings.New = func() interface{} { return NewBlinding() }
	return s, nil
}

// SignRaw runs the private transform over a modulus-sized block and returns
// the result as a fresh slice. The input must already carry whatever padding
// structure the caller's signature scheme requires.
func (s *Signer) SignRaw(block []byte) ([]byte, error) {
	buf := make([]byte, len(block))
	copy(buf, block)

	b := s.blindings.Get().(*Blinding)
	err := PrivateTransform(s.key, buf, b, s.rng)
	s.blindings.Put(b)
	if err != nil {
		s.metrics.TransformFailures.Add(1)
		logger.Warnw("private transform failed", "error", err)
		return nil, err
	}
	s.metrics.PrivateTransforms.Add(1)
	logger.Debugw("private transform completed", "bytes", len(buf))
	return buf, nil
}

// RecoverRaw runs the public transform over a modulus-sized signature block
// using the signer's public half, returning the recovered block. The caller
// interprets any padding inside it.
func (s *Signer) RecoverRaw(sig []byte) ([]byte, error) {
	out := make([]byte, s.key.Size())
	err := PublicTransform(s.key.N.Bytes(), s.key.E.Bytes(), sig, out, s.minBits, s.maxBits)
	if err != nil {
		s.metrics.TransformFailures.Add(1)
		logger.Warnw("public transform failed", "error", err)
		return nil, err
	}
	s.metrics.PublicTransforms.Add(1)
	return out, nil
}
