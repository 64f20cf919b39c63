/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsacore

import "github.com/hyperledger/fabric-lib-go/common/metrics"

var (
	privateTransformsOpts = metrics.CounterOpts{
		Namespace: "rsacore",
		Name:      "private_transforms",
		Help:      "The number of private (signing) transforms performed.",
	}
	publicTransformsOpts = metrics.CounterOpts{
		Namespace: "rsacore",
		Name:      "public_transforms",
		Help:      "The number of public (verification) transforms performed.",
	}
	transformFailuresOpts = metrics.CounterOpts{
		Namespace: "rsacore",
		Name:      "transform_failures",
		Help:      "The number of transforms that failed.",
	}
)

// Metrics holds the counters maintained by a Signer.
type Metrics struct {
	PrivateTransforms metrics.Counter
	PublicTransforms  metrics.Counter
	TransformFailures metrics.Counter
}

// NewMetrics creates the transform counters from a metrics provider.
func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		PrivateTransforms: p.NewCounter(privateTransformsOpts),
		PublicTransforms:  p.NewCounter(publicTransformsOpts),
		TransformFailures: p.NewCounter(transformFailuresOpts),
	}
}
