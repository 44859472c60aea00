// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// weight_fn.go - edge weight generators (translation counts).

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of generated edges unless configured.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value (≥ 0).
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [min, max]. Without an rng it
// returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
