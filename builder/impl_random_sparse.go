// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - For 0 < p < 1 an RNG is required (WithSeed/WithRand), else ErrNeedRandSource.
//   - Pairs are tried in (i asc, j asc) order, so a fixed seed is reproducible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colexnet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that keeps each pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if !keep && p > 0 {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
