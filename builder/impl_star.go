// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// impl_star.go - Star(n): center idFn(0) joined to leaves idFn(1..n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/colexnet/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
