// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// impl_path.go - Path(n): P_n with edges (i-1)–i in increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colexnet/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path on n ≥ 2 concepts.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
