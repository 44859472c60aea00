// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice with "r,c" IDs.
// The ID scheme is fixed; cfg.idFn is not consulted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colexnet/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		link := func(u, v string) error {
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(u, v, w, cfg.languages); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%d): %w", methodGrid, u, v, w, err)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
