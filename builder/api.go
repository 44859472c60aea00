// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Never panic at runtime; constructors return sentinel errors wrapped with context.

// Package builder assembles deterministic concept-graph topologies (paths,
// cycles, stars, complete graphs, grids, random sparse graphs) for fixtures,
// demos and benchmarks of the analysis packages.
package builder

import (
	"fmt"

	"github.com/katalvlaran/colexnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return
// sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Constructor errors are
// wrapped with "BuildGraph: %w"; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// connect adds the edge between the i-th and j-th IDs with a weight and
// language set drawn from cfg.
func connect(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w, cfg.languages); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
