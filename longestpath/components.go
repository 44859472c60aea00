// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components and per-component proxy values.

package longestpath

import (
	"context"
	"sort"

	"github.com/katalvlaran/colexnet/bfs"
	"github.com/katalvlaran/colexnet/core"
)

// ComponentResult is the proxy value of one connected component.
// Representative is the smallest concept ID in the component.
type ComponentResult struct {
	Representative string `json:"representative" yaml:"representative"`
	Size           int    `json:"size" yaml:"size"`
	LongestPath    int    `json:"longest_path" yaml:"longest_path"`
}

// Components returns the connected components of g. Each component is
// sorted, and components are ordered by descending size, then by their
// first concept.
//
// Complexity: O(V + E) plus sorting.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := bfs.BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}

// PerComponent computes the proxy separately for every connected component,
// in the order returned by Components. The default cutoff is the size of
// each component.
func PerComponent(ctx context.Context, g *core.Graph, opts ...Option) ([]ComponentResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}

	out := make([]ComponentResult, 0, len(comps))
	for _, comp := range comps {
		// balls never leave their component, so searching the parent graph
		// from the component's own concepts is equivalent to an induced view
		lp, err := approximate(ctx, g, comp, o)
		if err != nil {
			return nil, err
		}
		out = append(out, ComponentResult{
			Representative: comp[0],
			Size:           len(comp),
			LongestPath:    lp,
		})
	}

	return out, nil
}
