// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Views keep vertex IDs and the parent's *WeightedEdge values (shared, not copied).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "fmt"

// InducedSubgraph returns the closed neighborhood of focus: focus, its
// direct neighbors, and every parent edge among those vertices. Retained
// edges are the parent's WeightedEdge values, so later weight updates on the
// parent are visible through the view.
//
// Returns ErrUnknownConcept if focus is absent; no empty or partial view is
// ever returned.
// Complexity: O(d²) where d = deg(focus).
func InducedSubgraph(g *Graph, focus string) (*Graph, error) {
	if focus == "" {
		return nil, ErrEmptyConceptID
	}
	nbrs, err := g.Neighbors(focus)
	if err != nil {
		return nil, fmt.Errorf("induced subgraph of %q: %w", focus, err)
	}
	keep := make(map[string]bool, len(nbrs)+1)
	keep[focus] = true
	for _, n := range nbrs {
		keep[n] = true
	}

	return Induced(g, keep), nil
}

// InducedSubgraph is the method form of the package-level InducedSubgraph.
func (g *Graph) InducedSubgraph(focus string) (*Graph, error) {
	return InducedSubgraph(g, focus)
}

// Induced returns a new Graph induced by the vertex set keep: every vertex
// v with keep[v] present in g, and every edge of g whose endpoints are both
// kept. Unknown IDs in keep are ignored. Edges are shared with g.
//
// Complexity: O(K·d) over kept vertices K and their degrees d.
func Induced(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id, ok := range keep {
		if !ok {
			continue
		}
		if _, exists := g.vertices[id]; !exists {
			continue
		}
		out.vertices[id] = struct{}{}
		out.adjacency[id] = make(map[string]*WeightedEdge)
	}
	for id := range out.vertices {
		for nbr, e := range g.adjacency[id] {
			if _, kept := out.vertices[nbr]; !kept || nbr == id {
				continue
			}
			out.adjacency[id][nbr] = e
			out.edges[NewPair(id, nbr)] = e
		}
	}

	return out
}
