// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IncidentEdges, Degree).
// Determinism:
//   - Neighbors() returns unique IDs sorted lex asc.
//   - IncidentEdges() is sorted by the neighbor ID.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the concepts adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyConceptID: if id == "".
//   - ErrUnknownConcept: if the concept does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyConceptID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConcept, id)
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// NeighborIDs is an alias of Neighbors kept for traversal code that reads
// like the rest of the graph tooling.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.Neighbors(id)
}

// IncidentEdges returns the edges touching id, ordered by neighbor ID.
// Errors as in Neighbors.
func (g *Graph) IncidentEdges(id string) ([]EdgeEntry, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]EdgeEntry, 0, len(nbrs))
	for _, nbr := range nbrs {
		// neighbor may have vanished between the two snapshots only if a
		// caller mutates during analysis, which is not supported
		if e, ok := g.adjacency[id][nbr]; ok {
			out = append(out, EdgeEntry{Pair: NewPair(id, nbr), Edge: e})
		}
	}

	return out, nil
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyConceptID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConcept, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
