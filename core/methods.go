// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle, catalog listings and snapshots.
// Concurrency:
//   - Mutators lock muVert then muEdgeAdj; readers take read locks in the same order.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts the concept id. Existing concepts are left untouched.
// Returns ErrEmptyConceptID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyConceptID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// HasVertex reports whether the concept id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts or replaces the edge {u, v}. Missing endpoints are added.
// Inserting an existing pair replaces its WeightedEdge; weights are not
// merged, so accumulation is the caller's read-modify-write (EdgeFor +
// AddWeight). All validation happens before any mutation.
//
// Returns ErrEmptyConceptID, ErrLoopNotAllowed or ErrInvalidWeight.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight int64, languages []string) (*WeightedEdge, error) {
	if u == "" || v == "" {
		return nil, ErrEmptyConceptID
	}
	if u == v {
		return nil, fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	e, err := NewWeightedEdge(weight, languages)
	if err != nil {
		return nil, err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.edges[NewPair(u, v)] = e
	g.adjacency[u][v] = e
	g.adjacency[v][u] = e

	return e, nil
}

// EdgeFor returns the WeightedEdge of {u, v} regardless of argument order.
// Returns ErrUnknownEdge if the pair has no entry.
// Complexity: O(1).
func (g *Graph) EdgeFor(u, v string) (*WeightedEdge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[NewPair(u, v)]
	if !ok {
		return nil, fmt.Errorf("%w: {%q, %q}", ErrUnknownEdge, u, v)
	}

	return e, nil
}

// HasEdge reports whether {u, v} is an edge.
func (g *Graph) HasEdge(u, v string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[NewPair(u, v)]

	return ok
}

// Vertices returns all concept IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge with its canonical pair, sorted by (A, B).
// The WeightedEdge pointers are the live catalog values.
// Complexity: O(E·logE)
func (g *Graph) Edges() []EdgeEntry {
	g.muEdgeAdj.RLock()
	out := make([]EdgeEntry, 0, len(g.edges))
	for p, e := range g.edges {
		out = append(out, EdgeEntry{Pair: p, Edge: e})
	}
	g.muEdgeAdj.RUnlock()
	sortEntries(out)

	return out
}

// WeightedEdges returns the edge values only, in the order of Edges.
func (g *Graph) WeightedEdges() []*WeightedEdge {
	entries := g.Edges()
	out := make([]*WeightedEdge, len(entries))
	for i, ent := range entries {
		out[i] = ent.Edge
	}

	return out
}

// VertexCount returns the number of concepts. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Stats produces a snapshot of catalog sizes and weight totals.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			st.IsolatedCount++
		}
	}
	var w int64
	for _, e := range g.edges {
		w = e.Weight()
		st.TotalWeight += w
		if w > st.MaxWeight {
			st.MaxWeight = w
		}
	}

	return st
}

// addVertexLocked requires muVert held for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]*WeightedEdge)
	}
	g.muEdgeAdj.Unlock()
}

func sortEntries(es []EdgeEntry) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Pair.A != es[j].Pair.A {
			return es[i].Pair.A < es[j].Pair.A
		}

		return es[i].Pair.B < es[j].Pair.B
	})
}
