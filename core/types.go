// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Pair and EdgeEntry declarations, sentinel errors, constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyConceptID indicates that the provided concept ID is empty.
	ErrEmptyConceptID = errors.New("core: concept ID is empty")

	// ErrUnknownConcept indicates an operation referenced a concept absent from the graph.
	ErrUnknownConcept = errors.New("core: concept not found")

	// ErrUnknownEdge indicates an operation referenced a pair with no edge.
	ErrUnknownEdge = errors.New("core: edge not found")

	// ErrInvalidWeight indicates a negative or non-integral weight.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrLoopNotAllowed indicates an edge from a concept to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Pair is the canonical key of an undirected edge: A < B always holds.
// Build it with NewPair; a literal Pair{B, A} will not be found in the index.
type Pair struct {
	A string
	B string
}

// NewPair returns the canonical (sorted) pair for endpoints u and v.
func NewPair(u, v string) Pair {
	if v < u {
		u, v = v, u
	}

	return Pair{A: u, B: v}
}

// Other returns the endpoint of p that is not id. If id is not an endpoint,
// the empty string is returned.
func (p Pair) Other(id string) string {
	switch id {
	case p.A:
		return p.B
	case p.B:
		return p.A
	default:
		return ""
	}
}

// EdgeEntry couples an edge's canonical pair with its WeightedEdge.
type EdgeEntry struct {
	Pair Pair
	Edge *WeightedEdge
}

// Graph is the undirected concept graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// adjacency is mirrored: adjacency[u][v] and adjacency[v][u] hold the same
// pointer that edges[NewPair(u, v)] holds.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	vertices  map[string]struct{}
	edges     map[Pair]*WeightedEdge
	adjacency map[string]map[string]*WeightedEdge
}

// NewGraph creates an empty concept graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[Pair]*WeightedEdge),
		adjacency: make(map[string]map[string]*WeightedEdge),
	}
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int   `json:"vertex_count" yaml:"vertex_count"`
	EdgeCount     int   `json:"edge_count" yaml:"edge_count"`
	IsolatedCount int   `json:"isolated_count" yaml:"isolated_count"`
	MaxWeight     int64 `json:"max_weight" yaml:"max_weight"`
	TotalWeight   int64 `json:"total_weight" yaml:"total_weight"`
}
