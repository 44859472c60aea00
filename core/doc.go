// SPDX-License-Identifier: MIT

// Package core provides the in-memory concept graph: an undirected, simple,
// weighted graph whose edges carry a translation count and the set of
// languages backing that count.
//
// The Graph G = (V,E) is organized as:
//
//   - A vertex catalog of opaque concept IDs (typically "name;;definition").
//   - A mirrored adjacency map adjacency[u][v] = *WeightedEdge for O(1)
//     neighbor queries in both directions.
//   - An edge index edges[Pair] = *WeightedEdge keyed by the canonical
//     (sorted) endpoint pair, so lookups never depend on argument order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); mutators always lock muVert before muEdgeAdj.
//
// Every edge in the topology has exactly one WeightedEdge in the index and
// vice versa. Views produced by InducedSubgraph and Induced share the
// parent's *WeightedEdge values by identity: a weight change made through
// the parent is observed through every previously extracted view.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                                    // O(1)
//	HasVertex(id string) bool                                     // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, weight int64, langs []string) (*WeightedEdge, error) // O(1)
//	EdgeFor(u, v string) (*WeightedEdge, error)                  // O(1)
//	HasEdge(u, v string) bool                                     // O(1)
//
//	// Queries
//	Neighbors(id string) ([]string, error)                        // O(d log d)
//	InducedSubgraph(focus string) (*Graph, error)                 // O(d²)
//	Induced(keep map[string]bool) *Graph                          // O(V+E)
//	Edges() []EdgeEntry                                           // O(E log E)
//	Vertices() []string                                           // O(V log V)
//
// Errors:
//
//	ErrEmptyConceptID  - concept ID is the empty string.
//	ErrUnknownConcept  - requested concept does not exist.
//	ErrUnknownEdge     - requested pair has no edge.
//	ErrInvalidWeight   - weight is negative or not an integer.
//	ErrLoopNotAllowed  - both endpoints are the same concept.
package core
