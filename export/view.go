// SPDX-License-Identifier: MIT

// Package export builds the structured node/edge listing of a focus concept's
// neighborhood and hands it to an Exporter. Rendering is out of scope: a View
// carries everything a front end needs (display labels, hover titles, scaled
// edge widths, contributing languages) and nothing about layout.
package export

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/colexnet/core"
)

// DefaultSeparator splits a concept ID into its display name and definition.
const DefaultSeparator = ";;"

// Node is one concept of the listing.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Title string `json:"title" yaml:"title"`
}

// Edge is one weighted link of the listing. Normalized is Weight scaled by
// the heaviest edge of the same View.
type Edge struct {
	From       string  `json:"from" yaml:"from"`
	To         string  `json:"to" yaml:"to"`
	Weight     int64   `json:"weight" yaml:"weight"`
	Normalized float64 `json:"normalized" yaml:"normalized"`
	Languages  string  `json:"languages" yaml:"languages"`
}

// View is the visualization listing of one focus concept.
type View struct {
	Focus     string `json:"focus" yaml:"focus"`
	MaxWeight int64  `json:"max_weight" yaml:"max_weight"`
	Nodes     []Node `json:"nodes" yaml:"nodes"`
	Edges     []Edge `json:"edges" yaml:"edges"`
}

// Label returns the text of id before the first separator, or id itself.
func Label(id, sep string) string {
	if sep == "" {
		return id
	}
	if i := strings.Index(id, sep); i >= 0 {
		return id[:i]
	}
	return id
}

// Title returns id with every separator replaced by a newline.
func Title(id, sep string) string {
	if sep == "" {
		return id
	}
	return strings.ReplaceAll(id, sep, "\n")
}

// LanguageLegend lists the languages of e for display, separators inside a
// language entry rendered as " - ".
func LanguageLegend(e *core.WeightedEdge, sep string) []string {
	langs := e.Languages()
	if sep == "" {
		return langs
	}
	for i, l := range langs {
		langs[i] = strings.ReplaceAll(l, sep, " - ")
	}
	return langs
}

// BuildView extracts the induced subgraph of focus and lists its concepts
// and edges in sorted order. A subgraph whose heaviest edge is 0 (or that has
// no edges) gets Normalized 0 everywhere.
//
// Returns core.ErrUnknownConcept (wrapped) if focus is absent.
func BuildView(g *core.Graph, focus, sep string) (*View, error) {
	sub, err := core.InducedSubgraph(g, focus)
	if err != nil {
		return nil, fmt.Errorf("export: view of %q: %w", focus, err)
	}

	ids := sub.Vertices()
	entries := sub.Edges()
	max := core.MaxWeight(sub.WeightedEdges())

	v := &View{
		Focus:     focus,
		MaxWeight: max,
		Nodes:     make([]Node, 0, len(ids)),
		Edges:     make([]Edge, 0, len(entries)),
	}
	for _, id := range ids {
		v.Nodes = append(v.Nodes, Node{ID: id, Label: Label(id, sep), Title: Title(id, sep)})
	}
	for _, ent := range entries {
		var norm float64
		if max > 0 {
			norm = ent.Edge.Normalized(max)
		}
		v.Edges = append(v.Edges, Edge{
			From:       ent.Pair.A,
			To:         ent.Pair.B,
			Weight:     ent.Edge.Weight(),
			Normalized: norm,
			Languages:  strings.Join(ent.Edge.Languages(), ", "),
		})
	}

	return v, nil
}
