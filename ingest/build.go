// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Threshold-aware graph construction from Records.

package ingest

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/internal/logger"
)

// Options holds the ingestion thresholds. The zero value keeps everything.
type Options struct {
	// WeightThreshold drops accumulated pairs with a smaller weight.
	WeightThreshold int64
	// MinLanguageCount drops concepts attested in fewer distinct languages,
	// counted over every record that mentions the concept.
	MinLanguageCount int
}

// Stats summarizes one Build.
type Stats struct {
	Records         int `json:"records" yaml:"records"`
	Pairs           int `json:"pairs" yaml:"pairs"`
	Concepts        int `json:"concepts" yaml:"concepts"`
	Edges           int `json:"edges" yaml:"edges"`
	DroppedConcepts int `json:"dropped_concepts" yaml:"dropped_concepts"`
	DroppedEdges    int `json:"dropped_edges" yaml:"dropped_edges"`
}

type accumulated struct {
	weight    int64
	languages []string
	seen      map[string]bool
}

// Build accumulates records into a fresh graph. Records for the same
// unordered pair are merged: weights summed, languages unioned in first-seen
// order. Concepts below MinLanguageCount are dropped with all their edges,
// then pairs below WeightThreshold are dropped. Surviving concepts without
// surviving edges stay as isolated vertices.
//
// Returns ErrMalformedRecord for invalid records; the graph is not built.
func Build(records []Record, opts Options) (*core.Graph, Stats, error) {
	st := Stats{Records: len(records)}
	pairs := make(map[core.Pair]*accumulated)
	conceptLangs := make(map[string]map[string]bool)

	for i, rec := range records {
		if err := validate(rec); err != nil {
			return nil, st, fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, i, err)
		}
		p := core.NewPair(rec.ConceptA, rec.ConceptB)
		acc, ok := pairs[p]
		if !ok {
			acc = &accumulated{seen: make(map[string]bool)}
			pairs[p] = acc
		}
		acc.weight += rec.Weight
		for _, l := range rec.Languages {
			if !acc.seen[l] {
				acc.seen[l] = true
				acc.languages = append(acc.languages, l)
			}
		}
		for _, c := range []string{p.A, p.B} {
			if conceptLangs[c] == nil {
				conceptLangs[c] = make(map[string]bool)
			}
			for _, l := range rec.Languages {
				conceptLangs[c][l] = true
			}
		}
	}
	st.Pairs = len(pairs)

	g := core.NewGraph()
	kept := make(map[string]bool, len(conceptLangs))
	for _, c := range sortedKeys(conceptLangs) {
		if len(conceptLangs[c]) < opts.MinLanguageCount {
			st.DroppedConcepts++
			logger.Debug("dropping concept", "concept", c, "languages", len(conceptLangs[c]))
			continue
		}
		kept[c] = true
		if err := g.AddVertex(c); err != nil {
			return nil, st, err
		}
	}

	order := make([]core.Pair, 0, len(pairs))
	for p := range pairs {
		order = append(order, p)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].A != order[j].A {
			return order[i].A < order[j].A
		}
		return order[i].B < order[j].B
	})
	for _, p := range order {
		acc := pairs[p]
		if !kept[p.A] || !kept[p.B] || acc.weight < opts.WeightThreshold {
			st.DroppedEdges++
			continue
		}
		if _, err := g.AddEdge(p.A, p.B, acc.weight, acc.languages); err != nil {
			return nil, st, fmt.Errorf("ingest: %s-%s: %w", p.A, p.B, err)
		}
	}

	st.Concepts, st.Edges = g.VertexCount(), g.EdgeCount()
	logger.Info("graph built",
		"records", st.Records, "concepts", st.Concepts, "edges", st.Edges,
		"dropped_concepts", st.DroppedConcepts, "dropped_edges", st.DroppedEdges)

	return g, st, nil
}

func sortedKeys(m map[string]map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
