// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: CSV output of a graph in the format ReadCSV accepts.

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/colexnet/core"
)

// WriteCSV writes one row per edge of g, sorted by pair, under the
// concept_a,concept_b,weight,languages header. Isolated concepts have no
// row and are not represented.
func WriteCSV(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColConceptA, ColConceptB, ColWeight, ColLanguages}); err != nil {
		return fmt.Errorf("ingest: write header: %w", err)
	}
	for _, ent := range g.Edges() {
		row := []string{
			ent.Pair.A,
			ent.Pair.B,
			strconv.FormatInt(ent.Edge.Weight(), 10),
			strings.Join(ent.Edge.Languages(), LanguageSeparator),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ingest: write %s-%s: %w", ent.Pair.A, ent.Pair.B, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
