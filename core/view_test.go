package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/core"
)

func TestInducedSubgraph_Scenario(t *testing.T) {
	g := scenario(t)
	sub, err := g.InducedSubgraph("B")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	require.Equal(t, 2, sub.EdgeCount())

	max := core.MaxWeight(sub.WeightedEdges())
	assert.Equal(t, int64(5), max)

	ab, err := sub.EdgeFor("A", "B")
	require.NoError(t, err)
	bc, err := sub.EdgeFor("B", "C")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ab.Normalized(max), 1e-12)
	assert.InDelta(t, 0.4, bc.Normalized(max), 1e-12)
}

func TestInducedSubgraph_ClosedNeighborhood(t *testing.T) {
	// star around F plus a triangle leg and a far node
	g := core.NewGraph()
	mustEdge(t, g, "F", "N1", 1)
	mustEdge(t, g, "F", "N2", 2)
	mustEdge(t, g, "F", "N3", 3)
	mustEdge(t, g, "N1", "N2", 4) // edge among neighbors must be kept
	mustEdge(t, g, "N3", "FAR", 5)
	mustEdge(t, g, "FAR", "FARTHER", 6)

	sub, err := core.InducedSubgraph(g, "F")
	require.NoError(t, err)

	nbrs, err := g.Neighbors("F")
	require.NoError(t, err)
	assert.ElementsMatch(t, append([]string{"F"}, nbrs...), sub.Vertices())
	assert.Equal(t, 4, sub.EdgeCount())
	assert.False(t, sub.HasVertex("FAR"))
	assert.True(t, sub.HasEdge("N1", "N2"))

	// every retained edge is the parent's edge
	for _, ent := range sub.Edges() {
		parent, err := g.EdgeFor(ent.Pair.A, ent.Pair.B)
		require.NoError(t, err)
		assert.Same(t, parent, ent.Edge)
	}
}

func TestInducedSubgraph_UnknownConcept(t *testing.T) {
	g := scenario(t)
	sub, err := g.InducedSubgraph("typo")
	require.ErrorIs(t, err, core.ErrUnknownConcept)
	assert.Nil(t, sub)
}

func TestInducedSubgraph_SharesEdges(t *testing.T) {
	g := scenario(t)
	sub, err := g.InducedSubgraph("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, sub.Vertices())

	parent, err := g.EdgeFor("A", "B")
	require.NoError(t, err)
	require.NoError(t, parent.SetWeight(42))
	parent.AddLanguage("ja")

	view, err := sub.EdgeFor("B", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(42), view.Weight())
	assert.Equal(t, []string{"en", "de", "ja"}, view.Languages())
}

func TestInduced_IgnoresUnknownAndFalse(t *testing.T) {
	g := scenario(t)
	sub := core.Induced(g, map[string]bool{"A": true, "C": true, "B": false, "nope": true})
	assert.Equal(t, []string{"A", "C"}, sub.Vertices())
	assert.Equal(t, 0, sub.EdgeCount())
}

func TestInducedSubgraph_Isolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	sub, err := g.InducedSubgraph("solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, sub.Vertices())
	assert.Equal(t, 0, sub.EdgeCount())
}

func mustEdge(t *testing.T, g *core.Graph, u, v string, w int64) {
	t.Helper()
	_, err := g.AddEdge(u, v, w, []string{fmt.Sprintf("l%d", w)})
	require.NoError(t, err)
}
