package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/core"
)

// scenario builds {(A,B,w=5,{en,de}), (B,C,w=2,{fr})}.
func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 5, []string{"en", "de"})
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2, []string{"fr"})
	require.NoError(t, err)

	return g
}

func TestNewPair_Canonical(t *testing.T) {
	assert.Equal(t, core.NewPair("x", "a"), core.NewPair("a", "x"))
	p := core.NewPair("z", "m")
	assert.Equal(t, "m", p.A)
	assert.Equal(t, "z", p.B)
	assert.Equal(t, "z", p.Other("m"))
	assert.Equal(t, "", p.Other("q"))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1, nil)
	require.ErrorIs(t, err, core.ErrEmptyConceptID)
	_, err = g.AddEdge("A", "A", 1, nil)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "B", -1, nil)
	require.ErrorIs(t, err, core.ErrInvalidWeight)

	// failed calls leave no trace
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_OverwritesPair(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddEdge("A", "B", 5, []string{"en"})
	require.NoError(t, err)
	second, err := g.AddEdge("B", "A", 2, []string{"fr"})
	require.NoError(t, err)

	got, err := g.EdgeFor("A", "B")
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
	assert.Equal(t, int64(2), got.Weight(), "weights are replaced, not merged")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestEdgeFor_OrderIndependent(t *testing.T) {
	g := scenario(t)
	ab, err := g.EdgeFor("A", "B")
	require.NoError(t, err)
	ba, err := g.EdgeFor("B", "A")
	require.NoError(t, err)
	assert.Same(t, ab, ba)

	_, err = g.EdgeFor("A", "C")
	require.ErrorIs(t, err, core.ErrUnknownEdge)
	assert.False(t, g.HasEdge("C", "A"))
	assert.True(t, g.HasEdge("C", "B"))
}

func TestNeighbors(t *testing.T) {
	g := scenario(t)
	nbrs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbrs)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrUnknownConcept)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyConceptID)

	require.NoError(t, g.AddVertex("lonely"))
	nbrs, err = g.Neighbors("lonely")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	d, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestIncidentEdges(t *testing.T) {
	g := scenario(t)
	inc, err := g.IncidentEdges("B")
	require.NoError(t, err)
	require.Len(t, inc, 2)
	assert.Equal(t, core.NewPair("A", "B"), inc[0].Pair)
	assert.Equal(t, core.NewPair("B", "C"), inc[1].Pair)
}

func TestEdgesAndVertices_Sorted(t *testing.T) {
	g := scenario(t)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	es := g.Edges()
	require.Len(t, es, 2)
	assert.Equal(t, core.Pair{A: "A", B: "B"}, es[0].Pair)
	assert.Equal(t, core.Pair{A: "B", B: "C"}, es[1].Pair)
	assert.Equal(t, int64(5), core.MaxWeight(g.WeightedEdges()))
}

func TestStats(t *testing.T) {
	g := scenario(t)
	require.NoError(t, g.AddVertex("Z"))
	st := g.Stats()
	assert.Equal(t, core.GraphStats{
		VertexCount:   4,
		EdgeCount:     2,
		IsolatedCount: 1,
		MaxWeight:     5,
		TotalWeight:   7,
	}, st)
}

func TestGraph_ConcurrentReaders(t *testing.T) {
	g := scenario(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = g.Neighbors("B")
				_, _ = g.InducedSubgraph("A")
				e, _ := g.EdgeFor("A", "B")
				_ = e.Weight()
			}
		}()
	}
	wg.Wait()
}
