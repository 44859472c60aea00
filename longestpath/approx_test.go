package longestpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/builder"
	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/longestpath"
)

// twoIslands: a path a-b-c-d and a separate pair x-y, plus isolated z.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"x", "y"}} {
		_, err := g.AddEdge(e[0], e[1], 3, []string{"en"})
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("z"))
	return g
}

func TestApproximate_Trivial(t *testing.T) {
	n, err := longestpath.Approximate(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	n, err = longestpath.Approximate(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = longestpath.Approximate(context.Background(), nil)
	require.ErrorIs(t, err, longestpath.ErrGraphNil)
}

func TestApproximate_PathCountsNodes(t *testing.T) {
	for _, k := range []int{2, 3, 7} {
		g, err := builder.BuildGraph(nil, builder.Path(k))
		require.NoError(t, err)
		n, err := longestpath.Approximate(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, k, n, "path of %d concepts", k)
	}
}

func TestApproximate_Cutoff(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	cases := []struct {
		depth, want int
	}{
		{0, 1},
		{1, 3},
		{2, 5},
		{9, 5},
	}
	for _, c := range cases {
		n, err := longestpath.Approximate(context.Background(), g,
			longestpath.WithMaxDepth(c.depth), longestpath.WithWorkers(2))
		require.NoError(t, err)
		assert.Equal(t, c.want, n, "depth %d", c.depth)
	}

	_, err = longestpath.Approximate(context.Background(), g, longestpath.WithMaxDepth(-1))
	require.ErrorIs(t, err, longestpath.ErrOptionViolation)
}

func TestApproximate_StarAndComplete(t *testing.T) {
	star, err := builder.BuildGraph(nil, builder.Star(6))
	require.NoError(t, err)
	n, err := longestpath.Approximate(context.Background(), star, longestpath.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 6, n, "the center reaches every leaf in one hop")

	k5, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	n, err = longestpath.Approximate(context.Background(), k5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestApproximate_DisconnectedTakesLargest(t *testing.T) {
	n, err := longestpath.Approximate(context.Background(), twoIslands(t))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestApproximate_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(30))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = longestpath.Approximate(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBallSize(t *testing.T) {
	g := twoIslands(t)
	n, err := longestpath.BallSize(context.Background(), g, "b", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = longestpath.BallSize(context.Background(), g, "missing", 1)
	require.ErrorIs(t, err, core.ErrUnknownConcept)
}

func TestComponents(t *testing.T) {
	comps, err := longestpath.Components(twoIslands(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}, {"x", "y"}, {"z"}}, comps)

	_, err = longestpath.Components(nil)
	require.ErrorIs(t, err, longestpath.ErrGraphNil)
}

func TestPerComponent(t *testing.T) {
	res, err := longestpath.PerComponent(context.Background(), twoIslands(t))
	require.NoError(t, err)
	assert.Equal(t, []longestpath.ComponentResult{
		{Representative: "a", Size: 4, LongestPath: 4},
		{Representative: "x", Size: 2, LongestPath: 2},
		{Representative: "z", Size: 1, LongestPath: 1},
	}, res)

	res, err = longestpath.PerComponent(context.Background(), twoIslands(t), longestpath.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 3, res[0].LongestPath)
}
