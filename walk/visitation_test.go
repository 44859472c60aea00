package walk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/builder"
	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/walk"
)

func TestVisit_Counts(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)

	s := walk.NewSampler(walk.WithSeed(1))
	v, err := s.Visit(context.Background(), g, "0", 400, 2)
	require.NoError(t, err)
	assert.Equal(t, 400, v.Total())
	// one draw among {1, 0}: both outcomes must show up
	assert.Positive(t, v["0"])
	assert.Positive(t, v["1"])

	_, err = s.Visit(context.Background(), g, "0", 0, 2)
	require.ErrorIs(t, err, walk.ErrInvalidWalkCount)
}

func TestVisit_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = walk.NewSampler(walk.WithSeed(2)).Visit(ctx, g, "0", 10, 5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestVisitAll_ReproducibleAcrossWorkers(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(8))
	require.NoError(t, err)
	starts := g.Vertices()

	run := func(workers int) map[string]walk.Visitation {
		s := walk.NewSampler(walk.WithSeed(77))
		out, err := s.VisitAll(context.Background(), g, starts, 25, 6, workers)
		require.NoError(t, err)
		return out
	}
	sequential := run(1)
	assert.Equal(t, sequential, run(4))
	assert.Equal(t, sequential, run(0))
	assert.Equal(t, sequential, run(-1))
	require.Len(t, sequential, len(starts))
	for _, st := range starts {
		assert.Equal(t, 25, sequential[st].Total())
	}
}

func TestVisitAll_UnknownStartFails(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	_, err = walk.NewSampler(walk.WithSeed(1)).VisitAll(context.Background(), g, []string{"0", "ghost"}, 3, 3, 2)
	require.ErrorIs(t, err, core.ErrUnknownConcept)
}

func TestSmooth(t *testing.T) {
	v := walk.Visitation{"a": 6, "b": 4}
	d, err := walk.Smooth(v, []string{"a", "b", "c", "d"}, 0.2)
	require.NoError(t, err)

	assert.InDelta(t, 0.8*0.6+0.05, d["a"], 1e-12)
	assert.InDelta(t, 0.8*0.4+0.05, d["b"], 1e-12)
	assert.InDelta(t, 0.05, d["c"], 1e-12)
	var sum float64
	for _, p := range d {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, []string{"a", "b", "c", "d"}, d.Ranked())
}

func TestSmooth_Edges(t *testing.T) {
	_, err := walk.Smooth(walk.Visitation{"a": 1}, nil, 1.5)
	require.ErrorIs(t, err, walk.ErrInvalidSmoothing)
	_, err = walk.Smooth(walk.Visitation{"a": 1}, nil, -0.1)
	require.ErrorIs(t, err, walk.ErrInvalidSmoothing)

	// no walks: uniform over the support
	d, err := walk.Smooth(walk.Visitation{}, []string{"x", "y"}, 0.1)
	require.NoError(t, err)
	assert.Equal(t, walk.Distribution{"x": 0.5, "y": 0.5}, d)

	// factor 0 is the raw empirical distribution
	d, err = walk.Smooth(walk.Visitation{"x": 3, "y": 1}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, walk.Distribution{"x": 0.75, "y": 0.25}, d)

	d, err = walk.Smooth(nil, nil, 0.3)
	require.NoError(t, err)
	assert.Empty(t, d)
}
