// SPDX-License-Identifier: MIT

// Package longestpath estimates a "longest path" figure for concept graphs
// with a reachable-node-count proxy.
//
// For every concept n, the proxy counts the concepts reachable from n within
// maxDepth hops (n included) and reports the maximum count over all
// concepts. This is the size of the largest BFS ball, not the length of any
// simple path: exact longest paths are NP-hard, the ball is O(V·(V+E)).
//
// With no cutoff the depth defaults to the vertex count, which no shortest
// path in a simple graph can exceed, so each ball is its whole component.
package longestpath

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/colexnet/bfs"
	"github.com/katalvlaran/colexnet/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("longestpath: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("longestpath: invalid option supplied")
)

// Option configures Approximate and PerComponent.
type Option func(*options)

type options struct {
	maxDepth int
	hasDepth bool
	workers  int
	err      error
}

// WithMaxDepth sets the hop cutoff. 0 means the concept alone.
// Negative values are reported as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth, o.hasDepth = d, true
	}
}

// WithWorkers bounds the number of concurrent per-concept searches.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func resolve(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o, o.err
}

// Approximate returns the largest number of concepts reachable from any
// single concept within the hop cutoff. An empty graph yields 0; an isolated
// concept yields 1; a path on k concepts without cutoff yields k.
//
// The graph must not be mutated while Approximate runs. Cancelling ctx stops
// outstanding searches and returns the context error.
func Approximate(ctx context.Context, g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	return approximate(ctx, g, g.Vertices(), o)
}

func approximate(ctx context.Context, g *core.Graph, vertices []string, o options) (int, error) {
	if len(vertices) == 0 {
		return 0, nil
	}
	depth := len(vertices)
	if o.hasDepth {
		depth = o.maxDepth
	}

	var best atomic.Int64
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for _, v := range vertices {
		v := v
		eg.Go(func() error {
			n, err := BallSize(egctx, g, v, depth)
			if err != nil {
				return err
			}
			for {
				cur := best.Load()
				if int64(n) <= cur || best.CompareAndSwap(cur, int64(n)) {
					return nil
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return int(best.Load()), nil
}

// BallSize returns the number of concepts within depth hops of start,
// start included.
func BallSize(ctx context.Context, g *core.Graph, start string, depth int) (int, error) {
	res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithMaxDepth(depth))
	if err != nil {
		return 0, fmt.Errorf("longestpath: ball around %q: %w", start, err)
	}

	return res.Reached(), nil
}
