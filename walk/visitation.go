// SPDX-License-Identifier: MIT
//
// File: visitation.go
// Role: Repeated walks into end-node counts, parallel batches, smoothing.

package walk

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Visitation counts how often each concept was the end of a walk.
type Visitation map[string]int

// Total returns the number of walks recorded.
func (v Visitation) Total() int {
	var n int
	for _, c := range v {
		n += c
	}

	return n
}

// Distribution maps concepts to probabilities summing to 1.
type Distribution map[string]float64

// Visit runs count walks of the given length from start and tallies the end
// concepts. ctx is checked between walks.
func (s *Sampler) Visit(ctx context.Context, g Graph, start string, count, length int) (Visitation, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWalkCount, count)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return visit(ctx, g, start, count, length, s.rng, s.onStep)
}

// VisitAll runs Visit for every start concept, up to workers batches at a
// time (workers <= 0 selects runtime.GOMAXPROCS(0)). Each start gets its own
// stream derived from the sampler's stream in input order, so a seeded
// sampler yields the same result however the batches are scheduled. The first error cancels
// the remaining batches. An OnStep hook is called from several goroutines
// here and must be safe for concurrent use.
func (s *Sampler) VisitAll(ctx context.Context, g Graph, starts []string, count, length, workers int) (map[string]Visitation, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWalkCount, count)
	}

	s.mu.Lock()
	streams := make([]*rand.Rand, len(starts))
	for i := range starts {
		streams[i] = deriveRNG(s.rng, uint64(i))
	}
	onStep := s.onStep
	s.mu.Unlock()

	results := make([]Visitation, len(starts))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(workerLimit(workers))
	for i, start := range starts {
		i, start := i, start
		eg.Go(func() error {
			v, err := visit(egctx, g, start, count, length, streams[i], onStep)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]Visitation, len(starts))
	for i, start := range starts {
		out[start] = results[i]
	}

	return out, nil
}

// workerLimit maps a requested worker count to the errgroup limit.
func workerLimit(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func visit(ctx context.Context, g Graph, start string, count, length int, rng *rand.Rand, onStep func(from, to string)) (Visitation, error) {
	v := make(Visitation)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end, err := walk(g, start, length, rng, onStep)
		if err != nil {
			return nil, err
		}
		v[end]++
	}

	return v, nil
}

// Smooth turns counts into a distribution mixed with the uniform
// distribution over support:
//
//	p(n) = (1-factor)·count(n)/total + factor/|support|
//
// Concepts counted in v are always part of the support. With no recorded
// walks the result is uniform. An empty support yields an empty Distribution.
// Returns ErrInvalidSmoothing for factor outside [0,1].
func Smooth(v Visitation, support []string, factor float64) (Distribution, error) {
	if factor < 0 || factor > 1 || math.IsNaN(factor) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSmoothing, factor)
	}
	nodes := make(map[string]struct{}, len(support)+len(v))
	for _, n := range support {
		nodes[n] = struct{}{}
	}
	for n := range v {
		nodes[n] = struct{}{}
	}
	out := make(Distribution, len(nodes))
	if len(nodes) == 0 {
		return out, nil
	}

	total := v.Total()
	uniform := 1 / float64(len(nodes))
	for n := range nodes {
		if total == 0 {
			out[n] = uniform
			continue
		}
		out[n] = (1-factor)*float64(v[n])/float64(total) + factor*uniform
	}

	return out, nil
}

// Ranked returns the distribution's concepts by descending probability,
// ties broken by ID.
func (d Distribution) Ranked() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if d[ids[i]] != d[ids[j]] {
			return d[ids[i]] > d[ids[j]]
		}
		return ids[i] < ids[j]
	})

	return ids
}
