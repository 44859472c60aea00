// SPDX-License-Identifier: MIT

// Package walk samples lazy random walks over a concept graph.
//
// At every step the candidate set is the current concept's neighbors plus
// the concept itself, and the next position is drawn uniformly from it.
// Staying put is therefore always one extra option regardless of degree,
// which shifts stationary mass toward concepts with few neighbors. A walk of
// length L makes L-1 draws; L == 1 returns the start unchanged.
//
// Randomness is injected through Option values (WithSeed, WithRand); repeated
// walks with the same seed over the same graph are identical.
package walk

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/colexnet/core"
)

// Sentinel errors for walk sampling.
var (
	// ErrInvalidWalkLength is returned for a walk length below 1.
	ErrInvalidWalkLength = errors.New("walk: walk length must be >= 1")

	// ErrInvalidWalkCount is returned for a non-positive number of walks.
	ErrInvalidWalkCount = errors.New("walk: walk count must be >= 1")

	// ErrInvalidSmoothing is returned for a smoothing factor outside [0,1].
	ErrInvalidSmoothing = errors.New("walk: smoothing factor must be in [0,1]")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("walk: graph is nil")
)

// Graph is the read-only view a walk needs. *core.Graph satisfies it, as
// does any induced subgraph of it.
type Graph interface {
	HasVertex(id string) bool
	Neighbors(id string) ([]string, error)
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed fixes the random stream. Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(s *Sampler) { s.rng = rngFromSeed(seed) }
}

// WithRand uses r as the random stream. The Sampler serializes access to r;
// r must not be used elsewhere concurrently.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walk: WithRand(nil)")
	}
	return func(s *Sampler) { s.rng = r }
}

// WithOnStep registers a callback invoked for each transition from -> to.
// to == from for a self-transition.
func WithOnStep(fn func(from, to string)) Option {
	return func(s *Sampler) { s.onStep = fn }
}

// Sampler draws random walks from an injected stream. It is safe for
// concurrent use; concurrent callers share (and serialize on) one stream.
type Sampler struct {
	mu     sync.Mutex
	rng    *rand.Rand
	onStep func(from, to string)
}

// NewSampler builds a Sampler. Without WithSeed/WithRand the stream is
// seeded from the clock.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rngFromClock()
	}

	return s
}

// Walk performs one walk of the given length from start and returns the
// concept it ends on.
//
// Errors:
//   - ErrInvalidWalkLength: length < 1.
//   - core.ErrUnknownConcept: start is not in g.
func (s *Sampler) Walk(g Graph, start string, length int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return walk(g, start, length, s.rng, s.onStep)
}

// Walk is the stateless form of Sampler.Walk. A nil rng uses the fixed
// default seed.
func Walk(g Graph, start string, length int, rng *rand.Rand) (string, error) {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return walk(g, start, length, rng, nil)
}

func walk(g Graph, start string, length int, rng *rand.Rand, onStep func(from, to string)) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	if length < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidWalkLength, length)
	}
	if !g.HasVertex(start) {
		return "", fmt.Errorf("walk: start %q: %w", start, core.ErrUnknownConcept)
	}

	cur := start
	for step := 1; step < length; step++ {
		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return "", fmt.Errorf("walk: neighbors of %q: %w", cur, err)
		}
		// sorted neighbors plus the current concept keep draws reproducible
		candidates := append(nbrs, cur)
		next := candidates[rng.Intn(len(candidates))]
		if onStep != nil {
			onStep(cur, next)
		}
		cur = next
	}

	return cur, nil
}
