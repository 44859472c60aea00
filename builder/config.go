// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// config.go - builderConfig and its functional options.
//
// Option constructors panic on programmer error (nil functions, nil RNG);
// constructors themselves never panic.

package builder

import "math/rand"

// builderConfig holds the resolved parameters shared by all constructors.
type builderConfig struct {
	// idFn maps an index to a concept ID.
	idFn IDFn
	// rng drives stochastic constructors and weight functions; nil unless set.
	rng *rand.Rand
	// weightFn draws an edge weight.
	weightFn WeightFn
	// languages is attached to every generated edge.
	languages []string
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the index → concept ID mapping.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for stochastic decisions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG for stochastic decisions.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithLanguages attaches langs to every generated edge.
func WithLanguages(langs ...string) BuilderOption {
	return func(c *builderConfig) { c.languages = append([]string(nil), langs...) }
}
