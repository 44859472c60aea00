// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: WeightedEdge, the value carried by every edge of the concept graph.
// Concurrency:
//   - Each WeightedEdge has its own RWMutex; views share the pointer, so the
//     lock is what keeps parallel readers and an ingestion writer apart.

package core

import (
	"fmt"
	"math"
	"sync"
)

// WeightedEdge holds the translation count of one concept pair and the
// languages that contributed to it. The engine does not relate Weight to
// len(Languages); both are supplied independently by the loader.
type WeightedEdge struct {
	mu        sync.RWMutex
	weight    int64
	languages []string
}

// NewWeightedEdge returns an edge with the given weight and languages.
// The languages slice is copied. Returns ErrInvalidWeight for weight < 0.
func NewWeightedEdge(weight int64, languages []string) (*WeightedEdge, error) {
	if weight < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidWeight, weight)
	}

	return &WeightedEdge{weight: weight, languages: cloneStrings(languages)}, nil
}

// Weight returns the current translation count.
func (e *WeightedEdge) Weight() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.weight
}

// SetWeight replaces the weight. Negative values are rejected with
// ErrInvalidWeight and the previous weight is kept.
func (e *WeightedEdge) SetWeight(w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidWeight, w)
	}
	e.mu.Lock()
	e.weight = w
	e.mu.Unlock()

	return nil
}

// SetWeightFloat accepts a weight from an untyped numeric source. Anything
// that is not a non-negative whole number representable as int64 is
// rejected with ErrInvalidWeight and the previous weight is kept.
func (e *WeightedEdge) SetWeightFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return fmt.Errorf("%w: %v is not an integer", ErrInvalidWeight, f)
	}
	if f < 0 || f >= math.MaxInt64 {
		return fmt.Errorf("%w: %v out of range", ErrInvalidWeight, f)
	}

	return e.SetWeight(int64(f))
}

// AddWeight adds delta to the weight in one locked step. The result must
// stay non-negative, otherwise ErrInvalidWeight is returned unchanged.
func (e *WeightedEdge) AddWeight(delta int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.weight + delta
	if next < 0 {
		return fmt.Errorf("%w: %d%+d is negative", ErrInvalidWeight, e.weight, delta)
	}
	e.weight = next

	return nil
}

// Languages returns a copy of the language collection.
func (e *WeightedEdge) Languages() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return cloneStrings(e.languages)
}

// SetLanguages replaces the language collection with a copy of langs.
func (e *WeightedEdge) SetLanguages(langs []string) {
	e.mu.Lock()
	e.languages = cloneStrings(langs)
	e.mu.Unlock()
}

// AddLanguage appends lang unless it is already present. Reports whether
// the collection changed.
func (e *WeightedEdge) AddLanguage(lang string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, l := range e.languages {
		if l == lang {
			return false
		}
	}
	e.languages = append(e.languages, lang)

	return true
}

// Normalized returns weight/maximum. The caller supplies the maximum over
// the comparison set (see MaxWeight). maximum < weight yields a value > 1;
// maximum == 0 is undefined and yields NaN or +Inf.
func (e *WeightedEdge) Normalized(maximum int64) float64 {
	return float64(e.Weight()) / float64(maximum)
}

// String mirrors the debug form used in logs.
func (e *WeightedEdge) String() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return fmt.Sprintf("Weight: %d Translations: %v", e.weight, e.languages)
}

// MaxWeight returns the largest weight in edges, or 0 for an empty set.
// A zero result means normalization against it is undefined.
func MaxWeight(edges []*WeightedEdge) int64 {
	var max int64
	for _, e := range edges {
		if e == nil {
			continue
		}
		if w := e.Weight(); w > max {
			max = w
		}
	}

	return max
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)

	return out
}
