// SPDX-License-Identifier: MIT
// Package: colexnet/builder
//
// id_fn.go - concept ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a concept ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0,25] and panics otherwise.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// SymbolNumberIDFn returns prefix + decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ConceptIDFn returns IDs in the "name<sep>definition" shape used by real
// datasets: names[idx] joined with a generated definition.
func ConceptIDFn(names []string, sep string) IDFn {
	return func(idx int) string {
		if idx < 0 || idx >= len(names) {
			panic(fmt.Sprintf("ConceptIDFn: idx must be in [0,%d), got %d", len(names), idx))
		}
		return names[idx] + sep + "sense " + strconv.Itoa(idx)
	}
}
