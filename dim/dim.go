// SPDX-License-Identifier: MIT

// Package dim: the dimension capability and its two variants.
// This file defines ONLY the Dim/Static contracts, the Dynamic runtime
// variant and the Product helper. The named static dimensions live in
// names.go. Panics are reserved for programmer errors (negative counts),
// per the global conventions.
package dim

// panic messages (stable, asserted in tests).
const (
	panicNegativeCount = "dim: NewDynamic: count must be non-negative"
)

// Dim is the capability every axis dimension exposes: its element count.
// An implementation is either Static (count baked into the type) or
// Dynamic (count stored in the value). The reported count is always >= 0
// and never changes once the value exists.
type Dim interface {
	// Count returns the number of elements along this axis.
	// Complexity: O(1).
	Count() int
}

// Static marks dimensions whose count is a compile-time constant.
// Static dimensions are zero-sized; their count is recoverable from the
// type alone, so values of a Static type carry no state and the zero
// value is the only value.
type Static interface {
	Dim

	// static is the sealing marker: only this package's named dimension
	// types (D0 … D9) satisfy Static.
	static()
}

// Dynamic is an axis dimension whose count is known only at run time.
// The count is fixed at construction and immutable afterwards.
type Dynamic struct {
	n int // element count, >= 0, set once by NewDynamic
}

// NewDynamic builds a runtime dimension of n elements.
// Panics with a stable message if n is negative (programmer error).
// Complexity: O(1).
func NewDynamic(n int) Dynamic {
	// Validate non-negativity before the value can ever exist.
	if n < 0 {
		panic(panicNegativeCount)
	}

	return Dynamic{n: n}
}

// Count returns the element count supplied at construction.
// Complexity: O(1).
func (d Dynamic) Count() int { return d.n }

// Product returns the total slot count of a (rows, cols) shape.
// Complexity: O(1).
func Product(rows, cols Dim) int { return rows.Count() * cols.Count() }
