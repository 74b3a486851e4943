// SPDX-License-Identifier: MIT

// Package storage: the heap buffer for shapes with a runtime dimension.
package storage

import (
	"fmt"
	"iter"

	"github.com/mariapana/nalgebra/dim"
)

// panic messages (stable, asserted in tests).
const (
	panicVecLength = "storage: NewVec: data length must equal rows*cols"
)

// Vec is the heap-backed buffer for any shape with at least one dynamic
// dimension. It owns a contiguous region of exactly rows×cols elements in
// row-major storage order and carries both dimension descriptors so the
// shape stays recoverable at run time.
type Vec[T Scalar, R dim.Dim, C dim.Dim] struct {
	rows R   // row descriptor, at least one of rows/cols is dim.Dynamic
	cols C   // column descriptor
	data []T // flat element storage, len == rows.Count()*cols.Count()
}

// NewVec wraps a flat element region as a buffer for the given shape.
// Stage 1 (Validate): len(data) must equal rows.Count()*cols.Count().
// Stage 2 (Finalize): take exclusive ownership of data.
// Panics with a stable message on length mismatch (programmer error).
// The caller must not retain or alias data after handing it over.
// Complexity: O(1).
func NewVec[T Scalar, R dim.Dim, C dim.Dim](rows R, cols C, data []T) Vec[T, R, C] {
	// Validate the shape-size invariant before the buffer can exist.
	if len(data) != dim.Product(rows, cols) {
		panic(panicVecLength)
	}

	return Vec[T, R, C]{rows: rows, cols: cols, data: data}
}

// Rows returns the row dimension descriptor stored at construction.
func (b Vec[T, R, C]) Rows() R { return b.rows }

// Cols returns the column dimension descriptor stored at construction.
func (b Vec[T, R, C]) Cols() C { return b.cols }

// Len returns the total slot count, fixed since construction.
// Complexity: O(1).
func (b Vec[T, R, C]) Len() int { return len(b.data) }

// Slice exposes the element slots, in storage order, for reading and
// writing. The view aliases the buffer; it does not escape ownership.
func (b Vec[T, R, C]) Slice() []T { return b.data }

// All iterates the slots in storage order as (index, element) pairs.
// Complexity: O(rows*cols) for a full pass.
func (b Vec[T, R, C]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy sharing no storage.
// Complexity: O(rows*cols).
func (b Vec[T, R, C]) Clone() Vec[T, R, C] {
	cp := make([]T, len(b.data)) // fresh region of the same exact length
	copy(cp, b.data)             // element-wise value copy

	return Vec[T, R, C]{rows: b.rows, cols: b.cols, data: cp}
}

// String implements fmt.Stringer for debugging.
func (b Vec[T, R, C]) String() string {
	return fmt.Sprintf("Vec%dx%d%v", b.rows.Count(), b.cols.Count(), b.data)
}
