// SPDX-License-Identifier: MIT

// Package alloc: the two dynamic construction policies.
// DynamicRows and DynamicCols share one algorithm; they differ only in
// which type parameter carries the static dimension, which changes the
// buffer's type identity but not its behavior.
package alloc

import (
	"iter"
	"slices"

	"github.com/mariapana/nalgebra/dim"
	"github.com/mariapana/nalgebra/storage"
)

// DynamicRows builds heap-backed storage.Vec buffers for shapes whose
// row count is known only at run time; columns may be either kind.
type DynamicRows[T storage.Scalar, C dim.Dim] struct{}

// Uninit reserves exactly rows*cols heap slots, zeroed by the runtime,
// and tags the buffer with both dimension descriptors.
// Complexity: O(rows*cols) for the zeroing.
func (DynamicRows[T, C]) Uninit(rows dim.Dynamic, cols C) storage.Vec[T, dim.Dynamic, C] {
	return UninitVec[T](rows, cols)
}

// FromSeq collects the whole sequence, then asserts its length equals
// rows*cols before wrapping it as the buffer.
func (DynamicRows[T, C]) FromSeq(rows dim.Dynamic, cols C, seq iter.Seq[T]) storage.Vec[T, dim.Dynamic, C] {
	return VecFromSeq[T](rows, cols, seq)
}

// DynamicCols is the symmetric policy: static rows, runtime columns.
type DynamicCols[T storage.Scalar, R dim.Static] struct{}

// Uninit reserves exactly rows*cols heap slots, zeroed by the runtime,
// and tags the buffer with both dimension descriptors.
// Complexity: O(rows*cols) for the zeroing.
func (DynamicCols[T, R]) Uninit(rows R, cols dim.Dynamic) storage.Vec[T, R, dim.Dynamic] {
	return UninitVec[T](rows, cols)
}

// FromSeq collects the whole sequence, then asserts its length equals
// rows*cols before wrapping it as the buffer.
func (DynamicCols[T, R]) FromSeq(rows R, cols dim.Dynamic, seq iter.Seq[T]) storage.Vec[T, R, dim.Dynamic] {
	return VecFromSeq[T](rows, cols, seq)
}

// UninitVec reserves a heap region of exactly rows*cols elements — no
// spare capacity — and wraps it with the two descriptors. At least one
// of R, C is dim.Dynamic at every policy call site.
func UninitVec[T storage.Scalar, R dim.Dim, C dim.Dim](rows R, cols C) storage.Vec[T, R, C] {
	length := dim.Product(rows, cols)

	return storage.NewVec(rows, cols, make([]T, length))
}

// VecFromSeq allocates a heap buffer filled from seq.
// Stage 1 (Collect): drain the entire sequence into a fresh region; the
// sequence's length is unknowable in advance, so no pre-check exists.
// Stage 2 (Assert): the collected length must equal rows*cols exactly.
// Stage 3 (Wrap): hand the region to the buffer, transferring ownership.
// Complexity: O(max(sequence length, rows*cols)).
func VecFromSeq[T storage.Scalar, R dim.Dim, C dim.Dim](rows R, cols C, seq iter.Seq[T]) storage.Vec[T, R, C] {
	data := slices.Collect(seq)

	if len(data) != dim.Product(rows, cols) {
		panic(panicSeqCount)
	}

	return storage.NewVec(rows, cols, data)
}
