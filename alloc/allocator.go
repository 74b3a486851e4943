// SPDX-License-Identifier: MIT

// Package alloc: the allocation capability contract.
package alloc

import (
	"iter"

	"github.com/mariapana/nalgebra/dim"
	"github.com/mariapana/nalgebra/storage"
)

// panic messages (stable, asserted in tests).
const (
	panicSeqCount = "alloc: FromSeq: sequence did not yield exactly rows*cols elements"
)

// Allocator is the capability a matrix type consumes: for element type T
// and a (R, C) shape, construct the buffer type B that the matrix will
// own exclusively. Which concrete policy satisfies the contract for a
// given (R, C) pairing is fixed at compile time by the instantiation.
type Allocator[T storage.Scalar, R dim.Dim, C dim.Dim, B any] interface {
	// Uninit reserves storage for exactly rows.Count()*cols.Count()
	// elements. Slots hold no valid value until written; the caller must
	// write every slot before reading any.
	Uninit(rows R, cols C) B

	// FromSeq reserves the same storage and fills every slot in storage
	// order, consuming exactly one sequence element per slot. Panics if
	// the sequence yields fewer or more elements than the shape needs.
	FromSeq(rows R, cols C, seq iter.Seq[T]) B
}
