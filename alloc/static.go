// SPDX-License-Identifier: MIT

// Package alloc: the Static×Static construction policy.
package alloc

import (
	"iter"

	"github.com/mariapana/nalgebra/dim"
	"github.com/mariapana/nalgebra/storage"
)

// StaticStatic builds inline storage.Array buffers for shapes whose rows
// and columns are both compile-time static. A is the backing array type,
// [R.Count()*C.Count()]T; it is validated once per construction, never
// per element. The policy itself is stateless.
type StaticStatic[T storage.Scalar, R dim.Static, C dim.Static, A any] struct{}

// Uninit reserves the inline slots without writing them. The buffer is a
// value; no heap allocation happens on this path.
// Complexity: O(1) beyond zeroing the value.
func (StaticStatic[T, R, C, A]) Uninit(_ R, _ C) storage.Array[T, R, C, A] {
	return UninitArray[T, R, C, A]()
}

// FromSeq fills the inline slots from seq in storage order.
// Panics if seq yields fewer or more than rows*cols elements.
func (StaticStatic[T, R, C, A]) FromSeq(_ R, _ C, seq iter.Seq[T]) storage.Array[T, R, C, A] {
	return ArrayFromSeq[T, R, C, A](seq)
}

// UninitArray is the package-level form of StaticStatic.Uninit for call
// sites that do not hold a policy value. Shape arguments are unnecessary:
// a static shape is fully determined by the instantiation.
func UninitArray[T storage.Scalar, R dim.Static, C dim.Static, A any]() storage.Array[T, R, C, A] {
	var a A // zero value of the backing array: reserved, logically unwritten

	return storage.NewArray[T, R, C](a)
}

// ArrayFromSeq allocates an inline buffer and fills it from seq.
// Stage 1 (Reserve): uninitialized inline slots.
// Stage 2 (Fill): walk slots and sequence in lockstep, counting consumed
// elements; stop after observing one element past capacity, so an
// infinite producer terminates without an out-of-bounds write.
// Stage 3 (Assert): the consumed count must equal rows*cols exactly;
// the check runs after consumption because seq's length is unknowable.
// Complexity: O(rows*cols).
func ArrayFromSeq[T storage.Scalar, R dim.Static, C dim.Static, A any](seq iter.Seq[T]) storage.Array[T, R, C, A] {
	buf := UninitArray[T, R, C, A]()
	slots := buf.Slice()

	count := 0
	for e := range seq {
		if count == len(slots) {
			count++ // oversupply observed; no slot is written
			break
		}
		slots[count] = e // one sequence element per slot, storage order
		count++
	}

	if count != len(slots) {
		panic(panicSeqCount)
	}

	return buf
}
