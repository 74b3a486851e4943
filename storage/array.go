// SPDX-License-Identifier: MIT

// Package storage: the inline buffer for fully static shapes.
// Go cannot derive an array length from type parameters, so the backing
// array type A is supplied explicitly (e.g. [6]float64 for a 2×3 float64
// shape) and validated ONCE at construction — never per element. This is
// the price of type-level sizing without const generics; the payoff is a
// value-semantic buffer with zero heap traffic and no stored dimensions.
package storage

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/mariapana/nalgebra/dim"
)

// panic messages (stable, asserted in tests).
const (
	panicArrayLayout = "storage: Array: backing type is not [rows*cols]T"
)

// Array is the inline fixed-capacity buffer for a Static×Static shape.
// R and C fix the shape at compile time; A is the backing array type,
// which must be exactly [R.Count()*C.Count()]T. The zero value of a
// validated instantiation is a legal, all-zero buffer.
type Array[T Scalar, R dim.Static, C dim.Static, A any] struct {
	data A // elements in row-major storage order, owned by value
}

// NewArray wraps a backing array as an inline buffer.
// Stage 1 (Validate): check, via one reflect pass, that A is [rows*cols]T.
// Stage 2 (Finalize): move the array in by value.
// Panics with a stable message on layout mismatch (programmer error).
// Complexity: O(1) beyond the value copy.
func NewArray[T Scalar, R dim.Static, C dim.Static, A any](data A) Array[T, R, C, A] {
	checkArrayLayout[T, R, C, A]()

	return Array[T, R, C, A]{data: data}
}

// checkArrayLayout asserts A == [rows*cols]T for the instantiation.
// Runs once per construction site, never per element.
func checkArrayLayout[T Scalar, R dim.Static, C dim.Static, A any]() {
	var (
		r    R
		c    C
		zero T
		a    A
	)
	at := reflect.TypeOf(a)
	if at.Kind() != reflect.Array ||
		at.Len() != r.Count()*c.Count() ||
		at.Elem() != reflect.TypeOf(zero) {
		panic(panicArrayLayout)
	}
}

// Rows returns the static row dimension (stateless; recovered from the type).
func (b *Array[T, R, C, A]) Rows() R { var r R; return r }

// Cols returns the static column dimension (stateless; recovered from the type).
func (b *Array[T, R, C, A]) Cols() C { var c C; return c }

// Len returns the total slot count, the compile-time product rows×cols.
// Complexity: O(1).
func (b *Array[T, R, C, A]) Len() int {
	var (
		r R
		c C
	)
	return r.Count() * c.Count()
}

// Slice exposes the element slots, in storage order, for reading and
// writing. The view aliases the buffer; it does not escape ownership.
// Panics if the instantiation was never layout-checked and A has the
// wrong size (the unsafe.Sizeof guard is a compile-time-constant compare).
func (b *Array[T, R, C, A]) Slice() []T {
	var zero T
	if n := unsafe.Sizeof(zero); n != 0 && unsafe.Sizeof(b.data)/n != uintptr(b.Len()) {
		panic(panicArrayLayout)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b.data)), b.Len())
}

// All iterates the slots in storage order as (index, element) pairs.
// Complexity: O(rows*cols) for a full pass.
func (b *Array[T, R, C, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Arrays are values, so a plain copy
// of the struct is a deep copy of the elements.
// Complexity: O(rows*cols).
func (b *Array[T, R, C, A]) Clone() Array[T, R, C, A] { return *b }

// String implements fmt.Stringer for debugging.
func (b *Array[T, R, C, A]) String() string {
	return fmt.Sprintf("Array%dx%d%v", b.Rows().Count(), b.Cols().Count(), b.Slice())
}
