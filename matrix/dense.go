// SPDX-License-Identifier: MIT

// Package matrix: Dense storage (row-major) & safe accessors.
// Dense is a concrete, row-major matrix over any Scalar element type,
// storing elements in a buffer obtained from the allocation core.
package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mariapana/nalgebra/alloc"
	"github.com/mariapana/nalgebra/dim"
	"github.com/mariapana/nalgebra/storage"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of Scalar values with runtime shape.
// The backing buffer is requested from the DynamicRows policy at
// construction and owned exclusively by the matrix; shape is recoverable
// from the buffer's stored dimension descriptors.
type Dense[T storage.Scalar] struct {
	buf storage.Vec[T, dim.Dynamic, dim.Dynamic] // flat storage, len == r*c
}

// NewDense creates an r×c Dense matrix with every element zero.
// Stage 1 (Validate): reject negative dimensions with ErrBadShape.
// Stage 2 (Allocate): ask the dynamic policy for an uninitialized buffer.
// Stage 3 (Finalize): take sole ownership of the returned buffer.
// Complexity: O(r*c) time and memory.
func NewDense[T storage.Scalar](rows, cols int) (*Dense[T], error) {
	// Validate dimensions; zero is legal, negative is not.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	// The type system picks the Dynamic×Dynamic policy here; no runtime
	// branch inspects the dimension kinds.
	var policy alloc.DynamicRows[T, dim.Dynamic]
	buf := policy.Uninit(dim.NewDynamic(rows), dim.NewDynamic(cols))

	return &Dense[T]{buf: buf}, nil
}

// NewDenseFromSeq creates an r×c Dense matrix filled from seq in
// row-major order. Shape errors are recoverable; a sequence yielding
// fewer or more than r*c elements is a programmer error and panics in
// the allocation core (see package alloc).
// Complexity: O(max(sequence length, r*c)).
func NewDenseFromSeq[T storage.Scalar](rows, cols int, seq iter.Seq[T]) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	var policy alloc.DynamicRows[T, dim.Dynamic]
	buf := policy.FromSeq(dim.NewDynamic(rows), dim.NewDynamic(cols), seq)

	return &Dense[T]{buf: buf}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.buf.Rows().Count() // row descriptor travels with the buffer
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.buf.Cols().Count() // column descriptor travels with the buffer
}

// indexOf computes the flat row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.Rows() {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.Cols() {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.Cols() + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices, ErrNilMatrix on nil receiver.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, ErrNilMatrix
	}

	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return zero, err
	}

	return m.buf.Slice()[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices, ErrNilMatrix on nil receiver.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}

	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.buf.Slice()[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the original.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{buf: m.buf.Clone()}
}

// String implements fmt.Stringer for easy debugging.
// Rows are printed one per line in storage order.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	data := m.buf.Slice()
	cols := m.Cols()
	for r := 0; r < m.Rows(); r++ {
		sb.WriteString("[")
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", data[r*cols+c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
