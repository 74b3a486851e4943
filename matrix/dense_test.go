// Package matrix_test contains unit tests for the Dense consumer of the
// allocation core.
package matrix_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariapana/nalgebra/matrix"
)

// TestNewDenseInvalidShape ensures NewDense rejects negative dimensions.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := matrix.NewDense[float64](-1, 5)       // negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)     // expect ErrBadShape

	_, err = matrix.NewDense[float64](5, -1)        // negative cols
	require.ErrorIs(t, err, matrix.ErrBadShape)     // expect ErrBadShape
}

// TestNewDenseZeroShape verifies zero-sized shapes allocate successfully.
func TestNewDenseZeroShape(t *testing.T) {
	m, err := matrix.NewDense[float64](0, 7) // zero rows is a legal shape
	require.NoError(t, err)                  // construction succeeds
	require.Equal(t, 0, m.Rows())            // zero slots overall
	require.Equal(t, 7, m.Cols())
}

// TestRowsCols verifies that Rows() and Cols() report the requested shape.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense[float64](rows, cols) // create a 3x4 matrix
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows()) // shape recoverable at run time
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on
// invalid access instead of panicking.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // sentinel, not panic

	_, err = m.At(0, 2)                           // column past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)                       // row past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	err = m.Set(1, 2, 7.89) // write one element
	require.NoError(t, err)

	val, err := m.At(1, 2) // read it back
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestGenericElements verifies Dense works for non-float64 scalars.
func TestGenericElements(t *testing.T) {
	m, err := matrix.NewDense[int32](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 42)) // integer element type
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
}

// TestNewDenseFromSeqRowMajor verifies sequence fill lands in row-major order.
func TestNewDenseFromSeqRowMajor(t *testing.T) {
	m, err := matrix.NewDenseFromSeq(2, 3, slices.Values([]float64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)

	v, err := m.At(0, 0) // first slot of the first row
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = m.At(1, 0) // first slot of the second row
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	v, err = m.At(1, 2) // last slot
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestNewDenseFromSeqLengthMismatchPanics ensures the core's fatal
// contract surfaces unchanged through the consumer.
func TestNewDenseFromSeqLengthMismatchPanics(t *testing.T) {
	require.PanicsWithValue(t,
		"alloc: FromSeq: sequence did not yield exactly rows*cols elements",
		func() {
			_, _ = matrix.NewDenseFromSeq(2, 3, slices.Values([]float64{1, 2, 3, 4, 5}))
		},
	)
}

// TestCloneIndependence ensures Clone() returns a deep copy with no
// shared storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 1.0)) // seed the original
	require.NoError(t, m.Set(1, 1, 2.0))

	clone := m.Clone()                       // deep copy
	require.NoError(t, clone.Set(0, 0, 3.0)) // mutate the clone only

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original untouched

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal) // clone carries the write
}

// TestNilReceiver ensures nil receivers surface ErrNilMatrix.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense[float64] // typed nil

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = m.Set(0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestStringLayout spot-checks the row-per-line rendering.
func TestStringLayout(t *testing.T) {
	m, err := matrix.NewDenseFromSeq(2, 2, slices.Values([]int{1, 2, 3, 4}))
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String()) // row-major, one row per line
}
