package matrix_test

import (
	"fmt"
	"slices"

	"github.com/mariapana/nalgebra/matrix"
)

// ExampleNewDenseFromSeq builds a matrix from a value sequence and reads
// it back through the safe accessors.
func ExampleNewDenseFromSeq() {
	// 1) Fill a 2×3 matrix in row-major order:
	m, _ := matrix.NewDenseFromSeq(2, 3, slices.Values([]float64{1, 2, 3, 4, 5, 6}))

	// 2) Shape and elements are recoverable at run time:
	fmt.Printf("%dx%d\n", m.Rows(), m.Cols())
	v, _ := m.At(1, 1)
	fmt.Println("m[1][1] =", v)

	// Output:
	// 2x3
	// m[1][1] = 5
}
