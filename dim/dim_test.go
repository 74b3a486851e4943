// Package dim_test contains unit tests for the dimension descriptors.
package dim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariapana/nalgebra/dim"
)

// TestStaticCounts verifies that every named static dimension reports its constant.
func TestStaticCounts(t *testing.T) {
	require.Equal(t, 0, dim.D0{}.Count()) // D0 is the zero-length axis
	require.Equal(t, 1, dim.D1{}.Count())
	require.Equal(t, 2, dim.D2{}.Count())
	require.Equal(t, 3, dim.D3{}.Count())
	require.Equal(t, 4, dim.D4{}.Count())
	require.Equal(t, 5, dim.D5{}.Count())
	require.Equal(t, 6, dim.D6{}.Count())
	require.Equal(t, 7, dim.D7{}.Count())
	require.Equal(t, 8, dim.D8{}.Count())
	require.Equal(t, 9, dim.D9{}.Count())
}

// TestStaticIsStateless ensures static dimensions carry no runtime state.
func TestStaticIsStateless(t *testing.T) {
	var d3 dim.D3                   // zero value is the only value
	require.Equal(t, 3, d3.Count()) // count recoverable from the type alone
	require.Equal(t, dim.D3{}, d3)  // every D3 value is identical
}

// TestNewDynamic verifies runtime dimensions store their count immutably.
func TestNewDynamic(t *testing.T) {
	d := dim.NewDynamic(7)        // construct with a runtime count
	require.Equal(t, 7, d.Count()) // count reported back unchanged

	z := dim.NewDynamic(0)        // zero is a legal runtime count
	require.Equal(t, 0, z.Count())
}

// TestNewDynamicNegativePanics ensures negative counts are rejected as programmer errors.
func TestNewDynamicNegativePanics(t *testing.T) {
	require.PanicsWithValue(t,
		"dim: NewDynamic: count must be non-negative", // stable panic message
		func() { dim.NewDynamic(-1) },                 // negative count is a contract violation
	)
}

// TestProduct verifies the slot count of mixed static/dynamic shapes.
func TestProduct(t *testing.T) {
	require.Equal(t, 6, dim.Product(dim.D2{}, dim.D3{}))                    // static × static
	require.Equal(t, 6, dim.Product(dim.NewDynamic(2), dim.D3{}))           // dynamic × static
	require.Equal(t, 6, dim.Product(dim.D2{}, dim.NewDynamic(3)))           // static × dynamic
	require.Equal(t, 0, dim.Product(dim.NewDynamic(0), dim.NewDynamic(10))) // zero-size shape
}

// TestDimInterfaceSatisfied confirms both variants satisfy the Dim capability.
func TestDimInterfaceSatisfied(t *testing.T) {
	var _ dim.Dim = dim.D4{}           // static side
	var _ dim.Dim = dim.NewDynamic(4)  // dynamic side
	var _ dim.Static = dim.D4{}        // static marker
}
