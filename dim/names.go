// SPDX-License-Identifier: MIT

// Package dim: the closed set of named static dimensions.
// Each Dn is a zero-sized struct whose Count returns the constant n; the
// set is sealed by the unexported static() marker so the (static, static)
// allocation path can trust that every Static value is stateless.
package dim

// D0 is the zero-length static dimension (degenerate shapes).
type D0 struct{}

// D1 … D9 are the static dimensions most shapes in geometry and small
// linear algebra use (vectors, transforms, small covariance blocks).
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D0) Count() int { return 0 }
func (D1) Count() int { return 1 }
func (D2) Count() int { return 2 }
func (D3) Count() int { return 3 }
func (D4) Count() int { return 4 }
func (D5) Count() int { return 5 }
func (D6) Count() int { return 6 }
func (D7) Count() int { return 7 }
func (D8) Count() int { return 8 }
func (D9) Count() int { return 9 }

func (D0) static() {}
func (D1) static() {}
func (D2) static() {}
func (D3) static() {}
func (D4) static() {}
func (D5) static() {}
func (D6) static() {}
func (D7) static() {}
func (D8) static() {}
func (D9) static() {}
