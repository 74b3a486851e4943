// SPDX-License-Identifier: MIT

package storage

import "golang.org/x/exp/constraints"

// Scalar constrains matrix element types to value-semantic numerics:
// plain copies, no construction or destruction hooks. Complex types are
// included; this mirrors the element sets the buffers are tested with.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
