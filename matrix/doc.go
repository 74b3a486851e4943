// Package matrix is the consumer sitting above the allocation core: a
// generic row-major dense matrix whose backing buffer is requested from
// the alloc policies and owned exclusively by the matrix.
//
// The matrix package provides:
//
//   - Dense[T], a runtime-shaped matrix over any Scalar element type,
//     backed by a heap buffer carrying its two dynamic dimensions.
//   - Safe accessors: At/Set return sentinel errors, never panic, at the
//     public surface. Panics remain reserved for the core's contract
//     violations (wrong sequence length during construction).
//
// Arithmetic, decompositions and I/O live above this package; it exists
// to demonstrate and exercise the control flow of the allocation layer:
// ask a policy for a buffer, take sole ownership, write through it.
package matrix
