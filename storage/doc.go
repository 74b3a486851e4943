// Package storage provides the two element-buffer kinds backing matrices.
//
// The storage package provides:
//
//   - Array, an inline fixed-capacity buffer for shapes whose rows and
//     columns are both compile-time static. It owns its elements directly,
//     performs no heap allocation of its own, and stores no dimension
//     fields: shape is recovered from the type parameters alone.
//   - Vec, a heap-backed buffer of exactly rows×cols elements, carrying
//     both dimension descriptors so shape is recoverable at run time. Used
//     whenever at least one dimension is dynamic.
//   - Scalar, the element-type constraint (value-semantic numerics).
//
// Which buffer a shape gets is decided structurally by the alloc package,
// never by runtime inspection. A buffer's slot count is fixed at
// construction; no resizing belongs to this layer. Each buffer is owned
// exclusively by the matrix that requested it; Clone is the only way to a
// second, independent copy.
package storage
