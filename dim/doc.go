// Package dim models matrix axis dimensions whose element count is either
// fixed at compile time or discovered at run time.
//
// The dim package provides:
//
//   - Dim, the minimal capability every dimension exposes: Count().
//   - A closed set of static dimensions D0 … D9, zero-sized types whose
//     counts are constants baked into the type itself. A (static, static)
//     shape carries no runtime dimension state at all.
//   - Dynamic, a value type carrying one runtime element count, fixed for
//     the lifetime of the value once constructed.
//   - Product, the slot count of a (rows, cols) shape.
//
// Which variant a matrix uses decides — through the type system, not a
// runtime branch — how its element storage is allocated; see the alloc
// package.
package dim
