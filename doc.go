// Package nalgebra is the storage-allocation layer of a generic
// matrix/linear-algebra library: given a shape whose axes are known at
// compile time, at run time, or one of each, it selects and constructs
// the right backing buffer — with the selection made by the type system,
// never by a runtime branch.
//
// 🚀 What is nalgebra?
//
//	A small, focused library that brings together:
//		• Dimension descriptors: static D0…D9 (count baked into the type)
//		  and Dynamic (count carried in the value)
//		• Inline buffers: value-semantic, fixed-capacity, zero heap traffic
//		  for fully static shapes
//		• Heap buffers: exact-length regions tagged with both dimensions
//		  whenever any axis is dynamic
//		• Three construction policies behind one capability contract,
//		  each offering uninitialized and from-sequence allocation
//
// ✨ Why this shape?
//
//   - Small fixed-size matrices in hot numeric loops must not touch the
//     heap or re-check their shape at run time
//   - Dynamically-shaped matrices must carry their dimensions safely
//   - Both demands resolve here, once, at buffer construction
//
// Under the hood, everything is organized under four subpackages:
//
//	dim/     — axis dimensions, static and dynamic
//	storage/ — the two buffer kinds (inline Array, heap Vec) + Scalar
//	alloc/   — the allocation capability and its three policies
//	matrix/  — a generic Dense consumer demonstrating the control flow
//
// Quick example:
//
//	var p alloc.StaticStatic[float64, dim.D2, dim.D3, [6]float64]
//	buf := p.FromSeq(dim.D2{}, dim.D3{}, slices.Values([]float64{1, 2, 3, 4, 5, 6}))
//	// buf is an inline 2×3 buffer; its shape lives only in its type.
//
// Sequence-length mismatches and allocation failure are contract
// violations, not recoverable errors: the core panics, and consumers
// above it (package matrix) translate user-facing conditions into
// sentinel errors instead.
//
//	go get github.com/mariapana/nalgebra
package nalgebra
