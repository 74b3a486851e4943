// Package alloc selects and constructs the element buffer backing a
// matrix, resolving the compile-time/run-time dimension duality into a
// concrete memory layout.
//
// Three construction policies cover every dimension pairing, and the type
// system — never a runtime branch — decides which one applies:
//
//   - StaticStatic: both dimensions compile-time static → an inline
//     storage.Array sized by the static product, no heap traffic.
//   - DynamicRows: runtime row count, columns of either kind → a
//     heap-backed storage.Vec tagged with both descriptors.
//   - DynamicCols: static rows, runtime column count → the symmetric
//     storage.Vec policy.
//
// Each policy offers two operations. Uninit reserves exactly rows×cols
// slots; FromSeq additionally fills every slot, one element per slot in
// storage order, from a lazy sequence, and panics if the sequence yields
// fewer or more elements than the shape requires — the count is checked
// after consumption, never before, because a sequence's length may be
// unknowable in advance.
//
// Uninitialized here means logically unwritten: Go zero-initializes all
// memory it hands out, so Uninit buffers hold zero values rather than
// stale bytes, and no unsafe stale-memory escape is offered. The contract
// stands regardless: every slot must be written before any slot is read.
//
// Both failure kinds — heap exhaustion and sequence-length mismatch —
// are contract violations, not recoverable conditions: no operation in
// this package returns an error value.
package alloc
