// Package pool provides the reusable-memory primitives at the core of
// Quiver. It offers explicit, deterministic memory reuse for single-owner
// workloads, avoiding per-step allocation without relying on sync.Pool's
// GC-coupled, non-deterministic retention.
//
// The package provides:
//   - ObjectPool[T]: a bounded LIFO free list of growable slices with
//     clear-and-retain recycling
//   - DoubleBuffer[T]: a front/back pair of pooled slices with a swap-based
//     commit point
//   - FlatPool[T]: a contiguous fixed-capacity arena managed through
//     (begin, end) index ranges, combining bump allocation with a bounded
//     free-range list
//
// None of the types in this package are safe for concurrent use. Exactly one
// logical writer may hold a mutable view at a time, and any view obtained
// from an accessor is invalidated by the next mutating call (Swap, Release,
// Reset), which may recycle the underlying storage.
//
// Example usage:
//
//	buf := pool.NewDoubleBuffer[int](8)
//	buf.Append(1, 2, 3) // staged in the back buffer
//	buf.Swap()          // commit: data moves to the front
//	_ = buf.Front()     // [1 2 3], stable until the next Swap
package pool
