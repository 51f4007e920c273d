// Package quiver provides reusable-memory primitives for managing sequences
// of immutable data points under a producer/consumer access pattern without
// per-step heap churn.
//
// The library is built around four cooperating constructs:
//
// 1. ObjectPool: a bounded LIFO cache of reusable growable slices. Released
// slices are cleared but keep their storage, so steady-state operation
// performs no allocation.
//
// 2. DoubleBuffer: two pooled slices, one read-only (front) and one being
// written (back), swapped atomically from the caller's perspective. Swap is
// the commit point that makes staged writes visible.
//
// 3. FlatPool: a single contiguous fixed-capacity buffer managed through
// (begin, end) index ranges instead of per-element allocation, combining bump
// allocation from a high-water mark with a bounded free-range list.
//
// 4. Sequence: an append-only, step-tracked view over a FlatPool of data
// points, used when history must be preserved rather than overwritten.
//
// # Quick Start
//
// Accumulate data points step by step and read back the full history:
//
//	import (
//	    "github.com/quiverlabs/quiver/pkg/models"
//	    "github.com/quiverlabs/quiver/pkg/sequence"
//	)
//
//	seq := sequence.New(1000, 10)
//	if err := seq.AddPoint(models.NewRandomPoint()); err != nil {
//	    // arena is full; construct a larger sequence and retry
//	}
//	seq.Update() // commit: the point is now visible
//	for _, p := range seq.Current() {
//	    fmt.Println(p.ID, p.Value, p.Timestamp)
//	}
//
// # Concurrency
//
// The core is single-threaded by design: no locks or atomics are provided,
// and exactly one logical writer may hold a mutable view at a time. Readers
// observe only committed state, and a view must not be used past the next
// Swap or Update, which may recycle the underlying storage. Callers needing
// cross-thread use must provide external synchronization.
package quiver

// Version is the library version, reported by the quiver CLI.
const Version = "0.1.0"

// Add returns the sum of two unsigned integers. It exists as the smallest
// callable surface of the library and is dispatched to by the quiver CLI.
func Add(left, right uint64) uint64 {
	return left + right
}
