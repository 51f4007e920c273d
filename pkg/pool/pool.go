package pool

// ObjectPool recycles growable slices of T to avoid reallocation. Released
// slices are cleared to length 0 but keep their storage capacity, so a
// steady-state acquire/release cycle performs no allocation.
//
// The free list is LIFO: Acquire returns the most-recently-released slice,
// which is the one most likely to still be cache-warm. Retention is bounded
// by the pool capacity; releasing into a full pool silently drops the slice
// instead of failing. That silent drop is load-shedding, not an error
// condition, and callers must not depend on every released slice being
// retained.
//
// A cleared-but-retained slice is distinct from a freshly allocated one only
// in its capacity; content written by a previous owner is never observable
// after Acquire.
type ObjectPool[T any] struct {
	free     [][]T
	capacity int
	dropped  int64
}

// NewObjectPool creates an empty pool retaining at most capacity slices.
// A capacity of 0 is legal and means "always allocate fresh, never retain".
func NewObjectPool[T any](capacity int) *ObjectPool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &ObjectPool[T]{
		free:     make([][]T, 0, capacity),
		capacity: capacity,
	}
}

// Acquire returns a slice of length 0, reusing the most-recently-released
// one when the free list is non-empty. It never fails.
func (p *ObjectPool[T]) Acquire() []T {
	if n := len(p.free); n > 0 {
		seq := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return seq
	}
	return make([]T, 0)
}

// Release clears seq and returns it to the free list. The element storage is
// retained for reuse; element values are zeroed first so stale content can
// never leak through a later Acquire. When the free list is already at
// capacity, the coldest retained slice is evicted to make room: the newcomer
// was in use most recently and is the better candidate for LIFO reuse.
func (p *ObjectPool[T]) Release(seq []T) {
	if p.capacity == 0 {
		p.dropped++
		return
	}
	clear(seq)
	if len(p.free) >= p.capacity {
		p.dropped++
		copy(p.free, p.free[1:])
		p.free[len(p.free)-1] = nil
		p.free = p.free[:len(p.free)-1]
	}
	p.free = append(p.free, seq[:0])
}

// AvailableCount returns the number of idle slices in the free list.
func (p *ObjectPool[T]) AvailableCount() int {
	return len(p.free)
}

// Capacity returns the maximum number of slices the free list retains.
func (p *ObjectPool[T]) Capacity() int {
	return p.capacity
}

// Dropped returns how many released slices were discarded because the free
// list was full.
func (p *ObjectPool[T]) Dropped() int64 {
	return p.dropped
}
