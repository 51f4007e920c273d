package pool

// DoubleBuffer owns two pooled slices: a read-only front holding the last
// committed content and a writable back receiving staged writes. Swap is the
// commit point from the caller's perspective: everything written since the
// previous Swap becomes exactly the new front's content, all at once.
//
// Front and back are always distinct slices. A slice returned by Front or
// Back must not be used past the next Swap or Clear, which may release the
// storage back into the pool.
type DoubleBuffer[T any] struct {
	front []T
	back  []T
	pool  *ObjectPool[T]
}

// NewDoubleBuffer builds a double buffer backed by an ObjectPool with the
// given retention capacity. The capacity is advisory for recycling only; it
// never limits how many elements a buffer can hold.
func NewDoubleBuffer[T any](poolCapacity int) *DoubleBuffer[T] {
	p := NewObjectPool[T](poolCapacity)
	return &DoubleBuffer[T]{
		front: p.Acquire(),
		back:  p.Acquire(),
		pool:  p,
	}
}

// Append stages values into the back buffer. They stay invisible to Front
// until the next Swap.
func (b *DoubleBuffer[T]) Append(values ...T) {
	b.back = append(b.back, values...)
}

// Back returns the staged back buffer content.
func (b *DoubleBuffer[T]) Back() []T {
	return b.back
}

// Front returns the last committed content, stable until the next Swap.
func (b *DoubleBuffer[T]) Front() []T {
	return b.front
}

// Swap commits the staged writes: the old front is released into the pool,
// the old back becomes the new front, and a fresh pooled slice becomes the
// new back, ready for the next write phase.
func (b *DoubleBuffer[T]) Swap() {
	b.pool.Release(b.front)
	b.front = b.back
	b.back = b.pool.Acquire()
}

// Clear empties both buffers, recycling their storage through the pool.
func (b *DoubleBuffer[T]) Clear() {
	b.pool.Release(b.front)
	b.pool.Release(b.back)
	b.front = b.pool.Acquire()
	b.back = b.pool.Acquire()
}

// PoolAvailable returns the number of idle slices in the backing pool.
func (b *DoubleBuffer[T]) PoolAvailable() int {
	return b.pool.AvailableCount()
}
