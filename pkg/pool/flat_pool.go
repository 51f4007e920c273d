package pool

import (
	"github.com/quiverlabs/quiver/pkg/errors"
)

// Range is a half-open [Begin, End) index pair into a FlatPool buffer. All
// external handles into the arena are index ranges, never pointers, so they
// stay valid for the lifetime of the pool.
type Range struct {
	Begin int
	End   int
}

// Len returns the number of elements covered by the range.
func (r Range) Len() int {
	return r.End - r.Begin
}

// FlatPool is a contiguous fixed-capacity arena of T managed through index
// ranges. Allocation first searches a bounded free-range list (first-fit in
// insertion order) and falls back to bump allocation from a high-water mark.
// The arena keeps no per-slot ownership metadata: slots live side by side in
// one buffer for cache locality, and range ownership is the caller's
// responsibility.
//
// Positional access is checked but lenient, uniformly across the API:
// out-of-bounds reads yield the zero value or nil, out-of-bounds writes are
// no-ops. Accessing a range the caller does not own is a contract violation
// that the arena does not detect.
type FlatPool[T any] struct {
	buf       []T
	watermark int
	free      []Range
	rangeCap  int
	dropped   int64
}

// NewFlatPool allocates an arena of bufferSize default-initialized elements
// and an empty free-range list retaining at most rangeCapacity entries.
func NewFlatPool[T any](bufferSize, rangeCapacity int) *FlatPool[T] {
	if bufferSize < 0 {
		bufferSize = 0
	}
	if rangeCapacity < 0 {
		rangeCapacity = 0
	}
	return &FlatPool[T]{
		buf:      make([]T, bufferSize),
		free:     make([]Range, 0, rangeCapacity),
		rangeCap: rangeCapacity,
	}
}

// Acquire reserves a contiguous range of n elements. Free ranges are
// searched first-fit in insertion order; a consumed range's remainder stays
// in the free list in place, so partial reuse never costs a free-list slot.
// When no free range fits, the range is bump-allocated from the watermark.
//
// Returns a capacity error when neither path can satisfy the request. The
// error is non-fatal: the arena is unchanged and the caller may retry
// against a larger pool.
func (p *FlatPool[T]) Acquire(n int) (Range, error) {
	if n <= 0 {
		return Range{Begin: p.watermark, End: p.watermark}, nil
	}

	for i, r := range p.free {
		if r.Len() < n {
			continue
		}
		acquired := Range{Begin: r.Begin, End: r.Begin + n}
		if remainder := (Range{Begin: acquired.End, End: r.End}); remainder.Len() > 0 {
			p.free[i] = remainder
		} else {
			copy(p.free[i:], p.free[i+1:])
			p.free = p.free[:len(p.free)-1]
		}
		return acquired, nil
	}

	if p.watermark+n > len(p.buf) {
		return Range{}, errors.NewCapacityExceeded(n, p.watermark, len(p.buf))
	}
	acquired := Range{Begin: p.watermark, End: p.watermark + n}
	p.watermark = acquired.End
	return acquired, nil
}

// Release returns [begin, end) to the free list for reuse. The covered
// elements are zeroed so stale content is never observable through a later
// acquisition. Invalid ranges (begin >= end, or outside the assigned region)
// are ignored. When the free list is already at its capacity the range is
// silently lost: bounded bookkeeping is traded for perfect reuse, and the
// elements stay unreachable until Reset.
func (p *FlatPool[T]) Release(begin, end int) {
	if begin >= end || begin < 0 || end > p.watermark {
		return
	}
	clear(p.buf[begin:end])
	if len(p.free) >= p.rangeCap {
		p.dropped++
		return
	}
	p.free = append(p.free, Range{Begin: begin, End: end})
}

// Get reads the element at absolute index i. The second return value is
// false when i is outside the buffer.
func (p *FlatPool[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(p.buf) {
		var zero T
		return zero, false
	}
	return p.buf[i], true
}

// GetSlice returns a read-only view over [begin, end), or nil when the range
// is invalid. The view aliases the arena storage: callers must not mutate it
// and must not hold it across a Release or Reset of the covered range.
func (p *FlatPool[T]) GetSlice(begin, end int) []T {
	if begin < 0 || end > len(p.buf) || begin > end {
		return nil
	}
	return p.buf[begin:end]
}

// Set writes value at absolute index i. The caller must own i via a prior
// Acquire; writes outside the buffer are no-ops.
func (p *FlatPool[T]) Set(i int, value T) {
	if i < 0 || i >= len(p.buf) {
		return
	}
	p.buf[i] = value
}

// SetRange copies values into the arena starting at begin. Elements that
// would land outside the buffer are discarded. The caller must own the
// covered range via a prior Acquire.
func (p *FlatPool[T]) SetRange(begin int, values []T) {
	if begin < 0 || begin >= len(p.buf) {
		return
	}
	copy(p.buf[begin:], values)
}

// BufferSize returns the fixed arena capacity in elements.
func (p *FlatPool[T]) BufferSize() int {
	return len(p.buf)
}

// Watermark returns the next never-yet-assigned index. All indices at or
// beyond it are logically unassigned.
func (p *FlatPool[T]) Watermark() int {
	return p.watermark
}

// AvailableCount returns the number of ranges in the free list.
func (p *FlatPool[T]) AvailableCount() int {
	return len(p.free)
}

// Dropped returns how many released ranges were permanently lost because the
// free list was full.
func (p *FlatPool[T]) Dropped() int64 {
	return p.dropped
}

// Reset returns the arena to its freshly constructed state: watermark at
// zero, free list emptied, every element zeroed. All outstanding ranges are
// invalidated.
func (p *FlatPool[T]) Reset() {
	clear(p.buf[:p.watermark])
	p.watermark = 0
	p.free = p.free[:0]
}
